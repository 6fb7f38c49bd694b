/*
File    : clasp/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an interactive Read-Lex-Parse-Print loop over
the Clasp front-end. Adapted from go-mix/repl: same readline-backed
shell and colored feedback, but there is no evaluator here — each line
is tokenized and parsed fresh and its AST printed. A fatal diagnostic
is reported through diag.Sink and the loop continues, rather than
terminating the process the way cmd/claspfront's one-shot compile does.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/claspc/clasp/diag"
	"github.com/claspc/clasp/lexer"
	"github.com/claspc/clasp/parser"
	"github.com/claspc/clasp/printer"
)

// Color definitions for REPL output, unchanged from go-mix/repl.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl encapsulates the configuration needed to run an interactive
// session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates and initializes a new REPL instance. This constructor
// sets up all the visual elements and configuration needed for the
// interactive session; it does not touch the terminal itself — that
// happens once Start is called.
//
// Parameters:
//
//	banner  - banner text to display at startup
//	version - version string of the front-end
//	author  - author/contributor line
//	line    - separator line for formatting
//	license - software license information
//	prompt  - command prompt string (e.g. "clasp >>> ")
//
// Returns:
//
//	A pointer to a newly created Repl instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// This is called once when the REPL starts, to show:
// - The banner text
// - Version, author, and license information
// - Basic usage instructions ('.exit', history navigation)
//
// Parameters:
//
//	writer - the io.Writer to print the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	// Top separator line in blue.
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Banner text in green.
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Version, author, and license information in yellow.
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Welcome message and usage instructions in cyan.
	cyanColor.Fprintf(writer, "%s\n", "Welcome to claspfront!")
	cyanColor.Fprintf(writer, "%s\n", "Type a Clasp statement and press enter to see its parsed form")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")

	// Bottom separator line.
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. This is the core function that
// drives the interactive session:
//  1. Displays the welcome banner.
//  2. Sets up readline for line editing and history.
//  3. Enters the main read-lex-parse-print loop.
//  4. Processes user input until exit.
//
// The loop continues until:
// - The user types '.exit'
// - EOF is encountered (Ctrl+D)
// - An error occurs in readline
//
// Unlike a one-shot compile, a fatal parse error here does not end the
// session: it is reported to writer and the loop reads the next line.
//
// Parameters:
//
//	reader - input source; unused directly (readline owns stdin), kept
//	         to mirror the signature a caller expects of a Read-*-Print
//	         loop
//	writer - output destination (typically os.Stdout)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	// Print the welcome banner and usage instructions.
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Trim surrounding whitespace and skip blank lines so an
		// accidental empty Enter doesn't try to parse "".
		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.parseAndPrint(writer, line)
	}
}

// parseAndPrint tokenizes and parses one line and prints its AST. A
// fatal diagnostic is written to sink by the parser itself; this
// function only needs to know whether to skip printing.
func (r *Repl) parseAndPrint(writer io.Writer, line string) {
	sink := &diag.Sink{Out: writer}
	read, ctx := lexer.NewStringSource(line)
	lex := lexer.New(read, ctx, sink)
	p := parser.New(lex, sink)

	root, err := p.Compile()
	if err != nil {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", printer.Print(root))
}
