/*
File    : clasp/cmd/claspfront/main.go

claspfront is the front-end's external driver: it owns no parsing or
type logic, only wiring (spec §1 treats the CLI as "an external
collaborator that opens a character stream and consumes the AST root").
Grounded in th13vn-solast-go/cmd/solast/main.go's single-command cobra
layout.
*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/claspc/clasp/ast"
	"github.com/claspc/clasp/codegen"
	"github.com/claspc/clasp/diag"
	"github.com/claspc/clasp/lexer"
	"github.com/claspc/clasp/parser"
	"github.com/claspc/clasp/printer"
	"github.com/claspc/clasp/repl"
)

const (
	version = "v0.1.0"
	author  = "claspc contributors"
	license = "GPL-3.0"
	line    = "----------------------------------------------------------------"
	banner  = "claspfront — Clasp front-end (lexer, parser, printer)"
	prompt  = "clasp >>> "
)

var (
	printAST bool
	emitCode bool
	astJSON  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "claspfront [file]",
		Short: "claspfront: lex and parse Clasp source",
		Long: `claspfront reads Clasp source from a file (or stdin if no file or
'-' is given), parses it, and reports the result according to the
selected flag. With no flag it only checks for syntax errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompile,
	}

	rootCmd.Flags().BoolVar(&printAST, "print", false, "print the parsed AST as an s-expression")
	rootCmd.Flags().BoolVar(&emitCode, "emit", false, "run the stub code generator and print its output")
	rootCmd.Flags().BoolVar(&astJSON, "ast-json", false, "dump the parsed AST as JSON")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "start an interactive lex/parse/print session",
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.NewRepl(banner, version, author, line, license, prompt).Start(os.Stdin, os.Stdout)
			return nil
		},
	}
	rootCmd.AddCommand(replCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(diag.ExitInternal)
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}

	sink := diag.NewStderrSink()
	read, ctx := lexer.NewStringSource(src)
	lex := lexer.New(read, ctx, sink)
	p := parser.New(lex, sink)

	root, err := compileWithRecovery(p)
	if err != nil {
		os.Exit(diag.ExitSyntax)
		return nil
	}

	switch {
	case printAST:
		fmt.Println(printer.Print(root))
	case emitCode:
		genCtx := codegen.Generate(root)
		os.Stdout.Write(genCtx.Code)
	case astJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ast.ToJSONValue(root))
	}
	return nil
}

// compileWithRecovery runs p.Compile(), additionally converting an
// ast.InternalError panic (an out-of-range visitor dispatch, which
// cannot actually happen from a parser-built tree but is part of the
// visitor contract per spec §4.3) into the internal-error exit path.
func compileWithRecovery(p *parser.Parser) (root *ast.BlockNode, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(ast.InternalError); ok {
				diag.NewStderrSink().InternalError("%s", ie.Error())
				os.Exit(diag.ExitInternal)
			}
			panic(r)
		}
	}()
	return p.Compile()
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
