/*
File    : clasp/lexer/source.go

The lexer is parameterised by a pull-based character source: a function
that, given an opaque context, returns the next character or reports
end-of-input. This file provides the two reference implementations spec.md
asks for: an in-memory string reader and a file-descriptor reader.
*/
package lexer

import "bufio"
import "os"

// ByteSource is the character-stream collaborator contract. It must be
// safe to call repeatedly (and, if multiple lexers share a context
// type, reentrant with respect to the context they're each given).
// ok is false exactly at end-of-input; b is undefined when ok is false.
type ByteSource func(ctx any) (b byte, ok bool)

// stringCtx is the opaque context for StringByteSource.
type stringCtx struct {
	data string
	pos  int
}

// StringByteSource is a ByteSource that reads from an in-memory string,
// reporting end-of-input once the string is exhausted.
func StringByteSource(ctx any) (byte, bool) {
	c := ctx.(*stringCtx)
	if c.pos >= len(c.data) {
		return 0, false
	}
	b := c.data[c.pos]
	c.pos++
	return b, true
}

// NewStringSource builds a ByteSource/context pair over src.
func NewStringSource(src string) (ByteSource, any) {
	return StringByteSource, &stringCtx{data: src}
}

// FileByteSource is a ByteSource that reads from a buffered file
// handle, reporting end-of-input on any read error (including io.EOF).
func FileByteSource(ctx any) (byte, bool) {
	r := ctx.(*bufio.Reader)
	b, err := r.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

// NewFileSource builds a ByteSource/context pair over an already-open
// file. The caller remains responsible for closing f.
func NewFileSource(f *os.File) (ByteSource, any) {
	return FileByteSource, bufio.NewReader(f)
}
