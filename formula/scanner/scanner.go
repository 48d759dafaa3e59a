// scanner.go -
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package scanner

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// The different kinds of error which can occur while reading a
// formula.  Errors returned by the formula packages wrap one of these,
// so that callers can use errors.Is() to tell them apart.
var (
	ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")
	ErrMalformedFraction   = errors.New("malformed fraction")
	ErrMalformedMatrix     = errors.New("malformed matrix")
)

// contextLength gives the maximal number of bytes of input shown in
// error messages.
const contextLength = 20

// Scanner walks through the text of a single formula.  The formula
// may be a part of a larger input, in which case Base gives the byte
// offset of the formula text inside the enclosing input.  All
// positions reported by the scanner are relative to the enclosing
// input.
type Scanner struct {
	Base int

	input string
	pos   int
}

// New creates a scanner for the given text.  The argument base is the
// offset of text inside the outermost formula, or 0 if text is the
// whole formula.
func New(text string, base int) *Scanner {
	return &Scanner{
		Base:  base,
		input: text,
	}
}

// Next checks whether more input is available.
func (scan *Scanner) Next() bool {
	return scan.pos < len(scan.input)
}

// Peek returns the remaining input after the current position.  The
// current input position is not changed by calls to .Peek().
func (scan *Scanner) Peek() string {
	return scan.input[scan.pos:]
}

// PeekRune returns the next rune of input together with its length
// in bytes.  At the end of input, (utf8.RuneError, 0) is returned.
func (scan *Scanner) PeekRune() (rune, int) {
	return utf8.DecodeRuneInString(scan.input[scan.pos:])
}

// Skip advances the current position by n bytes.
func (scan *Scanner) Skip(n int) {
	if n < 0 || scan.pos+n > len(scan.input) {
		panic("invalid skip amount")
	}
	scan.pos += n
}

// Pos returns the current position, as a byte offset into the
// outermost formula.
func (scan *Scanner) Pos() int {
	return scan.Base + scan.pos
}

// MakeError returns an error object which includes the given message
// together with human-readable information about the current input
// position.
func (scan *Scanner) MakeError(kind error, message string) *ParseError {
	return NewError(kind, scan.Pos(), scan.Peek(), message)
}

// ParseError describes a problem with the input of a conversion.
type ParseError struct {
	// Kind is one of the Err* values from this package, or another
	// sentinel error supplied by the caller.
	Kind error

	Message string

	// Offset is the byte offset of the problem in the formula text.
	Offset int

	// Char is the offset of the problem in characters, i.e. in
	// Unicode code points.  It is -1 until Locate has been called.
	Char int

	// Context shows the input text starting at Offset, shortened to
	// at most 20 bytes.
	Context string
}

// NewError creates a new ParseError.  The context is shortened as
// needed.
func NewError(kind error, offset int, context, message string) *ParseError {
	if len(context) > contextLength {
		cut := contextLength - 3
		for cut > 0 && !utf8.RuneStart(context[cut]) {
			cut--
		}
		context = context[:cut] + "..."
	}
	return &ParseError{
		Kind:    kind,
		Message: message,
		Offset:  offset,
		Char:    -1,
		Context: context,
	}
}

// Locate sets the character offset of the error, using the formula
// text the byte offset refers to.
func (err *ParseError) Locate(input string) {
	off := err.Offset
	if off < 0 {
		off = 0
	} else if off > len(input) {
		off = len(input)
	}
	err.Char = utf8.RuneCountInString(input[:off])
}

func (err *ParseError) Error() string {
	res := []string{err.Kind.Error()}
	if err.Message != "" {
		res = append(res, ": ", err.Message)
	}
	res = append(res, fmt.Sprintf(" at offset %d", err.Offset))
	if err.Char >= 0 && err.Char != err.Offset {
		res = append(res, fmt.Sprintf(" (character %d)", err.Char))
	}
	if err.Context != "" {
		res = append(res, fmt.Sprintf(", before %q", err.Context))
	}
	return strings.Join(res, "")
}

// Unwrap returns the error kind, so that errors.Is() can be used on
// ParseError values.
func (err *ParseError) Unwrap() error {
	return err.Kind
}
