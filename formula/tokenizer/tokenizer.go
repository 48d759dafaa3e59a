// tokenizer.go -
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

package tokenizer

import (
	"fmt"
	"unicode"

	"github.com/seehuhn/hwpmath/formula/scanner"
)

type openDelim struct {
	delim byte
	pos   int
}

// Tokenize splits a formula in equation editor notation into tokens.
// Whitespace separates tokens only outside of parentheses, brackets
// and braces; a delimited region is kept together with its enclosing
// delimiters, so that the parser can recurse into it.
func Tokenize(input string) (TokenList, error) {
	return TokenizeAt(input, 0)
}

// TokenizeAt works like Tokenize, but all token positions and error
// offsets are shifted by base.  This is used to tokenize the inside
// of a delimited region.
func TokenizeAt(input string, base int) (TokenList, error) {
	scan := scanner.New(input, base)

	var res TokenList
	var stack []openDelim
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		text := input[start:end]
		res = append(res, Token{
			Kind: classify(text),
			Text: text,
			Pos:  base + start,
		})
		start = -1
	}

	for scan.Next() {
		pos := scan.Pos() - base
		r, n := scan.PeekRune()

		if unicode.IsSpace(r) && len(stack) == 0 {
			flush(pos)
			scan.Skip(n)
			continue
		}

		switch r {
		case '(', '[', '{':
			stack = append(stack, openDelim{delim: byte(r), pos: pos})
		case ')', ']', '}':
			if len(stack) == 0 {
				return nil, scan.MakeError(scanner.ErrUnbalancedDelimiter,
					fmt.Sprintf("unmatched %q", r))
			}
			top := stack[len(stack)-1]
			if closing[top.delim] != byte(r) {
				return nil, scan.MakeError(scanner.ErrUnbalancedDelimiter,
					fmt.Sprintf("%q closed by %q", top.delim, r))
			}
			stack = stack[:len(stack)-1]
		}
		if start < 0 {
			start = pos
		}
		scan.Skip(n)
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, scanner.NewError(scanner.ErrUnbalancedDelimiter,
			base+top.pos, input[top.pos:],
			fmt.Sprintf("%q not closed", top.delim))
	}
	flush(len(input))

	return res, nil
}

var closing = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
}

// IsOpening reports whether c starts a delimited region.
func IsOpening(c byte) bool {
	_, ok := closing[c]
	return ok
}

// Closing returns the closing delimiter which matches the opening
// delimiter c, or 0 if c is not an opening delimiter.
func Closing(c byte) byte {
	return closing[c]
}

// MatchBracket returns the index of the delimiter which closes the
// region opened at s[i].  If s[i] is not an opening delimiter, or if
// the region is not closed, -1 is returned.
func MatchBracket(s string, i int) int {
	if i >= len(s) || !IsOpening(s[i]) {
		return -1
	}
	var stack []byte
	for j := i; j < len(s); j++ {
		c := s[j]
		if IsOpening(c) {
			stack = append(stack, closing[c])
		} else if c == ')' || c == ']' || c == '}' {
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return -1
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return j
			}
		}
	}
	return -1
}

// IsBracketed reports whether s consists of exactly one delimited
// region, e.g. "(a b)" but not "(a)(b)" or "x(a)".
func IsBracketed(s string) bool {
	return len(s) >= 2 && MatchBracket(s, 0) == len(s)-1
}

func classify(text string) Kind {
	if IsBracketed(text) {
		return KindBracket
	}
	word, op := true, true
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			op = false
		case r < 128 && (IsOpening(byte(r)) || r == ')' || r == ']' || r == '}'):
			word = false
			op = false
		default:
			word = false
		}
	}
	switch {
	case word:
		return KindWord
	case op:
		return KindOperator
	default:
		return KindText
	}
}
