// token.go -
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
	"strconv"
	"strings"
)

// Kind is used to enumerate different kinds of token.
type Kind int

// The different token kinds used by this package.
const (
	// KindWord tokens consist of letters and digits only.
	KindWord Kind = iota

	// KindOperator tokens contain no letters, digits or delimiters,
	// e.g. "=" or "<=".
	KindOperator

	// KindBracket tokens consist of exactly one delimited region,
	// including the enclosing delimiters.
	KindBracket

	// KindText is used for all other whitespace-terminated text.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindOperator:
		return "operator"
	case KindBracket:
		return "bracket"
	case KindText:
		return "text"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token contains information about a single syntactic unit in the
// notation source.
type Token struct {
	Kind Kind
	Text string

	// Pos is the byte offset of the token in the formula.
	Pos int
}

// TokenList is the result of tokenizing a formula.
type TokenList []Token

// String joins the token texts with single spaces.
func (toks TokenList) String() string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}
