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

package latex

import (
	"strconv"
	"strings"
)

// TokenType is used to enumerate different types of token
type TokenType int

// The different token types used by this package.
const (
	TokenMacro TokenType = iota
	TokenComment
	TokenSpace
	TokenWord
	TokenNumber
	TokenOther
	TokenVerbatim

	// TokenGroup is a braced group.  The contents of the group are
	// stored in Args[0].
	TokenGroup

	// TokenScript is a superscript (Name "^") or a subscript (Name
	// "_").  The script is stored in Args[0].
	TokenScript
)

// Token contains information about a single syntactic unit in the TeX
// source.
type Token struct {
	// Type describes which kind of token this is.
	Type TokenType

	// For TokenMacro, this is the name of the macro, including the
	// leading backslash.  For most other token types, this is the
	// textual content of the token.
	Name string

	// For tokens of type TokenMacro, TokenGroup and TokenScript this
	// field specifies the values of the arguments.  Unused for all
	// other token types.
	Args []*Arg

	// Pos is the byte offset of the token in the formula.
	Pos int
}

// Arg specifies a single macro argument.
type Arg struct {
	Optional bool
	Value    TokenList
}

func (arg *Arg) String() string {
	return arg.Value.FormatMaths()
}

func verbatim(s string, pos int) *Token {
	return &Token{
		Type: TokenVerbatim,
		Name: s,
		Pos:  pos,
	}
}

// TokenList describes tokenized data in the argument of a macro call.
type TokenList []*Token

// FormatMaths converts the token list back into LaTeX source.  Space
// and comment tokens are omitted.
func (toks TokenList) FormatMaths() string {
	var res []string
	mayNeedSpace := false
	for _, tok := range toks {
		switch tok.Type {
		case TokenMacro:
			res = append(res, tok.Name)
			for _, arg := range tok.Args {
				if isDelimiterMacro(tok.Name) {
					res = append(res, arg.Value.FormatMaths())
				} else if arg.Optional {
					val := arg.Value.FormatMaths()
					if val != "" {
						res = append(res, "["+val+"]")
					}
				} else {
					res = append(res, "{"+arg.Value.FormatMaths()+"}")
				}
			}
		case TokenGroup:
			res = append(res, "{"+tok.Args[0].Value.FormatMaths()+"}")
		case TokenScript:
			res = append(res, tok.Name+"{"+tok.Args[0].Value.FormatMaths()+"}")
		case TokenComment, TokenSpace:
			// pass
		case TokenWord:
			if mayNeedSpace {
				res = append(res, " "+tok.Name)
			} else {
				res = append(res, tok.Name)
			}
		case TokenNumber, TokenOther, TokenVerbatim:
			res = append(res, tok.Name)
		default:
			panic("invalid token type " + strconv.Itoa(int(tok.Type)))
		}
		if tok.Type != TokenSpace && tok.Type != TokenComment {
			mayNeedSpace = tok.Type == TokenMacro && len(tok.Args) == 0 &&
				isLetter(tok.Name[len(tok.Name)-1])
		}
	}
	return strings.Join(res, "")
}

// IsMacro checks whether tok is a call of the macro name, where the
// first arguments have the given values.
func IsMacro(tok *Token, name string, args ...string) bool {
	if tok.Type != TokenMacro {
		return false
	}
	if tok.Name != name {
		return false
	}
	if len(tok.Args) < len(args) {
		return false
	}
	for i, arg := range args {
		if tok.Args[i].String() != arg {
			return false
		}
	}
	return true
}

func isDelimiterMacro(name string) bool {
	return name == `\left` || name == `\right`
}
