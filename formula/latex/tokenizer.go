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

package latex

import (
	"io"
	"log"
	"strings"

	"github.com/seehuhn/hwpmath/formula/scanner"
)

// A Tokenizer can be used to split a LaTeX formula into syntactic
// units.
type Tokenizer struct {
	*scanner.Scanner

	macros       map[string]macro
	environments map[string]environment
}

// NewTokenizer creates and initialises a new Tokenizer.  The argument
// base gives the offset of text inside the enclosing formula.
func NewTokenizer(text string, base int) *Tokenizer {
	p := &Tokenizer{
		Scanner:      scanner.New(text, base),
		macros:       make(map[string]macro),
		environments: make(map[string]environment),
	}
	p.addBuiltinMacros()
	addAmsmathMacros(p)
	return p
}

// Tokenize splits a LaTeX formula into tokens.
func Tokenize(text string) (TokenList, error) {
	return NewTokenizer(text, 0).ParseTex()
}

var double = map[string]bool{
	"''": true,
}

// ParseTex splits the Tokenizer's input into tokens.  Braced groups
// and the arguments of known macros are tokenized recursively.
func (p *Tokenizer) ParseTex() (TokenList, error) {
	var res TokenList
	for p.Next() {
		buf := p.Peek()
		pos := p.Pos()

		switch {
		case buf[0] == '\\':
			name, err := p.readMacroName()
			if err != nil {
				return nil, err
			}

			if m := p.macros[name]; m != nil {
				tokens, err := m.ReadArgs(p, name, pos)
				if err != nil {
					return nil, err
				}
				res = append(res, tokens...)
			} else if name == `\begin` {
				envName, argPos, err := p.readMandatoryArg()
				if err != nil && err != io.EOF {
					return nil, err
				}
				if env := p.environments[envName]; env != nil {
					tokens, err := env.ReadArgs(p, envName, pos)
					if err != nil {
						return nil, err
					}
					res = append(res, tokens...)
				} else {
					log.Println("unknown environment", envName)
					res = append(res, &Token{
						Type: TokenMacro,
						Name: name,
						Args: []*Arg{
							{Value: TokenList{verbatim(envName, argPos)}},
						},
						Pos: pos,
					})
				}
			} else {
				res = append(res, &Token{Type: TokenMacro, Name: name, Pos: pos})
			}

		case buf[0] == '%':
			comment := p.readComment()
			res = append(res, &Token{Type: TokenComment, Name: comment, Pos: pos})

		case buf[0] == '{':
			p.Skip(1)
			body, err := p.readBalancedUntil('}', pos)
			if err != nil {
				return nil, err
			}
			inner, err := p.parseString(body, pos+1)
			if err != nil {
				return nil, err
			}
			res = append(res, &Token{
				Type: TokenGroup,
				Args: []*Arg{{Value: inner}},
				Pos:  pos,
			})

		case buf[0] == '}':
			return nil, p.MakeError(scanner.ErrUnbalancedDelimiter,
				"unmatched '}'")

		case buf[0] == '^' || buf[0] == '_':
			p.Skip(1)
			arg, err := p.readScriptArg()
			if err != nil {
				return nil, err
			}
			res = append(res, &Token{
				Type: TokenScript,
				Name: buf[:1],
				Args: []*Arg{{Value: arg}},
				Pos:  pos,
			})

		case isSpace(buf[0]):
			p.skipWhiteSpace()
			res = append(res, &Token{Type: TokenSpace, Name: " ", Pos: pos})

		case isLetter(buf[0]):
			word := p.readWhile(isLetter)
			res = append(res, &Token{Type: TokenWord, Name: word, Pos: pos})

		case isDigit(buf[0]):
			number := p.readNumber()
			res = append(res, &Token{Type: TokenNumber, Name: number, Pos: pos})

		default:
			var name string
			if len(buf) >= 2 && double[buf[:2]] {
				name = buf[:2]
			} else {
				_, n := p.PeekRune()
				name = buf[:n]
			}
			p.Skip(len(name))
			res = append(res, &Token{Type: TokenOther, Name: name, Pos: pos})
		}
	}
	return res, nil
}

// parseString tokenizes a part of the input, e.g. the contents of a
// braced group.  The new tokenizer shares the macro definitions of p.
func (p *Tokenizer) parseString(text string, base int) (TokenList, error) {
	sub := &Tokenizer{
		Scanner:      scanner.New(text, base),
		macros:       p.macros,
		environments: p.environments,
	}
	return sub.ParseTex()
}

func (p *Tokenizer) skipWhiteSpace() {
	p.readWhile(isSpace)
}

func (p *Tokenizer) readWhile(accept func(byte) bool) string {
	buf := p.Peek()
	pos := 0
	for pos < len(buf) && accept(buf[pos]) {
		pos++
	}
	p.Skip(pos)
	return buf[:pos]
}

func (p *Tokenizer) readNumber() string {
	buf := p.Peek()
	pos := 0
	for pos < len(buf) && isDigit(buf[pos]) {
		pos++
	}
	if pos+1 < len(buf) && buf[pos] == '.' && isDigit(buf[pos+1]) {
		pos++
		for pos < len(buf) && isDigit(buf[pos]) {
			pos++
		}
	}
	p.Skip(pos)
	return buf[:pos]
}

// readBalancedUntil reads input up to the given closing delimiter,
// skipping over nested braced groups.  The opening delimiter must
// already have been consumed; open gives its position for error
// messages.  The closing delimiter is consumed but not returned.
func (p *Tokenizer) readBalancedUntil(close byte, open int) (string, error) {
	buf := p.Peek()
	depth := 0
	for pos := 0; pos < len(buf); pos++ {
		switch c := buf[pos]; {
		case c == '\\' && pos+1 < len(buf):
			pos++
		case c == close && depth == 0:
			p.Skip(pos + 1)
			return buf[:pos], nil
		case c == '{':
			depth++
		case c == '}':
			if depth == 0 {
				p.Skip(pos)
				return "", p.MakeError(scanner.ErrUnbalancedDelimiter,
					"unmatched '}'")
			}
			depth--
		}
	}
	return "", scanner.NewError(scanner.ErrUnbalancedDelimiter,
		open, p.Peek(), "missing '"+string(close)+"'")
}

func isSpace(c byte) bool {
	return strings.IndexByte(" \t\r\n", c) >= 0
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
