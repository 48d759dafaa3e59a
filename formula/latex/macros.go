// macros.go -
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
	"strings"
	"unicode/utf8"
)

type macro interface {
	ReadArgs(p *Tokenizer, name string, pos int) (TokenList, error)
}

type macroFunc func(p *Tokenizer, name string, pos int) (TokenList, error)

func (mf macroFunc) ReadArgs(p *Tokenizer, name string, pos int) (TokenList, error) {
	return mf(p, name, pos)
}

func (p *Tokenizer) addBuiltinMacros() {
	p.macros[`\\`] = typedMacro("O")
	p.macros[`\end`] = typedMacro("V")
	p.macros[`\frac`] = typedMacro("AA")
	p.macros[`\label`] = typedMacro("V")
	p.macros[`\left`] = macroFunc(parseDelimiter)
	p.macros[`\mathbf`] = typedMacro("A")
	p.macros[`\mathit`] = typedMacro("A")
	p.macros[`\mathrm`] = typedMacro("V")
	p.macros[`\mbox`] = typedMacro("V")
	p.macros[`\right`] = macroFunc(parseDelimiter)
	p.macros[`\sqrt`] = typedMacro("OA")

	for _, name := range []string{`\ `, `\,`, `\:`, `\;`, `\!`, `\quad`, `\qquad`} {
		p.macros[name] = macroFunc(parseSpace)
	}

	p.environments["displaymath"] = simpleEnv
	p.environments["equation"] = simpleEnv
}

// typedMacro describes the arguments of a macro: "A" stands for a
// mandatory argument, "O" for an optional argument in square brackets,
// and "V" for a mandatory argument which is not tokenized.
type typedMacro string

func (tm typedMacro) ReadArgs(p *Tokenizer, name string, pos int) (TokenList, error) {
	args, err := p.readTypedArgs(string(tm))
	if err != nil {
		return nil, err
	}
	return TokenList{&Token{Type: TokenMacro, Name: name, Args: args, Pos: pos}}, nil
}

// readTypedArgs reads macro arguments as described by argTypes.  If the
// input ends before all mandatory arguments are read, the arguments
// found so far are returned.
func (p *Tokenizer) readTypedArgs(argTypes string) ([]*Arg, error) {
	var args []*Arg
	for _, argType := range argTypes {
		switch argType {
		case 'A':
			arg, pos, err := p.readMandatoryArg()
			if err == io.EOF {
				return args, nil
			} else if err != nil {
				return nil, err
			}
			val, err := p.parseString(arg, pos)
			if err != nil {
				return nil, err
			}
			args = append(args, &Arg{Optional: false, Value: val})
		case 'O':
			arg, pos, err := p.readOptionalArg()
			if err != nil {
				return nil, err
			}
			val, err := p.parseString(arg, pos)
			if err != nil {
				return nil, err
			}
			args = append(args, &Arg{Optional: true, Value: val})
		case 'V':
			arg, pos, err := p.readMandatoryArg()
			if err == io.EOF {
				return args, nil
			} else if err != nil {
				return nil, err
			}
			args = append(args, &Arg{
				Optional: false,
				Value:    TokenList{verbatim(arg, pos)},
			})
		}
	}
	return args, nil
}

func parseDelimiter(p *Tokenizer, name string, pos int) (TokenList, error) {
	tok := &Token{Type: TokenMacro, Name: name, Pos: pos}
	p.skipWhiteSpace()
	if !p.Next() {
		return TokenList{tok}, nil
	}

	delimPos := p.Pos()
	var delim string
	if p.Peek()[0] == '\\' {
		var err error
		delim, err = p.readMacroName()
		if err != nil {
			return nil, err
		}
	} else {
		_, n := p.PeekRune()
		delim = p.Peek()[:n]
		p.Skip(n)
	}
	tok.Args = []*Arg{
		{Value: TokenList{&Token{Type: TokenOther, Name: delim, Pos: delimPos}}},
	}
	return TokenList{tok}, nil
}

func parseSpace(p *Tokenizer, name string, pos int) (TokenList, error) {
	return TokenList{&Token{Type: TokenSpace, Name: " ", Pos: pos}}, nil
}

func (p *Tokenizer) readMacroName() (string, error) {
	if !p.Next() {
		return "", io.EOF
	}
	buf := p.Peek()
	if buf[0] != '\\' {
		_, n := p.PeekRune()
		p.Skip(n)
		return buf[:n], nil
	}
	if len(buf) < 2 {
		p.Skip(1)
		return buf, nil
	}
	if !isLetter(buf[1]) {
		_, n := utf8.DecodeRuneInString(buf[1:])
		p.Skip(1 + n)
		return buf[:1+n], nil
	}

	var i int
	for i = 1; i < len(buf); i++ {
		if !isLetter(buf[i]) {
			break
		}
	}
	name := buf[:i]
	p.Skip(i)

	p.skipWhiteSpace()
	return name, nil
}

// readMandatoryArg reads a single macro argument.  This is either a
// braced group, a macro name, or a single character.  The position of
// the argument text in the formula is returned together with the text.
// If no argument is available, io.EOF is returned.
func (p *Tokenizer) readMandatoryArg() (string, int, error) {
	p.skipWhiteSpace()

	if !p.Next() {
		return "", p.Pos(), io.EOF
	}
	buf := p.Peek()
	pos := p.Pos()
	switch buf[0] {
	case '{':
		p.Skip(1)
		body, err := p.readBalancedUntil('}', pos)
		return body, pos + 1, err
	case '}':
		return "", pos, io.EOF
	case '\\':
		name, err := p.readMacroName()
		return name, pos, err
	}
	_, n := p.PeekRune()
	p.Skip(n)
	return buf[:n], pos, nil
}

// readOptionalArg reads an argument in square brackets, if present.
func (p *Tokenizer) readOptionalArg() (string, int, error) {
	buf := p.Peek()
	trimmed := strings.TrimLeft(buf, " \t\r\n")
	if !strings.HasPrefix(trimmed, "[") {
		return "", p.Pos(), nil
	}

	p.Skip(len(buf) - len(trimmed))
	pos := p.Pos()
	p.Skip(1)
	body, err := p.readBalancedUntil(']', pos)
	return body, pos + 1, err
}

// readScriptArg reads the argument of "^" or "_".  A missing argument
// gives an empty token list.
func (p *Tokenizer) readScriptArg() (TokenList, error) {
	arg, pos, err := p.readMandatoryArg()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	if strings.HasPrefix(arg, `\`) && p.macros[arg] != nil {
		// e.g. x^\frac12, where the macro consumes the following
		// arguments
		tokens, err := p.macros[arg].ReadArgs(p, arg, pos)
		return tokens, err
	}
	return p.parseString(arg, pos)
}
