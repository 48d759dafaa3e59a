// environments.go -
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
	"strings"

	"github.com/seehuhn/hwpmath/formula/scanner"
)

type environment interface {
	ReadArgs(p *Tokenizer, name string, pos int) (TokenList, error)
}

type simpleEnvClass struct{}

func (env simpleEnvClass) ReadArgs(p *Tokenizer, name string, pos int) (TokenList, error) {
	tok := &Token{
		Type: TokenMacro,
		Name: `\begin`,
		Args: []*Arg{
			{Value: TokenList{verbatim(name, pos)}},
		},
		Pos: pos,
	}
	return TokenList{tok}, nil
}

var simpleEnv = simpleEnvClass{}

// bodyEnv is used for environments like "pmatrix", where the whole
// environment, up to the matching \end, is returned as a single
// token.  The string gives the types of the arguments following
// \begin{name}, using the same conventions as typedMacro.  The
// resulting token has the environment name as the first argument,
// followed by the environment arguments and finally the tokenized
// body.
type bodyEnv string

func (env bodyEnv) ReadArgs(p *Tokenizer, name string, pos int) (TokenList, error) {
	args := []*Arg{
		{Value: TokenList{verbatim(name, pos)}},
	}
	extra, err := p.readTypedArgs(string(env))
	if err != nil {
		return nil, err
	}
	args = append(args, extra...)

	bodyPos := p.Pos()
	body, err := p.readEnvBody(name, pos)
	if err != nil {
		return nil, err
	}
	val, err := p.parseString(body, bodyPos)
	if err != nil {
		return nil, err
	}
	args = append(args, &Arg{Value: val})

	return TokenList{&Token{Type: TokenMacro, Name: `\begin`, Args: args, Pos: pos}}, nil
}

// readEnvBody reads the input up to the \end{name} which closes the
// environment.  Nested environments of the same name are skipped.
// The closing \end{name} is consumed but not returned.
func (p *Tokenizer) readEnvBody(name string, pos int) (string, error) {
	begin := `\begin{` + name + `}`
	end := `\end{` + name + `}`

	buf := p.Peek()
	depth := 0
	for i := 0; i < len(buf); i++ {
		switch {
		case strings.HasPrefix(buf[i:], begin):
			depth++
			i += len(begin) - 1
		case strings.HasPrefix(buf[i:], end):
			if depth == 0 {
				p.Skip(i + len(end))
				return buf[:i], nil
			}
			depth--
			i += len(end) - 1
		case buf[i] == '\\':
			i++
		}
	}
	return "", scanner.NewError(scanner.ErrMalformedMatrix, pos, begin,
		"missing "+end)
}
