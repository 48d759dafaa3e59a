// matrix.go -
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

package parser

import (
	"fmt"

	"github.com/seehuhn/hwpmath/formula/scanner"
	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/formula/tokenizer"
	"github.com/seehuhn/hwpmath/formula/tree"
)

// DefaultMatrixEnv is the LaTeX environment used for matrix literals.
const DefaultMatrixEnv = "pmatrix"

// isMatrixLiteral checks whether s has the form "[[...]]", where the
// inner brackets enclose everything between the outer brackets.
func isMatrixLiteral(s string) bool {
	n := len(s)
	return n >= 4 && s[0] == '[' && s[1] == '[' &&
		tokenizer.MatchBracket(s, 0) == n-1 &&
		tokenizer.MatchBracket(s, 1) == n-2
}

// literalMatrix parses "[[a b;c d]]": rows are separated by
// semicolons, cells by white space.
func (np *notationParser) literalMatrix(region string, pos int) (*tree.Matrix, error) {
	var rows [][]tree.Node
	for _, row := range splitTopLevel(region[2:len(region)-2], ';', pos+2) {
		toks, err := tokenizer.TokenizeAt(row.text, row.pos)
		if err != nil {
			return nil, err
		}
		var cells []tree.Node
		for _, tok := range toks {
			children, err := np.sub(tokenizer.TokenList{tok}).parseAll()
			if err != nil {
				return nil, err
			}
			cells = append(cells, tree.Seq(children))
		}
		rows = append(rows, cells)
	}
	return newMatrix(DefaultMatrixEnv, rows, pos, region)
}

// keywordMatrix parses the equation editor form "pmatrix{a & b # c &
// d}": rows are separated by "#", cells by "&".
func (np *notationParser) keywordMatrix(e *symbols.Entry, region string, pos int) (*tree.Matrix, error) {
	var rows [][]tree.Node
	for _, row := range splitTopLevel(region[1:len(region)-1], '#', pos+1) {
		var cells []tree.Node
		for _, cell := range splitTopLevel(row.text, '&', row.pos) {
			toks, err := tokenizer.TokenizeAt(cell.text, cell.pos)
			if err != nil {
				return nil, err
			}
			children, err := np.sub(toks).parseAll()
			if err != nil {
				return nil, err
			}
			cells = append(cells, tree.Seq(children))
		}
		rows = append(rows, cells)
	}
	return newMatrix(e.Target, rows, pos, region)
}

// newMatrix checks that the matrix is not empty and that all rows have
// the same length.
func newMatrix(env string, rows [][]tree.Node, pos int, context string) (*tree.Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, scanner.NewError(scanner.ErrMalformedMatrix,
			pos, context, "empty matrix")
	}
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, scanner.NewError(scanner.ErrMalformedMatrix,
				pos, context, fmt.Sprintf("row %d has %d cells, expected %d",
					i+1, len(row), len(rows[0])))
		}
	}
	return &tree.Matrix{Env: env, Rows: rows}, nil
}

type part struct {
	text string
	pos  int
}

// splitTopLevel splits s at all occurrences of sep which are not
// enclosed in delimiters.  The argument base gives the position of s
// in the formula.
func splitTopLevel(s string, sep byte, base int) []part {
	var res []part
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case tokenizer.IsOpening(c):
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == sep && depth == 0:
			res = append(res, part{text: s[start:i], pos: base + start})
			start = i + 1
		}
	}
	res = append(res, part{text: s[start:], pos: base + start})
	return res
}
