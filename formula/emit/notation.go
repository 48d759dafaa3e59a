// notation.go -
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

package emit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/formula/tree"
)

func (em *Emitter) notation(n tree.Node) string {
	switch n := n.(type) {
	case *tree.Literal:
		return n.Text
	case *tree.Symbol:
		return n.Entry.Source
	case *tree.Fraction:
		op := "over"
		if f := em.table.Fraction(); f != nil {
			op = f.Source
		}
		return em.operand(n.Num) + " " + op + " " + em.operand(n.Den)
	case *tree.Power:
		if s, ok := n.Exp.(*tree.Symbol); ok && s.Entry.Kind == symbols.KindComplement {
			return em.operand(n.Base) + s.Entry.Source
		}
		return em.operand(n.Base) + "^" + em.script(n.Exp)
	case *tree.Subscript:
		return em.operand(n.Base) + "_" + em.script(n.Sub)
	case *tree.Function:
		inner := em.notationSeq(n.Arg.Children)
		if n.Name.Kind == symbols.KindCommand {
			return n.Name.Source + " {" + inner + "}"
		}
		open, close := "(", ")"
		if n.Arg.Kind == tree.KindBracket {
			open, close = "[", "]"
		}
		if n.Arg.Sized && em.table.Left() != nil {
			return n.Name.Source + " " + em.sized(open, inner, close)
		}
		return n.Name.Source + open + inner + close
	case *tree.Group:
		inner := em.notationSeq(n.Children)
		if n.Kind == tree.KindNone {
			return inner
		}
		if n.Sized && em.table.Left() != nil {
			return em.sized(n.Kind.Open(), inner, n.Kind.Close())
		}
		return n.Kind.Open() + inner + n.Kind.Close()
	case *tree.Matrix:
		return em.notationMatrix(n)
	}
	panic("unknown node type " + n.String())
}

func (em *Emitter) notationSeq(nodes []tree.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s := em.notation(n); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (em *Emitter) sized(open, inner, close string) string {
	left := em.table.Left().Source
	right := em.table.Right().Source
	if inner == "" {
		return left + " " + open + " " + right + " " + close
	}
	return left + " " + open + " " + inner + " " + right + " " + close
}

// operand renders the operand of a fraction or the base of a script.
// Operands containing white space are enclosed in braces, so that
// they read back as a single token.
func (em *Emitter) operand(n tree.Node) string {
	nodes := unwrap(n)
	s := em.notationSeq(nodes)
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "{" + s + "}"
	}
	if len(nodes) != 1 {
		return "{" + s + "}"
	}
	return s
}

// script renders a superscript or subscript.  Scripts longer than a
// single character are enclosed in braces.
func (em *Emitter) script(n tree.Node) string {
	s := em.notationSeq(unwrap(n))
	if utf8.RuneCountInString(s) == 1 {
		return s
	}
	return "{" + s + "}"
}

func (em *Emitter) notationMatrix(m *tree.Matrix) string {
	e, ok := em.table.LookupBySource(m.Env)
	if m.Env != "pmatrix" && ok && e.Kind == symbols.KindMatrix {
		rows := make([]string, len(m.Rows))
		for i, row := range m.Rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				cells[j] = em.notationSeq(unwrap(cell))
			}
			rows[i] = strings.Join(cells, " & ")
		}
		return m.Env + "{" + strings.Join(rows, " # ") + "}"
	}

	rows := make([]string, len(m.Rows))
	for i, row := range m.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = em.operand(cell)
		}
		rows[i] = strings.Join(cells, " ")
	}
	return "[[" + strings.Join(rows, ";") + "]]"
}
