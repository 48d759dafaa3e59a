// latex.go -
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

	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/formula/tree"
)

func (em *Emitter) latex(n tree.Node) string {
	switch n := n.(type) {
	case *tree.Literal:
		return n.Text
	case *tree.Symbol:
		return n.Entry.Target
	case *tree.Fraction:
		return `\frac{` + em.latexSeq(unwrap(n.Num)) + `}{` + em.latexSeq(unwrap(n.Den)) + `}`
	case *tree.Power:
		base := em.latexBase(n.Base)
		if s, ok := n.Exp.(*tree.Symbol); ok && s.Entry.Kind == symbols.KindComplement {
			return base + s.Entry.Target
		}
		return base + `^{` + em.latexSeq(unwrap(n.Exp)) + `}`
	case *tree.Subscript:
		return em.latexBase(n.Base) + `_{` + em.latexSeq(unwrap(n.Sub)) + `}`
	case *tree.Function:
		inner := em.latexSeq(n.Arg.Children)
		if n.Name.Kind == symbols.KindCommand {
			return n.Name.Target + `{` + inner + `}`
		}
		open, close := "(", ")"
		if n.Arg.Kind == tree.KindBracket {
			open, close = "[", "]"
		}
		if n.Arg.Sized || em.table.ExtensibleBrackets() {
			open, close = `\left`+open, `\right`+close
		}
		return n.Name.Target + open + inner + close
	case *tree.Group:
		return em.latexGroup(n)
	case *tree.Matrix:
		rows := make([]string, len(n.Rows))
		for i, row := range n.Rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				cells[j] = em.latexSeq(unwrap(cell))
			}
			rows[i] = strings.Join(cells, "&")
		}
		env := n.Env
		if env == "" {
			env = "pmatrix"
		}
		return `\begin{` + env + `}` + strings.Join(rows, `\\`) + `\end{` + env + `}`
	}
	panic("unknown node type " + n.String())
}

// latexBase renders the base of a superscript or subscript.  Big
// operators and named functions like \lim are written without braces,
// so that they keep their limits.
func (em *Emitter) latexBase(n tree.Node) string {
	nodes := unwrap(n)
	if len(nodes) == 1 {
		switch b := nodes[0].(type) {
		case *tree.Symbol:
			if takesLimits(b.Entry) {
				return b.Entry.Target
			}
		case *tree.Subscript:
			if s, ok := b.Base.(*tree.Symbol); ok && takesLimits(s.Entry) {
				return em.latex(b)
			}
		}
	}
	return `{` + em.latexSeq(nodes) + `}`
}

func takesLimits(e *symbols.Entry) bool {
	switch e.Kind {
	case symbols.KindBigOperator:
		return true
	case symbols.KindFunction:
		return endsWithControlWord(e.Target) && strings.LastIndexByte(e.Target, '\\') == 0
	}
	return false
}

func (em *Emitter) latexGroup(g *tree.Group) string {
	inner := em.latexSeq(g.Children)
	switch g.Kind {
	case tree.KindNone:
		return inner
	case tree.KindBrace:
		if g.Sized {
			return `\left\{` + inner + `\right\}`
		}
		return `{` + inner + `}`
	}
	if g.Sized || em.table.ExtensibleBrackets() {
		return `\left` + g.Kind.Open() + inner + `\right` + g.Kind.Close()
	}
	return g.Kind.Open() + inner + g.Kind.Close()
}

// latexSeq concatenates the LaTeX forms of the nodes.  A space is
// inserted where a control word would otherwise run into a following
// letter.
func (em *Emitter) latexSeq(nodes []tree.Node) string {
	var res []string
	mayNeedSpace := false
	for _, n := range nodes {
		s := em.latex(n)
		if s == "" {
			continue
		}
		if mayNeedSpace && symbols.IsLetter(s[0]) {
			res = append(res, " ")
		}
		res = append(res, s)
		mayNeedSpace = endsWithControlWord(s)
	}
	return strings.Join(res, "")
}

func endsWithControlWord(s string) bool {
	i := len(s)
	for i > 0 && symbols.IsLetter(s[i-1]) {
		i--
	}
	return i < len(s) && i > 0 && s[i-1] == '\\'
}
