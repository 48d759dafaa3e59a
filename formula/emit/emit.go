// emit.go -
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

// Package emit serialises expression trees as LaTeX or as equation
// editor notation.
package emit

import (
	"strconv"

	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/formula/tree"
)

// Target selects the output notation.
type Target int

// The supported output notations.
const (
	LaTeX Target = iota
	Notation
)

func (t Target) String() string {
	switch t {
	case LaTeX:
		return "latex"
	case Notation:
		return "notation"
	}
	return "Target(" + strconv.Itoa(int(t)) + ")"
}

// An Emitter converts expression trees into text, using the symbol
// table of one dialect.
type Emitter struct {
	table *symbols.Table
}

// New returns an emitter for the given symbol table.
func New(table *symbols.Table) *Emitter {
	return &Emitter{table: table}
}

// Emit renders the tree rooted at node in the given target notation.
func (em *Emitter) Emit(node tree.Node, target Target) string {
	if target == Notation {
		return em.notation(node)
	}
	return em.latex(node)
}

// unwrap returns the children of brace groups, which only serve to
// delimit operands, and the node itself otherwise.
func unwrap(n tree.Node) []tree.Node {
	if g, ok := n.(*tree.Group); ok && g.Kind == tree.KindBrace && !g.Sized {
		return g.Children
	}
	return []tree.Node{n}
}
