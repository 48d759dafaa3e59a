// tree.go -
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

// Package tree defines the syntax tree shared by the formula parsers
// and emitters.
package tree

import (
	"fmt"
	"strings"

	"github.com/seehuhn/hwpmath/formula/symbols"
)

// Node is implemented by all syntax tree nodes.
type Node interface {
	// String returns a debugging representation of the node.
	String() string
}

// Literal is text which is passed through unchanged, like "xyz" or
// "12".
type Literal struct {
	Text string
	Pos  int
}

func (n *Literal) String() string {
	return fmt.Sprintf("Literal(%q)", n.Text)
}

// Symbol is a token found in the symbol table.
type Symbol struct {
	Entry *symbols.Entry
	Pos   int
}

func (n *Symbol) String() string {
	return fmt.Sprintf("Symbol(%s)", n.Entry.Source)
}

// Fraction is a numerator over a denominator.
type Fraction struct {
	Num, Den Node
}

func (n *Fraction) String() string {
	return "Fraction(" + n.Num.String() + ", " + n.Den.String() + ")"
}

// Power is a base with a superscript.  The exponent is a Symbol with
// kind symbols.KindComplement for the set complement.
type Power struct {
	Base, Exp Node
}

func (n *Power) String() string {
	return "Power(" + n.Base.String() + ", " + n.Exp.String() + ")"
}

// Subscript is a base with a subscript.
type Subscript struct {
	Base, Sub Node
}

func (n *Subscript) String() string {
	return "Subscript(" + n.Base.String() + ", " + n.Sub.String() + ")"
}

// Function is a function name applied to an argument, like "sin(x)"
// or "sqrt {2}".
type Function struct {
	Name *symbols.Entry
	Arg  *Group
}

func (n *Function) String() string {
	return "Function(" + n.Name.Source + ", " + n.Arg.String() + ")"
}

// GroupKind gives the delimiters around a group.
type GroupKind int

// The different kinds of groups.
const (
	// KindNone is used for a sequence of nodes without delimiters.
	KindNone GroupKind = iota
	KindParen
	KindBracket
	KindBrace
)

// Open returns the opening delimiter for the group kind.
func (k GroupKind) Open() string {
	return [...]string{"", "(", "[", "{"}[k]
}

// Close returns the closing delimiter for the group kind.
func (k GroupKind) Close() string {
	return [...]string{"", ")", "]", "}"}[k]
}

// KindFor returns the group kind for the opening delimiter c.
func KindFor(c byte) GroupKind {
	switch c {
	case '(':
		return KindParen
	case '[':
		return KindBracket
	case '{':
		return KindBrace
	}
	return KindNone
}

// Group is a sequence of nodes, optionally enclosed in delimiters.
type Group struct {
	Kind GroupKind

	// Sized is set for delimiters which grow with their contents,
	// i.e. LEFT/RIGHT in equation editor notation and \left/\right in
	// LaTeX.
	Sized bool

	Children []Node
}

func (n *Group) String() string {
	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = child.String()
	}
	name := "Group"
	if n.Sized {
		name = "Sized"
	}
	return name + n.Kind.Open() + n.Kind.Close() + "(" + strings.Join(parts, ", ") + ")"
}

// Matrix is a rectangular array of cells.
type Matrix struct {
	// Env is the name of the LaTeX environment, e.g. "pmatrix".
	Env  string
	Rows [][]Node
}

func (n *Matrix) String() string {
	rows := make([]string, len(n.Rows))
	for i, row := range n.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cell.String()
		}
		rows[i] = strings.Join(cells, ", ")
	}
	return "Matrix[" + strings.Join(rows, "; ") + "]"
}

// Seq returns a single node for the sequence nodes.  A sequence of
// length one is returned unchanged, other sequences are wrapped in a
// group without delimiters.
func Seq(nodes []Node) Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &Group{Kind: KindNone, Children: nodes}
}
