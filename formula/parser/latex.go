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

package parser

import (
	"github.com/seehuhn/hwpmath/formula/latex"
	"github.com/seehuhn/hwpmath/formula/scanner"
	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/formula/tree"
)

type latexParser struct {
	table *symbols.Table
}

var closingOther = map[string]string{
	"(": ")",
	"[": "]",
}

// parseList converts a list of LaTeX tokens into nodes.  Superscripts
// and subscripts attach to the preceding node.
func (lp *latexParser) parseList(toks latex.TokenList) ([]tree.Node, error) {
	var stack []tree.Node
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Type {
		case latex.TokenSpace, latex.TokenComment:
			// pass

		case latex.TokenGroup:
			children, err := lp.parseList(tok.Args[0].Value)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &tree.Group{Kind: tree.KindBrace, Children: children})

		case latex.TokenScript:
			var base tree.Node
			if len(stack) > 0 {
				base = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			} else {
				base = &tree.Group{Kind: tree.KindBrace}
			}
			arg, err := lp.scriptArg(tok)
			if err != nil {
				return nil, err
			}
			if tok.Name == "^" {
				stack = append(stack, &tree.Power{Base: base, Exp: arg})
			} else {
				stack = append(stack, &tree.Subscript{Base: base, Sub: arg})
			}

		case latex.TokenOther:
			if close, ok := closingOther[tok.Name]; ok {
				if j := matchOther(toks, i, close); j > 0 {
					children, err := lp.parseList(toks[i+1 : j])
					if err != nil {
						return nil, err
					}
					stack = append(stack, &tree.Group{
						Kind:     tree.KindFor(tok.Name[0]),
						Children: children,
					})
					i = j
					continue
				}
			}
			stack = append(stack, lp.lookup(tok))

		case latex.TokenMacro:
			nodes, next, err := lp.macro(toks, i)
			if err != nil {
				return nil, err
			}
			stack = append(stack, nodes...)
			i = next

		default:
			stack = append(stack, &tree.Literal{Text: tok.Name, Pos: tok.Pos})
		}
	}
	return stack, nil
}

// macro converts the macro call toks[i].  The index of the last token
// used is returned together with the nodes.
func (lp *latexParser) macro(toks latex.TokenList, i int) ([]tree.Node, int, error) {
	tok := toks[i]
	switch tok.Name {
	case `\frac`, `\dfrac`, `\tfrac`:
		if len(tok.Args) < 2 {
			return nil, i, scanner.NewError(scanner.ErrMalformedFraction,
				tok.Pos, latex.TokenList{tok}.FormatMaths(), "missing argument")
		}
		num, err := lp.parseList(tok.Args[0].Value)
		if err != nil {
			return nil, i, err
		}
		den, err := lp.parseList(tok.Args[1].Value)
		if err != nil {
			return nil, i, err
		}
		return []tree.Node{&tree.Fraction{Num: tree.Seq(num), Den: tree.Seq(den)}}, i, nil

	case `\sqrt`:
		e, ok := lp.table.LookupByTarget(tok.Name)
		n := len(tok.Args)
		if ok && n == 2 && len(tok.Args[0].Value) == 0 {
			children, err := lp.parseList(tok.Args[1].Value)
			if err != nil {
				return nil, i, err
			}
			arg := &tree.Group{Kind: tree.KindBrace, Children: children}
			return []tree.Node{&tree.Function{Name: e, Arg: arg}}, i, nil
		}

	case `\left`:
		if kind := delimKind(tok); kind != tree.KindNone {
			if j := matchRight(toks, i); j > 0 {
				children, err := lp.parseList(toks[i+1 : j])
				if err != nil {
					return nil, i, err
				}
				g := &tree.Group{Kind: kind, Sized: true, Children: children}
				return []tree.Node{g}, j, nil
			}
		}
		return lp.marker(tok), i, nil

	case `\right`:
		return lp.marker(tok), i, nil

	case `\begin`:
		if len(tok.Args) >= 2 {
			env := tok.Args[0].String()
			if _, isMatrix := latex.MatrixEnvironments[env]; isMatrix {
				body := tok.Args[len(tok.Args)-1].Value
				m, err := lp.matrix(env, body, tok)
				if err != nil {
					return nil, i, err
				}
				return []tree.Node{m}, i, nil
			}
		}

	case `\mathrm`:
		if e, ok := lp.table.LookupByTarget(latex.TokenList{tok}.FormatMaths()); ok {
			return lp.apply(e, toks, i)
		}

	default:
		if len(tok.Args) == 0 {
			if e, ok := lp.table.LookupByTarget(tok.Name); ok {
				return lp.apply(e, toks, i)
			}
		}
	}

	literal := &tree.Literal{Text: latex.TokenList{tok}.FormatMaths(), Pos: tok.Pos}
	return []tree.Node{literal}, i, nil
}

// apply builds a function application if e is a function name followed
// by a parenthesised argument, and a symbol otherwise.
func (lp *latexParser) apply(e *symbols.Entry, toks latex.TokenList, i int) ([]tree.Node, int, error) {
	symbol := []tree.Node{&tree.Symbol{Entry: e, Pos: toks[i].Pos}}
	if e.Kind != symbols.KindFunction {
		return symbol, i, nil
	}

	k := i + 1
	for k < len(toks) && toks[k].Type == latex.TokenSpace {
		k++
	}
	if k >= len(toks) {
		return symbol, i, nil
	}

	next := toks[k]
	var arg *tree.Group
	var last int
	switch {
	case next.Type == latex.TokenMacro && next.Name == `\left` && delimKind(next) != tree.KindNone:
		j := matchRight(toks, k)
		if j < 0 {
			return symbol, i, nil
		}
		arg = &tree.Group{Kind: delimKind(next), Sized: true}
		last = j
	case next.Type == latex.TokenOther && closingOther[next.Name] != "":
		j := matchOther(toks, k, closingOther[next.Name])
		if j < 0 {
			return symbol, i, nil
		}
		arg = &tree.Group{Kind: tree.KindFor(next.Name[0])}
		last = j
	default:
		return symbol, i, nil
	}

	children, err := lp.parseList(toks[k+1 : last])
	if err != nil {
		return nil, i, err
	}
	arg.Children = children
	return []tree.Node{&tree.Function{Name: e, Arg: arg}}, last, nil
}

// marker converts an unmatched \left or \right, or one with a
// delimiter which does not form a group, into a LEFT/RIGHT symbol
// followed by the delimiter.
func (lp *latexParser) marker(tok *latex.Token) []tree.Node {
	var res []tree.Node
	if e, ok := lp.table.LookupByTarget(tok.Name); ok {
		res = append(res, &tree.Symbol{Entry: e, Pos: tok.Pos})
	} else {
		res = append(res, &tree.Literal{Text: tok.Name, Pos: tok.Pos})
	}
	if len(tok.Args) > 0 {
		delim := tok.Args[0].Value[0]
		res = append(res, lp.lookup(delim))
	}
	return res
}

// lookup converts a single token into a symbol if its text is found in
// the symbol table, and into a literal otherwise.
func (lp *latexParser) lookup(tok *latex.Token) tree.Node {
	if e, ok := lp.table.LookupByTarget(tok.Name); ok {
		return &tree.Symbol{Entry: e, Pos: tok.Pos}
	}
	return &tree.Literal{Text: tok.Name, Pos: tok.Pos}
}

func (lp *latexParser) scriptArg(tok *latex.Token) (tree.Node, error) {
	arg := tok.Args[0].Value
	if complement := lp.table.Complement(); complement != nil {
		var content latex.TokenList
		for _, t := range arg {
			if t.Type != latex.TokenSpace {
				content = append(content, t)
			}
		}
		if len(content) == 1 && latex.IsMacro(content[0], `\complement`) {
			return &tree.Symbol{Entry: complement, Pos: tok.Pos}, nil
		}
	}
	children, err := lp.parseList(arg)
	if err != nil {
		return nil, err
	}
	return tree.Seq(children), nil
}

// matrix splits the body of a matrix environment into cells at "&"
// and into rows at "\\".
func (lp *latexParser) matrix(env string, body latex.TokenList, tok *latex.Token) (*tree.Matrix, error) {
	var rows [][]tree.Node
	var row []tree.Node
	var cell latex.TokenList

	endCell := func() error {
		children, err := lp.parseList(cell)
		if err != nil {
			return err
		}
		row = append(row, tree.Seq(children))
		cell = nil
		return nil
	}

	for _, t := range body {
		switch {
		case t.Type == latex.TokenOther && t.Name == "&":
			if err := endCell(); err != nil {
				return nil, err
			}
		case latex.IsMacro(t, `\\`):
			if err := endCell(); err != nil {
				return nil, err
			}
			rows = append(rows, row)
			row = nil
		default:
			cell = append(cell, t)
		}
	}
	if len(row) > 0 || hasContent(cell) {
		if err := endCell(); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return newMatrix(env, rows, tok.Pos, latex.TokenList{tok}.FormatMaths())
}

func hasContent(toks latex.TokenList) bool {
	for _, tok := range toks {
		if tok.Type != latex.TokenSpace && tok.Type != latex.TokenComment {
			return true
		}
	}
	return false
}

// delimKind returns the group kind for the delimiter of a \left or
// \right token.
func delimKind(tok *latex.Token) tree.GroupKind {
	if len(tok.Args) == 0 || len(tok.Args[0].Value) == 0 {
		return tree.KindNone
	}
	switch tok.Args[0].Value[0].Name {
	case "(":
		return tree.KindParen
	case "[":
		return tree.KindBracket
	case `\{`:
		return tree.KindBrace
	}
	return tree.KindNone
}

var closingDelim = map[tree.GroupKind]string{
	tree.KindParen:   ")",
	tree.KindBracket: "]",
	tree.KindBrace:   `\}`,
}

// matchRight finds the \right which closes the \left at toks[i].  If
// the delimiter of this \right does not match the delimiter of the
// \left, as in "\left( a \right]", -1 is returned.
func matchRight(toks latex.TokenList, i int) int {
	depth := 0
	for j := i; j < len(toks); j++ {
		if toks[j].Type != latex.TokenMacro {
			continue
		}
		switch toks[j].Name {
		case `\left`:
			depth++
		case `\right`:
			depth--
			if depth == 0 {
				if !closes(toks[i], toks[j]) {
					return -1
				}
				return j
			}
		}
	}
	return -1
}

func closes(left, right *latex.Token) bool {
	kind := delimKind(left)
	if kind == tree.KindNone || len(right.Args) == 0 || len(right.Args[0].Value) == 0 {
		return false
	}
	return right.Args[0].Value[0].Name == closingDelim[kind]
}

// matchOther finds the closing delimiter for the opening delimiter at
// toks[i].
func matchOther(toks latex.TokenList, i int, close string) int {
	open := toks[i].Name
	depth := 0
	for j := i; j < len(toks); j++ {
		if toks[j].Type != latex.TokenOther {
			continue
		}
		switch toks[j].Name {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}
