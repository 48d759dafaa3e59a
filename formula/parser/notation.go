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

package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/seehuhn/hwpmath/formula/scanner"
	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/formula/tokenizer"
	"github.com/seehuhn/hwpmath/formula/tree"
)

// notationParser is a shift-reduce parser over the tokens of one
// delimiter level.  Delimited regions are parsed by a new
// notationParser for the tokens inside the region.
type notationParser struct {
	table *symbols.Table
	toks  tokenizer.TokenList
	pos   int
	stack []tree.Node
}

func (np *notationParser) sub(toks tokenizer.TokenList) *notationParser {
	return &notationParser{table: np.table, toks: toks}
}

func (np *notationParser) push(n tree.Node) {
	np.stack = append(np.stack, n)
}

func (np *notationParser) pop() tree.Node {
	n := np.stack[len(np.stack)-1]
	np.stack = np.stack[:len(np.stack)-1]
	return n
}

// parseAll consumes all tokens and returns the resulting node stack.
func (np *notationParser) parseAll() ([]tree.Node, error) {
	for np.pos < len(np.toks) {
		tok := np.toks[np.pos]
		if e, ok := np.table.LookupBySource(tok.Text); ok && e.Kind == symbols.KindFraction {
			np.pos++
			if len(np.stack) == 0 {
				return nil, scanner.NewError(scanner.ErrMalformedFraction,
					tok.Pos, tok.Text, "missing numerator")
			}
			num := np.pop()
			den, err := np.next(false)
			if err != nil {
				return nil, err
			}
			if den == nil {
				return nil, scanner.NewError(scanner.ErrMalformedFraction,
					tok.Pos, tok.Text, "missing denominator")
			}
			np.push(&tree.Fraction{Num: num, Den: den})
			continue
		}

		node, err := np.next(true)
		if err != nil {
			return nil, err
		}
		if node != nil {
			np.push(node)
		}
	}
	return np.stack, nil
}

// next parses the next operand, consuming one or more tokens.  If
// attach is set, a leading superscript or subscript is attached to the
// node on top of the stack.  At the end of input, or if the next token
// is a fraction keyword, nil is returned.
func (np *notationParser) next(attach bool) (tree.Node, error) {
	for np.pos < len(np.toks) {
		tok := np.toks[np.pos]
		if e, ok := np.table.LookupBySource(tok.Text); ok {
			switch e.Kind {
			case symbols.KindFraction:
				if attach {
					return nil, nil
				}
				return nil, scanner.NewError(scanner.ErrMalformedFraction,
					tok.Pos, tok.Text, "missing denominator")
			case symbols.KindFont:
				np.pos++
				continue
			case symbols.KindComplement:
				// handled by scanToken
			default:
				np.pos++
				return np.apply(e, tok.Pos)
			}
		}

		np.pos++
		nodes, err := np.scanToken(tok.Text, tok.Pos, attach)
		if err != nil {
			return nil, err
		}
		if len(nodes) > 0 {
			return tree.Seq(nodes), nil
		}
	}
	return nil, nil
}

// apply handles a token which is a complete symbol table entry.
// Functions, LEFT and matrix keywords take the following bracket token
// as their argument.
func (np *notationParser) apply(e *symbols.Entry, pos int) (tree.Node, error) {
	switch {
	case e.Kind == symbols.KindFunction || e.Kind == symbols.KindCommand:
		arg, err := np.argument()
		if err != nil {
			return nil, err
		}
		if arg != nil {
			return &tree.Function{Name: e, Arg: arg}, nil
		}
	case isLeft(e):
		g, err := np.sizedGroup()
		if err != nil || g != nil {
			return g, err
		}
	case e.Kind == symbols.KindPrefixFraction:
		node, _, err := np.prefixFraction(e, pos, "", 0, pos)
		return node, err
	case e.Kind == symbols.KindMatrix:
		if np.pos < len(np.toks) {
			tok := np.toks[np.pos]
			if tok.Kind == tokenizer.KindBracket && tok.Text[0] == '{' {
				np.pos++
				return np.keywordMatrix(e, tok.Text, tok.Pos)
			}
		}
	}
	return np.symbol(e, pos, false), nil
}

// argument parses a bracket token, optionally preceded by LEFT, as the
// argument of a function.  If no argument follows, nil is returned.
func (np *notationParser) argument() (*tree.Group, error) {
	if np.pos >= len(np.toks) {
		return nil, nil
	}
	tok := np.toks[np.pos]
	if tok.Kind == tokenizer.KindBracket && !isMatrixLiteral(tok.Text) {
		np.pos++
		return np.group(tok.Text, tok.Pos)
	}
	if e, ok := np.table.LookupBySource(tok.Text); ok && isLeft(e) {
		save := np.pos
		np.pos++
		g, err := np.sizedGroup()
		if err != nil || g != nil {
			return g, err
		}
		np.pos = save
	}
	return nil, nil
}

// sizedGroup parses the bracket token following LEFT.  The RIGHT
// marker is removed, whether it is found as the last token inside the
// brackets or as the token after the closing bracket.
func (np *notationParser) sizedGroup() (*tree.Group, error) {
	if np.pos >= len(np.toks) {
		return nil, nil
	}
	tok := np.toks[np.pos]
	if tok.Kind != tokenizer.KindBracket || isMatrixLiteral(tok.Text) {
		return nil, nil
	}
	np.pos++
	g, err := np.group(tok.Text, tok.Pos)
	if err != nil {
		return nil, err
	}
	g.Sized = true
	if !stripRight(g) && np.pos < len(np.toks) {
		if e, ok := np.table.LookupBySource(np.toks[np.pos].Text); ok && isRight(e) {
			np.pos++
		}
	}
	return g, nil
}

func stripRight(g *tree.Group) bool {
	n := len(g.Children)
	if n == 0 {
		return false
	}
	if s, ok := g.Children[n-1].(*tree.Symbol); ok && isRight(s.Entry) {
		g.Children = g.Children[:n-1]
		return true
	}
	return false
}

// group recursively parses a delimited region, including its
// delimiters.
func (np *notationParser) group(text string, pos int) (*tree.Group, error) {
	toks, err := tokenizer.TokenizeAt(text[1:len(text)-1], pos+1)
	if err != nil {
		return nil, err
	}
	children, err := np.sub(toks).parseAll()
	if err != nil {
		return nil, err
	}
	return &tree.Group{Kind: tree.KindFor(text[0]), Children: children}, nil
}

// symbol returns the node for a symbol table entry which is not
// applied to an argument.  Single letter function names like "P" and
// keywords which need an argument are kept as plain text.
func (np *notationParser) symbol(e *symbols.Entry, pos int, followed bool) tree.Node {
	switch e.Kind {
	case symbols.KindFunction, symbols.KindMatrix:
		if !followed && (e.Kind == symbols.KindMatrix || len(e.Source) == 1) {
			return &tree.Literal{Text: e.Source, Pos: pos}
		}
	case symbols.KindFraction, symbols.KindPrefixFraction:
		return &tree.Literal{Text: e.Source, Pos: pos}
	}
	return &tree.Symbol{Entry: e, Pos: pos}
}

// scanToken splits a single whitespace-separated token, like
// "x^{2}+sin(y)", into nodes.
func (np *notationParser) scanToken(text string, base int, attach bool) ([]tree.Node, error) {
	var nodes []tree.Node
	last := func() tree.Node {
		if len(nodes) == 0 {
			return nil
		}
		return nodes[len(nodes)-1]
	}
	scriptBase := func() tree.Node {
		if len(nodes) > 0 {
			n := nodes[len(nodes)-1]
			nodes = nodes[:len(nodes)-1]
			return n
		}
		if attach && len(np.stack) > 0 {
			return np.pop()
		}
		return &tree.Group{Kind: tree.KindBrace}
	}

	i := 0
	for i < len(text) {
		rest := text[i:]
		pos := base + i
		c := text[i]

		if tokenizer.IsOpening(c) {
			j := tokenizer.MatchBracket(text, i)
			if j < 0 {
				return nil, scanner.NewError(scanner.ErrUnbalancedDelimiter,
					pos, rest, fmt.Sprintf("%q not closed", c))
			}
			node, replace, err := np.bracketed(last(), text[i:j+1], pos)
			if err != nil {
				return nil, err
			}
			if replace {
				nodes[len(nodes)-1] = node
			} else {
				nodes = append(nodes, node)
			}
			i = j + 1
			continue
		}

		if c == '_' {
			var m combination
			if combinationPattern.Find(&m, rest) {
				if isEmptyBrace(last()) {
					nodes = nodes[:len(nodes)-1]
				}
				nodes = append(nodes, np.combination(&m, pos)...)
				i += m.Len()
				continue
			}
		}

		if e, n := np.table.Longest(rest); n > 0 {
			switch e.Kind {
			case symbols.KindComplement:
				nodes = append(nodes, &tree.Power{
					Base: scriptBase(),
					Exp:  &tree.Symbol{Entry: e, Pos: pos},
				})
			case symbols.KindFraction:
				if len(nodes) == 0 && !(attach && len(np.stack) > 0) {
					return nil, scanner.NewError(scanner.ErrMalformedFraction,
						pos, rest, "missing numerator")
				}
				num := scriptBase()
				den, m, err := np.operand(text, i+n, base)
				if err != nil {
					return nil, err
				}
				if den == nil {
					return nil, scanner.NewError(scanner.ErrMalformedFraction,
						pos, rest, "missing denominator")
				}
				nodes = append(nodes, &tree.Fraction{Num: num, Den: den})
				n += m
			default:
				nodes = append(nodes, np.symbol(e, pos, false))
			}
			i += n
			continue
		}

		switch {
		case c == '^' || c == '_':
			arg, n, err := np.script(text, i, base)
			if err != nil {
				return nil, err
			}
			if arg == nil {
				nodes = append(nodes, &tree.Literal{Text: text[i : i+1], Pos: pos})
			} else if c == '^' {
				nodes = append(nodes, &tree.Power{Base: scriptBase(), Exp: arg})
			} else {
				nodes = append(nodes, &tree.Subscript{Base: scriptBase(), Sub: arg})
			}
			i += n

		case symbols.IsLetter(c):
			k := i
			for k < len(text) && symbols.IsLetter(text[k]) {
				k++
			}
			if e, ok := np.table.LookupBySource(text[i:k]); ok && e.Kind == symbols.KindPrefixFraction {
				node, n, err := np.prefixFraction(e, pos, text, k, base)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, node)
				i = k + n
				continue
			}
			var m implicitSubscript
			if np.table.ImplicitSubscripts() && k < len(text) && symbols.IsDigit(text[k]) &&
				implicitPattern.Find(&m, rest) {
				nodes = append(nodes, &tree.Subscript{
					Base: np.word(m.Base, pos, false),
					Sub:  &tree.Literal{Text: m.Sub, Pos: pos + len(m.Base)},
				})
				i += len(m.Base) + len(m.Sub)
				continue
			}
			followed := k < len(text) && tokenizer.IsOpening(text[k])
			if node := np.word(text[i:k], pos, followed); node != nil {
				nodes = append(nodes, node)
			}
			i = k

		case symbols.IsDigit(c):
			k := i
			for k < len(text) && symbols.IsDigit(text[k]) {
				k++
			}
			if k+1 < len(text) && text[k] == '.' && symbols.IsDigit(text[k+1]) {
				k++
				for k < len(text) && symbols.IsDigit(text[k]) {
					k++
				}
			}
			nodes = append(nodes, &tree.Literal{Text: text[i:k], Pos: pos})
			i = k

		default:
			r, size := utf8.DecodeRuneInString(rest)
			k := i + size
			if r >= utf8.RuneSelf && unicode.IsLetter(r) {
				for k < len(text) {
					r, size := utf8.DecodeRuneInString(text[k:])
					if r < utf8.RuneSelf || !unicode.IsLetter(r) {
						break
					}
					k += size
				}
			}
			nodes = append(nodes, &tree.Literal{Text: text[i:k], Pos: pos})
			i = k
		}
	}
	return nodes, nil
}

// word converts a run of ASCII letters into a node.  Font keywords
// give nil.
func (np *notationParser) word(w string, pos int, followed bool) tree.Node {
	e, ok := np.table.LookupBySource(w)
	if !ok {
		return &tree.Literal{Text: w, Pos: pos}
	}
	if e.Kind == symbols.KindFont {
		return nil
	}
	return np.symbol(e, pos, followed)
}

// bracketed converts a delimited region inside a token.  If the region
// is the argument of the preceding node prev, the combined node is
// returned and replace is set.
func (np *notationParser) bracketed(prev tree.Node, region string, pos int) (node tree.Node, replace bool, err error) {
	if isMatrixLiteral(region) {
		m, err := np.literalMatrix(region, pos)
		return m, false, err
	}

	if s, ok := prev.(*tree.Symbol); ok {
		e := s.Entry
		switch {
		case e.Kind == symbols.KindMatrix && region[0] == '{':
			m, err := np.keywordMatrix(e, region, pos)
			return m, true, err
		case e.Kind == symbols.KindFunction || e.Kind == symbols.KindCommand:
			g, err := np.group(region, pos)
			if err != nil {
				return nil, false, err
			}
			return &tree.Function{Name: e, Arg: g}, true, nil
		case isLeft(e):
			g, err := np.group(region, pos)
			if err != nil {
				return nil, false, err
			}
			g.Sized = true
			stripRight(g)
			return g, true, nil
		}
	}

	g, err := np.group(region, pos)
	return g, false, err
}

// script parses the argument of the "^" or "_" at text[i].  The
// argument is a delimited region, a run of letters and digits, or a
// single character.  The number of bytes consumed, including the "^"
// or "_", is returned together with the node.
func (np *notationParser) script(text string, i, base int) (tree.Node, int, error) {
	j := i + 1
	if j >= len(text) {
		return nil, 1, nil
	}

	if tokenizer.IsOpening(text[j]) {
		k := tokenizer.MatchBracket(text, j)
		if k < 0 {
			return nil, 0, scanner.NewError(scanner.ErrUnbalancedDelimiter,
				base+j, text[j:], fmt.Sprintf("%q not closed", text[j]))
		}
		g, err := np.group(text[j:k+1], base+j)
		return g, k + 1 - i, err
	}

	k := j
	for k < len(text) && (symbols.IsLetter(text[k]) || symbols.IsDigit(text[k])) {
		k++
	}
	if k == j {
		_, size := utf8.DecodeRuneInString(text[j:])
		k = j + size
	}

	if text[i] == '^' && text[j:k] == "C" && np.table.Complement() != nil {
		return &tree.Symbol{Entry: np.table.Complement(), Pos: base + i}, k - i, nil
	}

	nodes, err := np.scanToken(text[j:k], base+j, false)
	if err != nil {
		return nil, 0, err
	}
	return tree.Seq(nodes), k - i, nil
}

// operand parses the denominator of a slash fraction, starting at
// text[j].  This is a run of letters and digits or a single character,
// together with any delimited regions directly following it, as in
// "cos(x)".  The number of bytes consumed is returned with the node.
// At the end of text, nil is returned.
func (np *notationParser) operand(text string, j, base int) (tree.Node, int, error) {
	if j >= len(text) {
		return nil, 0, nil
	}
	k := j
	for k < len(text) && (symbols.IsLetter(text[k]) || symbols.IsDigit(text[k])) {
		k++
	}
	if k == j && !tokenizer.IsOpening(text[j]) {
		_, size := utf8.DecodeRuneInString(text[j:])
		k = j + size
	}
	for k < len(text) && tokenizer.IsOpening(text[k]) {
		m := tokenizer.MatchBracket(text, k)
		if m < 0 {
			return nil, 0, scanner.NewError(scanner.ErrUnbalancedDelimiter,
				base+k, text[k:], fmt.Sprintf("%q not closed", text[k]))
		}
		k = m + 1
	}

	nodes, err := np.scanToken(text[j:k], base+j, false)
	if err != nil {
		return nil, 0, err
	}
	return tree.Seq(nodes), k - j, nil
}

// prefixFraction reads the two braced arguments of "frac{a}{b}".  The
// arguments are taken from text, starting at byte offset i, and once
// text is used up from the following tokens.  The number of bytes of
// text consumed is returned with the node.
func (np *notationParser) prefixFraction(e *symbols.Entry, pos int, text string, i, base int) (tree.Node, int, error) {
	start := i
	var args [2]*tree.Group
	for k := range args {
		var g *tree.Group
		var err error
		if i < len(text) {
			if text[i] == '{' {
				j := tokenizer.MatchBracket(text, i)
				if j < 0 {
					return nil, 0, scanner.NewError(scanner.ErrUnbalancedDelimiter,
						base+i, text[i:], `"{" not closed`)
				}
				g, err = np.group(text[i:j+1], base+i)
				i = j + 1
			}
		} else if np.pos < len(np.toks) {
			tok := np.toks[np.pos]
			if tok.Kind == tokenizer.KindBracket && tok.Text[0] == '{' {
				np.pos++
				g, err = np.group(tok.Text, tok.Pos)
			}
		}
		if err != nil {
			return nil, 0, err
		}
		if g == nil {
			msg := "missing numerator"
			if k > 0 {
				msg = "missing denominator"
			}
			return nil, 0, scanner.NewError(scanner.ErrMalformedFraction,
				pos, e.Source, msg)
		}
		args[k] = g
	}
	return &tree.Fraction{Num: args[0], Den: args[1]}, i - start, nil
}

// combination builds the nodes for "_nC_r".  An empty brace group
// directly before the pattern, as in "{}_nC_r", is used as the base
// of the left subscript.
func (np *notationParser) combination(m *combination, pos int) []tree.Node {
	var op tree.Node
	if e, ok := np.table.LookupBySource(m.Op); ok {
		op = &tree.Symbol{Entry: e, Pos: pos + 1 + len(m.N)}
	} else {
		op = &tree.Literal{Text: m.Op, Pos: pos + 1 + len(m.N)}
	}
	return []tree.Node{
		&tree.Subscript{
			Base: &tree.Group{Kind: tree.KindBrace},
			Sub:  &tree.Literal{Text: m.N, Pos: pos + 1},
		},
		&tree.Subscript{
			Base: op,
			Sub:  &tree.Literal{Text: m.R, Pos: pos + m.Len() - len(m.R)},
		},
	}
}

func isLeft(e *symbols.Entry) bool {
	return e.Kind == symbols.KindKeyword && e.Target == `\left`
}

func isRight(e *symbols.Entry) bool {
	return e.Kind == symbols.KindKeyword && e.Target == `\right`
}

func isEmptyBrace(n tree.Node) bool {
	g, ok := n.(*tree.Group)
	return ok && g.Kind == tree.KindBrace && len(g.Children) == 0
}
