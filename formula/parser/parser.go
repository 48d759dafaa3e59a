// parser.go -
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

// Package parser builds expression trees from tokenized formulas, both
// for equation editor notation and for LaTeX.
package parser

import (
	"errors"

	"github.com/seehuhn/hwpmath/formula/latex"
	"github.com/seehuhn/hwpmath/formula/scanner"
	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/formula/tokenizer"
	"github.com/seehuhn/hwpmath/formula/tree"
)

// Parser turns token lists into expression trees, using the symbol
// table of one dialect.  A Parser has no mutable state and can be used
// concurrently.
type Parser struct {
	table *symbols.Table
}

// New returns a parser for the given symbol table.
func New(table *symbols.Table) *Parser {
	return &Parser{table: table}
}

// Parse builds the expression tree for a tokenized formula in
// equation editor notation.  The result is a group without
// delimiters, containing the top-level nodes of the formula.
func (p *Parser) Parse(toks tokenizer.TokenList) (*tree.Group, error) {
	np := &notationParser{table: p.table, toks: toks}
	children, err := np.parseAll()
	if err != nil {
		return nil, err
	}
	return &tree.Group{Kind: tree.KindNone, Children: children}, nil
}

// ParseString tokenizes and parses a formula in equation editor
// notation.  The character offset of returned errors is set.
func (p *Parser) ParseString(input string) (*tree.Group, error) {
	toks, err := tokenizer.Tokenize(input)
	if err != nil {
		return nil, locate(err, input)
	}
	root, err := p.Parse(toks)
	if err != nil {
		return nil, locate(err, input)
	}
	return root, nil
}

// ParseLaTeX builds the expression tree for a tokenized LaTeX formula.
func (p *Parser) ParseLaTeX(toks latex.TokenList) (*tree.Group, error) {
	lp := &latexParser{table: p.table}
	children, err := lp.parseList(toks)
	if err != nil {
		return nil, err
	}
	return &tree.Group{Kind: tree.KindNone, Children: children}, nil
}

// ParseLaTeXString tokenizes and parses a LaTeX formula.  The
// character offset of returned errors is set.
func (p *Parser) ParseLaTeXString(input string) (*tree.Group, error) {
	toks, err := latex.Tokenize(input)
	if err != nil {
		return nil, locate(err, input)
	}
	root, err := p.ParseLaTeX(toks)
	if err != nil {
		return nil, locate(err, input)
	}
	return root, nil
}

func locate(err error, input string) error {
	var pErr *scanner.ParseError
	if errors.As(err, &pErr) {
		pErr.Locate(input)
	}
	return err
}
