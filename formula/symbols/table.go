// table.go -
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

// Package symbols holds the static mapping of atomic formula tokens
// between equation editor notation and LaTeX.
package symbols

import (
	"sort"
	"strings"
)

// Arity gives the number of operands an entry takes when it is
// reduced by the parser.
type Arity int

// The possible arities of a symbol table entry.
const (
	Nullary Arity = iota
	Unary
	Binary
)

// Kind classifies symbol table entries.  The parser and the emitter
// use the kind to decide how an entry combines with its neighbours.
type Kind int

// The different kinds of symbol table entries.
const (
	KindOperator Kind = iota
	KindRelation
	KindLetter
	KindBigOperator

	// KindFunction entries take a parenthesised argument, which is
	// written as \name(...) in LaTeX.
	KindFunction

	// KindCommand entries take a braced argument, like \sqrt{...}.
	KindCommand

	// KindKeyword is used for the LEFT and RIGHT delimiter markers.
	KindKeyword

	KindFraction

	// KindPrefixFraction entries take the numerator and the
	// denominator as two braced arguments, like frac{a}{b}.
	KindPrefixFraction

	KindComplement

	// KindFont entries only change the font in the equation editor
	// and are dropped by the parser.
	KindFont

	KindMatrix
)

// Entry describes a single atomic token.
type Entry struct {
	// Source is the spelling of the token in the equation editor
	// notation.
	Source string

	// Target is the LaTeX form of the token.
	Target string

	Arity Arity
	Kind  Kind
}

// IsWord reports whether the source form of the entry is an
// alphabetic keyword.  Keywords only match complete runs of letters,
// all other source forms match anywhere inside a token.
func (e *Entry) IsWord() bool {
	return isWord(e.Source)
}

// A Dialect describes one flavour of the equation editor notation.
type Dialect struct {
	Name    string
	Entries []Entry

	// ExtensibleBrackets selects \left and \right for every pair of
	// parentheses or brackets in LaTeX output.  Otherwise only
	// delimiters marked with LEFT and RIGHT are extensible.
	ExtensibleBrackets bool

	// ImplicitSubscripts causes a letter directly followed by digits,
	// like "x12", to be read as a subscript.
	ImplicitSubscripts bool
}

// Table provides lookups in both directions for the entries of a
// dialect.  A Table is immutable after construction and can be
// shared between goroutines.
type Table struct {
	name       string
	extensible bool
	implicit   bool

	bySource map[string]*Entry
	byTarget map[string]*Entry
	glyphs   []*Entry

	fraction   *Entry
	complement *Entry
	left       *Entry
	right      *Entry
}

// NewTable builds the lookup table for the given dialect.  If
// several entries share the same target form, the first of these is
// used for LaTeX to notation conversion.
func NewTable(d *Dialect) *Table {
	t := &Table{
		name:       d.Name,
		extensible: d.ExtensibleBrackets,
		implicit:   d.ImplicitSubscripts,
		bySource:   make(map[string]*Entry),
		byTarget:   make(map[string]*Entry),
	}
	for i := range d.Entries {
		e := &Entry{}
		*e = d.Entries[i]
		if _, dup := t.bySource[e.Source]; dup {
			panic("duplicate symbol " + e.Source + " in dialect " + d.Name)
		}
		t.bySource[e.Source] = e
		if _, seen := t.byTarget[e.Target]; !seen && hasTarget(e) {
			t.byTarget[e.Target] = e
		}
		if !e.IsWord() {
			t.glyphs = append(t.glyphs, e)
		}

		switch {
		case e.Kind == KindFraction && t.fraction == nil:
			t.fraction = e
		case e.Kind == KindComplement && t.complement == nil:
			t.complement = e
		case e.Kind == KindKeyword && e.Target == `\left` && t.left == nil:
			t.left = e
		case e.Kind == KindKeyword && e.Target == `\right` && t.right == nil:
			t.right = e
		}
	}
	sort.SliceStable(t.glyphs, func(i, j int) bool {
		return len(t.glyphs[i].Source) > len(t.glyphs[j].Source)
	})
	return t
}

func hasTarget(e *Entry) bool {
	switch e.Kind {
	case KindFont, KindMatrix:
		return false
	}
	return e.Target != ""
}

// Name returns the name of the dialect the table was built for.
func (t *Table) Name() string {
	return t.name
}

// ExtensibleBrackets reports whether all parentheses and brackets are
// written using \left and \right in LaTeX output.
func (t *Table) ExtensibleBrackets() bool {
	return t.extensible
}

// ImplicitSubscripts reports whether "x1" is read as "x_{1}".
func (t *Table) ImplicitSubscripts() bool {
	return t.implicit
}

// LookupBySource finds the entry for a token in notation form.
func (t *Table) LookupBySource(token string) (*Entry, bool) {
	e, ok := t.bySource[token]
	return e, ok
}

// LookupByTarget finds the entry for a token in LaTeX form.
func (t *Table) LookupByTarget(token string) (*Entry, bool) {
	e, ok := t.byTarget[token]
	return e, ok
}

// Longest finds the longest non-alphabetic source form which is a
// prefix of s.  The length of the match in bytes is returned together
// with the entry.  If nothing matches, (nil, 0) is returned.
func (t *Table) Longest(s string) (*Entry, int) {
	for _, e := range t.glyphs {
		if strings.HasPrefix(s, e.Source) {
			return e, len(e.Source)
		}
	}
	return nil, 0
}

// Fraction returns the binary fraction operator, or nil if the
// dialect has none.
func (t *Table) Fraction() *Entry {
	return t.fraction
}

// Complement returns the complement superscript entry, or nil.
func (t *Table) Complement() *Entry {
	return t.complement
}

// Left returns the LEFT delimiter marker, or nil.
func (t *Table) Left() *Entry {
	return t.left
}

// Right returns the RIGHT delimiter marker, or nil.
func (t *Table) Right() *Entry {
	return t.right
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsLetter(s[i]) {
			return false
		}
	}
	return true
}

// IsLetter reports whether c is an ASCII letter.  Only runs of ASCII
// letters are matched against alphabetic keywords.
func IsLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
