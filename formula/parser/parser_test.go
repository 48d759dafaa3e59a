// parser_test.go -
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
	"errors"
	"testing"

	"github.com/seehuhn/hwpmath/formula/scanner"
	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/formula/tokenizer"
)

func TestParseNotation(t *testing.T) {
	p := New(symbols.ForDialect("hwp"))
	testCases := []struct{ in, out string }{
		{"", `Group()`},
		{"xyz", `Group(Literal("xyz"))`},
		{"3 over 8", `Group(Fraction(Literal("3"), Literal("8")))`},
		{"{1 over 3} over {2 over 5}",
			`Group(Fraction(Group{}(Fraction(Literal("1"), Literal("3"))), Group{}(Fraction(Literal("2"), Literal("5")))))`},
		{"a over b over c",
			`Group(Fraction(Fraction(Literal("a"), Literal("b")), Literal("c")))`},
		{"x = 1 over 2",
			`Group(Literal("x"), Literal("="), Fraction(Literal("1"), Literal("2")))`},
		{"2 TIMES 3", `Group(Literal("2"), Symbol(TIMES), Literal("3"))`},
		{"LEFT ( A SMALLINTER B ^{C} RIGHT )",
			`Group(Sized()(Literal("A"), Symbol(SMALLINTER), Power(Literal("B"), Symbol(^{C}))))`},
		{"LEFT (A SMALLINTER B^C) RIGHT",
			`Group(Sized()(Literal("A"), Symbol(SMALLINTER), Power(Literal("B"), Symbol(^{C}))))`},
		{"rm P LEFT ( A RIGHT )", `Group(Function(P, Sized()(Literal("A"))))`},
		{"P", `Group(Literal("P"))`},
		{"sin(x)", `Group(Function(sin, Group()(Literal("x"))))`},
		{"sin x", `Group(Symbol(sin), Literal("x"))`},
		{"sqrt {2}", `Group(Function(sqrt, Group{}(Literal("2"))))`},
		{"x^{2}", `Group(Power(Literal("x"), Group{}(Literal("2"))))`},
		{"x ^2", `Group(Power(Literal("x"), Literal("2")))`},
		{"x_i", `Group(Subscript(Literal("x"), Literal("i")))`},
		{"^2", `Group(Power(Group{}(), Literal("2")))`},
		{"x1", `Group(Group(Literal("x"), Literal("1")))`},
		{"_2C_1",
			`Group(Group(Subscript(Group{}(), Literal("2")), Subscript(Symbol(C), Literal("1"))))`},
		{"{}_5P_2",
			`Group(Group(Subscript(Group{}(), Literal("5")), Subscript(Symbol(P), Literal("2"))))`},
		{"[[1 2;3 4]]",
			`Group(Matrix[Literal("1"), Literal("2"); Literal("3"), Literal("4")])`},
		{"pmatrix{a & b # c & d}",
			`Group(Matrix[Literal("a"), Literal("b"); Literal("c"), Literal("d")])`},
		{"LEFT | x RIGHT |",
			`Group(Symbol(LEFT), Literal("|"), Literal("x"), Symbol(RIGHT), Literal("|"))`},
		{"a <= b", `Group(Literal("a"), Symbol(<=), Literal("b"))`},
		{"x<=3", `Group(Group(Literal("x"), Symbol(<=), Literal("3")))`},
		{"3.14", `Group(Literal("3.14"))`},
		{"frac{a}{b}", `Group(Fraction(Group{}(Literal("a")), Group{}(Literal("b"))))`},
		{"frac {a} {b}", `Group(Fraction(Group{}(Literal("a")), Group{}(Literal("b"))))`},
		{"frac{a} {b}", `Group(Fraction(Group{}(Literal("a")), Group{}(Literal("b"))))`},
		{"1/2", `Group(Group(Literal("1"), Literal("/"), Literal("2")))`},
		{"가나 + x", `Group(Literal("가나"), Literal("+"), Literal("x"))`},
	}
	for _, testCase := range testCases {
		root, err := p.ParseString(testCase.in)
		if err != nil {
			t.Errorf("%q: unexpected error %s", testCase.in, err)
			continue
		}
		if got := root.String(); got != testCase.out {
			t.Errorf("%q:\n  got      %s\n  expected %s", testCase.in, got, testCase.out)
		}
	}
}

func TestImplicitSubscripts(t *testing.T) {
	p := New(symbols.ForDialect("unicode"))
	testCases := []struct{ in, out string }{
		{"x12", `Group(Subscript(Literal("x"), Literal("12")))`},
		{"x1+y2", `Group(Group(Subscript(Literal("x"), Literal("1")), Literal("+"), Subscript(Literal("y"), Literal("2"))))`},
		{"a ≤ b", `Group(Literal("a"), Symbol(≤), Literal("b"))`},
		{"α", `Group(Symbol(α))`},
		{"1/3", `Group(Fraction(Literal("1"), Literal("3")))`},
		{"a /b", `Group(Fraction(Literal("a"), Literal("b")))`},
		{"1 / 3", `Group(Fraction(Literal("1"), Literal("3")))`},
		{"sin(x)/cos(x)",
			`Group(Fraction(Function(sin, Group()(Literal("x"))), Function(cos, Group()(Literal("x")))))`},
		{"√{x}", `Group(Function(√, Group{}(Literal("x"))))`},
		{"Σ_i", `Group(Subscript(Symbol(Σ), Literal("i")))`},
	}
	for _, testCase := range testCases {
		root, err := p.ParseString(testCase.in)
		if err != nil {
			t.Errorf("%q: unexpected error %s", testCase.in, err)
			continue
		}
		if got := root.String(); got != testCase.out {
			t.Errorf("%q:\n  got      %s\n  expected %s", testCase.in, got, testCase.out)
		}
	}
}

func TestParseErrors(t *testing.T) {
	p := New(symbols.ForDialect("hwp"))
	testCases := []struct {
		in     string
		kind   error
		offset int
	}{
		{"over", scanner.ErrMalformedFraction, 0},
		{"1 over", scanner.ErrMalformedFraction, 2},
		{"1 over over 2", scanner.ErrMalformedFraction, 7},
		{"{over 2}", scanner.ErrMalformedFraction, 1},
		{"[[1 2;3]]", scanner.ErrMalformedMatrix, 0},
		{"x [[]]", scanner.ErrMalformedMatrix, 2},
		{"pmatrix{a & b # c}", scanner.ErrMalformedMatrix, 7},
		{"(A B", scanner.ErrUnbalancedDelimiter, 0},
		{"rm {1} over {3}} over 2", scanner.ErrUnbalancedDelimiter, 15},
		{"frac{a}", scanner.ErrMalformedFraction, 0},
		{"x frac", scanner.ErrMalformedFraction, 2},
		{"frac{a}{b", scanner.ErrUnbalancedDelimiter, 7},
	}
	for _, testCase := range testCases {
		_, err := p.ParseString(testCase.in)
		if !errors.Is(err, testCase.kind) {
			t.Errorf("%q: expected %v, got %v", testCase.in, testCase.kind, err)
			continue
		}
		if off := err.(*scanner.ParseError).Offset; off != testCase.offset {
			t.Errorf("%q: wrong offset %d, expected %d", testCase.in, off, testCase.offset)
		}
	}
}

func TestParseSlashFractionErrors(t *testing.T) {
	p := New(symbols.ForDialect("unicode"))
	testCases := []struct {
		in     string
		offset int
	}{
		{"/2", 0},
		{"1/", 1},
		{"x = 1/", 5},
	}
	for _, testCase := range testCases {
		_, err := p.ParseString(testCase.in)
		if !errors.Is(err, scanner.ErrMalformedFraction) {
			t.Errorf("%q: expected %v, got %v", testCase.in, scanner.ErrMalformedFraction, err)
			continue
		}
		if off := err.(*scanner.ParseError).Offset; off != testCase.offset {
			t.Errorf("%q: wrong offset %d, expected %d", testCase.in, off, testCase.offset)
		}
	}
}

func TestErrorCharacterOffset(t *testing.T) {
	testCases := []struct {
		dialect, in  string
		offset, char int
	}{
		{"hwp", "1 over", 2, 2},
		{"hwp", "가나 over", 7, 3},
		{"hwp", "가 (x", 4, 2},
		{"unicode", "x ≤ 1/", 7, 5},
	}
	for _, testCase := range testCases {
		p := New(symbols.ForDialect(testCase.dialect))
		_, err := p.ParseString(testCase.in)
		var pErr *scanner.ParseError
		if !errors.As(err, &pErr) {
			t.Errorf("%q: expected a ParseError, got %v", testCase.in, err)
			continue
		}
		if pErr.Offset != testCase.offset || pErr.Char != testCase.char {
			t.Errorf("%q: got offsets %d/%d, expected %d/%d", testCase.in,
				pErr.Offset, pErr.Char, testCase.offset, testCase.char)
		}
	}
}

func TestParseSingleOver(t *testing.T) {
	p := New(symbols.ForDialect("hwp"))
	_, err := p.Parse(tokenizer.TokenList{{Kind: tokenizer.KindWord, Text: "over"}})
	if !errors.Is(err, scanner.ErrMalformedFraction) {
		t.Errorf("expected malformed fraction, got %v", err)
	}
}

func TestParseLaTeX(t *testing.T) {
	p := New(symbols.ForDialect("hwp"))
	testCases := []struct{ in, out string }{
		{`\frac{1}{3}`, `Group(Fraction(Literal("1"), Literal("3")))`},
		{`\left(A\cap{B}^{\complement}\right)`,
			`Group(Sized()(Literal("A"), Symbol(SMALLINTER), Power(Group{}(Literal("B")), Symbol(^{C}))))`},
		{`\sin\left(x\right)`, `Group(Function(sin, Sized()(Literal("x"))))`},
		{`\sin(x)`, `Group(Function(sin, Group()(Literal("x"))))`},
		{`\sin[x]`, `Group(Function(sin, Group[](Literal("x"))))`},
		{`\mathrm{P}(A)`, `Group(Function(P, Group()(Literal("A"))))`},
		{`\left(a\right]`,
			`Group(Symbol(LEFT), Literal("("), Literal("a"), Symbol(RIGHT), Literal("]"))`},
		{`\left[\left(a\right)\right]`, `Group(Sized[](Sized()(Literal("a"))))`},
		{`\sin\left(x\right]`,
			`Group(Symbol(sin), Symbol(LEFT), Literal("("), Literal("x"), Symbol(RIGHT), Literal("]"))`},
		{`x^2`, `Group(Power(Literal("x"), Literal("2")))`},
		{`\begin{pmatrix}1&2\\3&4\end{pmatrix}`,
			`Group(Matrix[Literal("1"), Literal("2"); Literal("3"), Literal("4")])`},
		{`\alpha`, `Group(Symbol(alpha))`},
	}
	for _, testCase := range testCases {
		root, err := p.ParseLaTeXString(testCase.in)
		if err != nil {
			t.Errorf("%q: unexpected error %s", testCase.in, err)
			continue
		}
		if got := root.String(); got != testCase.out {
			t.Errorf("%q:\n  got      %s\n  expected %s", testCase.in, got, testCase.out)
		}
	}
}

func TestParseLaTeXErrors(t *testing.T) {
	p := New(symbols.ForDialect("hwp"))
	testCases := []struct {
		in   string
		kind error
	}{
		{`\frac{1}`, scanner.ErrMalformedFraction},
		{`\begin{pmatrix}1&2\\3\end{pmatrix}`, scanner.ErrMalformedMatrix},
		{`{x`, scanner.ErrUnbalancedDelimiter},
	}
	for _, testCase := range testCases {
		_, err := p.ParseLaTeXString(testCase.in)
		if !errors.Is(err, testCase.kind) {
			t.Errorf("%q: expected %v, got %v", testCase.in, testCase.kind, err)
		}
	}
}
