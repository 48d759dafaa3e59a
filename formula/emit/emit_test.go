// emit_test.go -
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
	"testing"

	"github.com/seehuhn/hwpmath/formula/parser"
	"github.com/seehuhn/hwpmath/formula/symbols"
)

func TestNotationToLaTeX(t *testing.T) {
	testCases := []struct{ dialect, in, out string }{
		{"hwp", "3 over 8", `\frac{3}{8}`},
		{"hwp", "{1 over 3} over {2 over 5}", `\frac{\frac{1}{3}}{\frac{2}{5}}`},
		{"hwp", "LEFT ( A SMALLINTER B ^{C} RIGHT )", `\left(A\cap{B}^{\complement}\right)`},
		{"hwp", "[[1 2;3 4]]", `\begin{pmatrix}1&2\\3&4\end{pmatrix}`},
		{"hwp", "bmatrix{a & b # c & d}", `\begin{bmatrix}a&b\\c&d\end{bmatrix}`},
		{"hwp", "xyz", `xyz`},
		{"hwp", "sin x", `\sin x`},
		{"hwp", "sin(x)", `\sin(x)`},
		{"hwp", "sin[x]", `\sin[x]`},
		{"hwp", "P LEFT ( A RIGHT )", `\mathrm{P}\left(A\right)`},
		{"hwp", "P(A)", `\mathrm{P}(A)`},
		{"hwp", "sqrt {2}", `\sqrt{2}`},
		{"hwp", "2 TIMES 3", `2\times3`},
		{"hwp", "x TIMES y", `x\times y`},
		{"hwp", "x^{2}", `{x}^{2}`},
		{"hwp", "x_i", `{x}_{i}`},
		{"hwp", "[x]", `[x]`},
		{"hwp", "{}_5P_2", `{}_{5}{\mathrm{P}}_{2}`},
		{"hwp", "alpha + beta", `\alpha+\beta`},
		{"hwp", "frac{a}{b}", `\frac{a}{b}`},
		{"hwp", "lim_{h->0} frac{f(2+h)-f(2)}{h}", `\lim_{h\to0}\frac{f(2+h)-f(2)}{h}`},
		{"hwp", "sum_{i=1}^{n} i", `\sum_{i=1}^{n}i`},
		{"unicode", "sin(x)", `\sin\left(x\right)`},
		{"unicode", "1/3", `\frac{1}{3}`},
		{"unicode", "sin(x)/cos(x) = tan(x)",
			`\frac{\sin\left(x\right)}{\cos\left(x\right)}=\tan\left(x\right)`},
		{"unicode", "√{x}", `\sqrt{x}`},
		{"unicode", "Σ_{i=1}^{n} i", `\sum_{i=1}^{n}i`},
		{"unicode", "∫_{0}^{1} x", `\int_{0}^{1}x`},
		{"unicode", "(a+b)", `\left(a+b\right)`},
		{"unicode", "x12", `{x}_{12}`},
		{"unicode", "α ≤ β", `\alpha\leq\beta`},
	}
	for _, testCase := range testCases {
		table := symbols.ForDialect(testCase.dialect)
		root, err := parser.New(table).ParseString(testCase.in)
		if err != nil {
			t.Errorf("%s %q: unexpected error %s", testCase.dialect, testCase.in, err)
			continue
		}
		got := New(table).Emit(root, LaTeX)
		if got != testCase.out {
			t.Errorf("%s %q:\n  got      %s\n  expected %s",
				testCase.dialect, testCase.in, got, testCase.out)
		}
	}
}

func TestLaTeXToNotation(t *testing.T) {
	table := symbols.ForDialect("hwp")
	p := parser.New(table)
	em := New(table)
	testCases := []struct{ in, out string }{
		{`\frac{3}{8}`, "3 over 8"},
		{`\frac{\frac{1}{3}}{\frac{2}{5}}`, "{1 over 3} over {2 over 5}"},
		{`\frac{1}{3}\times\left(A\cap{B}^{\complement}\right)`,
			"1 over 3 TIMES LEFT ( A SMALLINTER B^{C} RIGHT )"},
		{`\sin\left(x\right)`, "sin LEFT ( x RIGHT )"},
		{`\sin(x)`, "sin(x)"},
		{`\left(a\right]`, "LEFT ( a RIGHT ]"},
		{`\sqrt{2}`, "sqrt {2}"},
		{`x^{2}`, "x^2"},
		{`x_{12}`, "x_{12}"},
		{`\begin{pmatrix}1&2\\3&4\end{pmatrix}`, "[[1 2;3 4]]"},
		{`\begin{bmatrix}1&2\\3&4\end{bmatrix}`, "bmatrix{1 & 2 # 3 & 4}"},
		{`\alpha+\beta`, "alpha + beta"},
	}
	for _, testCase := range testCases {
		root, err := p.ParseLaTeXString(testCase.in)
		if err != nil {
			t.Errorf("%q: unexpected error %s", testCase.in, err)
			continue
		}
		got := em.Emit(root, Notation)
		if got != testCase.out {
			t.Errorf("%q:\n  got      %s\n  expected %s", testCase.in, got, testCase.out)
		}
	}
}

func TestLaTeXToUnicode(t *testing.T) {
	table := symbols.ForDialect("unicode")
	p := parser.New(table)
	em := New(table)
	testCases := []struct{ in, out string }{
		{`\frac{1}{3}`, "1 / 3"},
		{`\frac{a+b}{c}`, "{a + b} / c"},
		{`\sqrt{x}`, "sqrt {x}"},
		{`\sin\left(x\right)`, "sin(x)"},
		{`\sum x`, "sum x"},
		{`\infty`, "∞"},
	}
	for _, testCase := range testCases {
		root, err := p.ParseLaTeXString(testCase.in)
		if err != nil {
			t.Errorf("%q: unexpected error %s", testCase.in, err)
			continue
		}
		if got := em.Emit(root, Notation); got != testCase.out {
			t.Errorf("%q:\n  got      %s\n  expected %s", testCase.in, got, testCase.out)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	table := symbols.ForDialect("hwp")
	p := parser.New(table)
	em := New(table)
	testCases := []string{
		"3 over 8",
		"{1 over 3} over {2 over 5}",
		"[[1 2;3 4]]",
		"LEFT ( A SMALLINTER B^{C} RIGHT )",
		"x_{12} + y^2",
	}
	for _, in := range testCases {
		root, err := p.ParseString(in)
		if err != nil {
			t.Errorf("%q: unexpected error %s", in, err)
			continue
		}
		if got := em.Emit(root, Notation); got != in {
			t.Errorf("%q: got %q", in, got)
		}
	}
}

func TestEndsWithControlWord(t *testing.T) {
	testCases := []struct {
		in  string
		out bool
	}{
		{`\sin`, true},
		{`x\times`, true},
		{`x`, false},
		{`\{`, false},
		{`\mathrm{P}`, false},
		{``, false},
	}
	for _, testCase := range testCases {
		if got := endsWithControlWord(testCase.in); got != testCase.out {
			t.Errorf("%q: got %t, expected %t", testCase.in, got, testCase.out)
		}
	}
}
