// dialects.go -
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

package symbols

import (
	"sort"
	"strings"
)

var functions = []Entry{
	{"sin", `\sin`, Unary, KindFunction},
	{"cos", `\cos`, Unary, KindFunction},
	{"tan", `\tan`, Unary, KindFunction},
	{"cot", `\cot`, Unary, KindFunction},
	{"sec", `\sec`, Unary, KindFunction},
	{"csc", `\csc`, Unary, KindFunction},
	{"arcsin", `\arcsin`, Unary, KindFunction},
	{"arccos", `\arccos`, Unary, KindFunction},
	{"arctan", `\arctan`, Unary, KindFunction},
	{"sinh", `\sinh`, Unary, KindFunction},
	{"cosh", `\cosh`, Unary, KindFunction},
	{"tanh", `\tanh`, Unary, KindFunction},
	{"log", `\log`, Unary, KindFunction},
	{"ln", `\ln`, Unary, KindFunction},
	{"exp", `\exp`, Unary, KindFunction},
	{"lim", `\lim`, Unary, KindFunction},
	{"max", `\max`, Unary, KindFunction},
	{"min", `\min`, Unary, KindFunction},
	{"det", `\det`, Unary, KindFunction},
	{"gcd", `\gcd`, Unary, KindFunction},
	{"P", `\mathrm{P}`, Unary, KindFunction},
	{"C", `\mathrm{C}`, Unary, KindFunction},
	{"sqrt", `\sqrt`, Unary, KindCommand},
	{"sum", `\sum`, Nullary, KindBigOperator},
	{"prod", `\prod`, Nullary, KindBigOperator},
	{"int", `\int`, Nullary, KindBigOperator},
	{"oint", `\oint`, Nullary, KindBigOperator},
}

var greek = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta",
	"theta", "iota", "kappa", "lambda", "mu", "nu", "xi", "pi", "rho",
	"sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
}

var greekUpper = []string{
	"Gamma", "Delta", "Theta", "Lambda", "Xi", "Pi", "Sigma",
	"Upsilon", "Phi", "Psi", "Omega",
}

// HWP is the keyword based notation of the Hangul word processor
// equation editor, e.g. "{1} over {3} TIMES LEFT ( A SMALLINTER B ^{C} RIGHT )".
var HWP = &Dialect{
	Name:    "hwp",
	Entries: hwpEntries(),
}

func hwpEntries() []Entry {
	res := []Entry{
		{"over", `\frac`, Binary, KindFraction},
		{"frac", `\frac`, Binary, KindPrefixFraction},
		{"LEFT", `\left`, Nullary, KindKeyword},
		{"RIGHT", `\right`, Nullary, KindKeyword},
		{"^{C}", `^{\complement}`, Nullary, KindComplement},
		{"rm", "", Nullary, KindFont},
		{"it", "", Nullary, KindFont},
		{"bold", "", Nullary, KindFont},
		{"pmatrix", `pmatrix`, Unary, KindMatrix},
		{"bmatrix", `bmatrix`, Unary, KindMatrix},
		{"matrix", `matrix`, Unary, KindMatrix},

		{"TIMES", `\times`, Nullary, KindOperator},
		{"DIV", `\div`, Nullary, KindOperator},
		{"CDOT", `\cdot`, Nullary, KindOperator},
		{"+-", `\pm`, Nullary, KindOperator},
		{"-+", `\mp`, Nullary, KindOperator},
		{"SMALLINTER", `\cap`, Nullary, KindOperator},
		{"cap", `\cap`, Nullary, KindOperator},
		{"cup", `\cup`, Nullary, KindOperator},
		{"SMALLUNION", `\cup`, Nullary, KindOperator},
		{"INTER", `\bigcap`, Nullary, KindBigOperator},
		{"UNION", `\bigcup`, Nullary, KindBigOperator},
		{"SETMINUS", `\setminus`, Nullary, KindOperator},
		{"CIRC", `\circ`, Nullary, KindOperator},

		{"<=", `\leq`, Nullary, KindRelation},
		{"LEQ", `\leq`, Nullary, KindRelation},
		{">=", `\geq`, Nullary, KindRelation},
		{"GEQ", `\geq`, Nullary, KindRelation},
		{"!=", `\neq`, Nullary, KindRelation},
		{"NEQ", `\neq`, Nullary, KindRelation},
		{"APPROX", `\approx`, Nullary, KindRelation},
		{"EQUIV", `\equiv`, Nullary, KindRelation},
		{"SIM", `\sim`, Nullary, KindRelation},
		{"<->", `\leftrightarrow`, Nullary, KindRelation},
		{"->", `\to`, Nullary, KindRelation},
		{"<-", `\leftarrow`, Nullary, KindRelation},
		{"=>", `\Rightarrow`, Nullary, KindRelation},
		{"SUBSET", `\subset`, Nullary, KindRelation},
		{"SUPERSET", `\supset`, Nullary, KindRelation},
		{"SUBSETEQ", `\subseteq`, Nullary, KindRelation},
		{"SUPSETEQ", `\supseteq`, Nullary, KindRelation},
		{"in", `\in`, Nullary, KindRelation},
		{"NOTIN", `\notin`, Nullary, KindRelation},
		{"PROPTO", `\propto`, Nullary, KindRelation},

		{"infty", `\infty`, Nullary, KindLetter},
		{"EMPTYSET", `\emptyset`, Nullary, KindLetter},
		{"FORALL", `\forall`, Nullary, KindLetter},
		{"EXIST", `\exists`, Nullary, KindLetter},
		{"THEREFORE", `\therefore`, Nullary, KindLetter},
		{"BECAUSE", `\because`, Nullary, KindLetter},
		{"PARTIAL", `\partial`, Nullary, KindLetter},
		{"cdots", `\cdots`, Nullary, KindLetter},
		{"LDOTS", `\ldots`, Nullary, KindLetter},
		{"ANGLE", `\angle`, Nullary, KindLetter},
		{"TRIANGLE", `\triangle`, Nullary, KindLetter},
		{"lbrace", `\{`, Nullary, KindLetter},
		{"rbrace", `\}`, Nullary, KindLetter},
	}
	for _, name := range greek {
		res = append(res, Entry{name, `\` + name, Nullary, KindLetter})
	}
	for _, name := range greekUpper {
		res = append(res, Entry{strings.ToUpper(name), `\` + name, Nullary, KindLetter})
	}
	res = append(res, functions...)
	return res
}

var unicodeGreek = map[string]string{
	"α": "alpha", "β": "beta", "γ": "gamma", "δ": "delta", "ε": "epsilon",
	"θ": "theta", "λ": "lambda", "μ": "mu", "π": "pi", "σ": "sigma",
	"τ": "tau", "φ": "phi", "ω": "omega", "Δ": "Delta", "Ω": "Omega",
}

// Unicode is a notation which uses Unicode glyphs for operators, e.g.
// "x^2 + 2x + 1 ≤ 0" or "sin(x)/cos(x) = tan(x)".  Fractions are
// written with a slash, "Σ" is the summation sign and "√{x}" is a
// square root.
var Unicode = &Dialect{
	Name:               "unicode",
	Entries:            unicodeEntries(),
	ExtensibleBrackets: true,
	ImplicitSubscripts: true,
}

func unicodeEntries() []Entry {
	res := []Entry{
		{"/", `\frac`, Binary, KindFraction},
		{"over", `\frac`, Binary, KindFraction},
		{"^{C}", `^{\complement}`, Nullary, KindComplement},
	}
	res = append(res, functions...)
	res = append(res, []Entry{
		{"×", `\times`, Nullary, KindOperator},
		{"÷", `\div`, Nullary, KindOperator},
		{"·", `\cdot`, Nullary, KindOperator},
		{"±", `\pm`, Nullary, KindOperator},
		{"∓", `\mp`, Nullary, KindOperator},
		{"∩", `\cap`, Nullary, KindOperator},
		{"∪", `\cup`, Nullary, KindOperator},
		{"∖", `\setminus`, Nullary, KindOperator},

		{"≤", `\leq`, Nullary, KindRelation},
		{"≥", `\geq`, Nullary, KindRelation},
		{"≠", `\neq`, Nullary, KindRelation},
		{"≈", `\approx`, Nullary, KindRelation},
		{"≡", `\equiv`, Nullary, KindRelation},
		{"→", `\rightarrow`, Nullary, KindRelation},
		{"←", `\leftarrow`, Nullary, KindRelation},
		{"↔", `\leftrightarrow`, Nullary, KindRelation},
		{"⇒", `\Rightarrow`, Nullary, KindRelation},
		{"∈", `\in`, Nullary, KindRelation},
		{"∉", `\notin`, Nullary, KindRelation},
		{"⊂", `\subset`, Nullary, KindRelation},
		{"⊃", `\supset`, Nullary, KindRelation},
		{"⊆", `\subseteq`, Nullary, KindRelation},
		{"⊇", `\supseteq`, Nullary, KindRelation},

		{"∞", `\infty`, Nullary, KindLetter},
		{"∴", `\therefore`, Nullary, KindLetter},
		{"∵", `\because`, Nullary, KindLetter},
		{"∀", `\forall`, Nullary, KindLetter},
		{"∃", `\exists`, Nullary, KindLetter},
		{"∄", `\nexists`, Nullary, KindLetter},
		{"∅", `\emptyset`, Nullary, KindLetter},
		{"∂", `\partial`, Nullary, KindLetter},
		{"Σ", `\sum`, Nullary, KindBigOperator},
		{"∑", `\sum`, Nullary, KindBigOperator},
		{"∫", `\int`, Nullary, KindBigOperator},
		{"∮", `\oint`, Nullary, KindBigOperator},
		{"√", `\sqrt`, Unary, KindCommand},
	}...)

	var glyphs []string
	for glyph := range unicodeGreek {
		glyphs = append(glyphs, glyph)
	}
	sort.Strings(glyphs)
	for _, glyph := range glyphs {
		res = append(res, Entry{glyph, `\` + unicodeGreek[glyph], Nullary, KindLetter})
	}
	return res
}

var (
	hwpTable     = NewTable(HWP)
	unicodeTable = NewTable(Unicode)
)

// ForDialect returns the shared table for one of the predefined
// dialects "hwp" and "unicode".  For other names, nil is returned.
func ForDialect(name string) *Table {
	switch strings.ToLower(name) {
	case "hwp", "":
		return hwpTable
	case "unicode":
		return unicodeTable
	}
	return nil
}
