// table_test.go -
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

import "testing"

func TestLookupBySource(t *testing.T) {
	table := ForDialect("hwp")
	testCases := []struct {
		source string
		target string
		arity  Arity
	}{
		{"TIMES", `\times`, Nullary},
		{"over", `\frac`, Binary},
		{"SMALLINTER", `\cap`, Nullary},
		{"P", `\mathrm{P}`, Unary},
		{"sin", `\sin`, Unary},
		{"^{C}", `^{\complement}`, Nullary},
		{"LEFT", `\left`, Nullary},
		{"frac", `\frac`, Binary},
	}
	for _, testCase := range testCases {
		e, ok := table.LookupBySource(testCase.source)
		if !ok {
			t.Errorf("%q not found", testCase.source)
			continue
		}
		if e.Target != testCase.target || e.Arity != testCase.arity {
			t.Errorf("%q: got %q/%d, expected %q/%d", testCase.source,
				e.Target, e.Arity, testCase.target, testCase.arity)
		}
	}

	for _, alias := range []string{"xyz", "OVER", "left", "right", "times", "inf"} {
		if _, ok := table.LookupBySource(alias); ok {
			t.Errorf("unexpected entry for %q", alias)
		}
	}
}

func TestUnicodeEntries(t *testing.T) {
	table := ForDialect("unicode")
	testCases := []struct {
		source, target string
		kind           Kind
	}{
		{"/", `\frac`, KindFraction},
		{"√", `\sqrt`, KindCommand},
		{"Σ", `\sum`, KindBigOperator},
		{"∫", `\int`, KindBigOperator},
		{"α", `\alpha`, KindLetter},
	}
	for _, testCase := range testCases {
		e, ok := table.LookupBySource(testCase.source)
		if !ok {
			t.Errorf("%q not found", testCase.source)
			continue
		}
		if e.Target != testCase.target || e.Kind != testCase.kind {
			t.Errorf("%q: got %q/%d, expected %q/%d", testCase.source,
				e.Target, e.Kind, testCase.target, testCase.kind)
		}
	}

	reverse := []struct{ target, source string }{
		{`\sum`, "sum"},
		{`\int`, "int"},
		{`\sqrt`, "sqrt"},
		{`\infty`, "∞"},
	}
	for _, testCase := range reverse {
		e, ok := table.LookupByTarget(testCase.target)
		if !ok {
			t.Errorf("%q not found", testCase.target)
		} else if e.Source != testCase.source {
			t.Errorf("%q: got %q, expected %q", testCase.target, e.Source, testCase.source)
		}
	}
	if f := table.Fraction(); f == nil || f.Source != "/" {
		t.Errorf("wrong fraction entry %v", f)
	}
}

func TestLookupByTarget(t *testing.T) {
	table := ForDialect("hwp")
	testCases := []struct{ target, source string }{
		{`\cap`, "SMALLINTER"},
		{`\times`, "TIMES"},
		{`\left`, "LEFT"},
		{`\infty`, "infty"},
		{`\cup`, "cup"},
		{`\frac`, "over"},
		{`\Delta`, "DELTA"},
	}
	for _, testCase := range testCases {
		e, ok := table.LookupByTarget(testCase.target)
		if !ok {
			t.Errorf("%q not found", testCase.target)
		} else if e.Source != testCase.source {
			t.Errorf("%q: got %q, expected %q", testCase.target, e.Source, testCase.source)
		}
	}

	if _, ok := table.LookupByTarget(""); ok {
		t.Error("font keywords must not be found by target")
	}
}

func TestLongest(t *testing.T) {
	table := ForDialect("hwp")
	testCases := []struct {
		in     string
		source string
		n      int
	}{
		{"<->x", "<->", 3},
		{"<-x", "<-", 2},
		{"<=3", "<=", 2},
		{"^{C}", "^{C}", 4},
		{"+1", "", 0},
		{"TIMES", "", 0},
	}
	for _, testCase := range testCases {
		e, n := table.Longest(testCase.in)
		if n != testCase.n {
			t.Errorf("%q: wrong match length %d", testCase.in, n)
			continue
		}
		if n > 0 && e.Source != testCase.source {
			t.Errorf("%q: got %q, expected %q", testCase.in, e.Source, testCase.source)
		}
	}

	uni := ForDialect("unicode")
	e, n := uni.Longest("≤0")
	if n != len("≤") || e.Target != `\leq` {
		t.Errorf("unicode glyph not matched: %v %d", e, n)
	}
}

func TestSpecialEntries(t *testing.T) {
	hwp := ForDialect("hwp")
	if hwp.Fraction() == nil || hwp.Fraction().Source != "over" {
		t.Error("wrong fraction entry")
	}
	if hwp.Left() == nil || hwp.Right() == nil || hwp.Complement() == nil {
		t.Error("missing keyword entries")
	}
	if hwp.ExtensibleBrackets() || hwp.ImplicitSubscripts() {
		t.Error("wrong options for hwp")
	}

	uni := ForDialect("unicode")
	if uni.Left() != nil {
		t.Error("unexpected LEFT keyword in unicode dialect")
	}
	if !uni.ExtensibleBrackets() || !uni.ImplicitSubscripts() {
		t.Error("wrong options for unicode")
	}

	if ForDialect("klingon") != nil {
		t.Error("unknown dialect found")
	}
}

func TestDuplicateSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate source not detected")
		}
	}()
	NewTable(&Dialect{
		Name: "broken",
		Entries: []Entry{
			{"x", `\x`, Nullary, KindLetter},
			{"x", `\y`, Nullary, KindLetter},
		},
	})
}
