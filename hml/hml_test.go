// hml_test.go -
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

package hml

import (
	"archive/zip"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleHML = `<?xml version="1.0" encoding="UTF-8"?>
<HWPML Version="2.8">
<BODY><SECTION Id="0">
<P><TEXT><CHAR>문제 1.</CHAR></TEXT></P>
<P><TEXT><EQUATION BaseLine="86"><SHAPEOBJECT/><SCRIPT>{1} over {3} TIMES
   LEFT （ A SMALLINTER B ^{C} RIGHT ）</SCRIPT></EQUATION></TEXT></P>
<P><TEXT><SCRIPT>not a formula</SCRIPT></TEXT></P>
<P><hmath>x ^{2}</hmath><hmath/></P>
<P><hp:math xmlns:hp="urn:x">[[1 2;3 4]]</hp:math></P>
</SECTION></BODY>
</HWPML>`

func TestExtract(t *testing.T) {
	res, err := Extract(strings.NewReader(sampleHML))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"{1} over {3} TIMES LEFT ( A SMALLINTER B ^{C} RIGHT )",
		"x ^{2}",
		"",
		"[[1 2;3 4]]",
	}
	if !reflect.DeepEqual(res, expected) {
		t.Errorf("got %q, expected %q", res, expected)
	}
}

func TestExtractMalformed(t *testing.T) {
	res, err := Extract(strings.NewReader("<a><math>x</math><math>y</a>"))
	if err == nil {
		t.Error("missing error")
	}
	if len(res) != 1 || res[0] != "x" {
		t.Errorf("wrong partial result %q", res)
	}
}

func TestClean(t *testing.T) {
	testCases := []struct{ in, out string }{
		{"", ""},
		{"  a\n\t over  b ", "a over b"},
		{"f（x）", "f(x)"},
	}
	for _, testCase := range testCases {
		if got := Clean(testCase.in); got != testCase.out {
			t.Errorf("%q: got %q, expected %q", testCase.in, got, testCase.out)
		}
	}
}

func TestExtractText(t *testing.T) {
	in := "문제 [한글수식] 1 over 2 [/한글수식] 그리고 [한글수식]x^2[/한글수식] [한글수식] y"
	res := ExtractText(in)
	expected := []string{"1 over 2", "x^2"}
	if !reflect.DeepEqual(res, expected) {
		t.Errorf("got %q, expected %q", res, expected)
	}
}

func writeHWPX(t *testing.T, fname string, files map[string]string) {
	fd, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(fd)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()

	section := func(formula string) string {
		return `<hs:sec xmlns:hs="urn:s" xmlns:hp="urn:p"><hp:p><hp:run>` +
			`<hp:equation><hp:script>` + formula + `</hp:script></hp:equation>` +
			`</hp:run></hp:p></hs:sec>`
	}
	hwpx := filepath.Join(dir, "test.hwpx")
	writeHWPX(t, hwpx, map[string]string{
		"mimetype":               "application/hwp+zip",
		"Contents/section10.xml": section("c"),
		"Contents/section2.xml":  section("b"),
		"Contents/section0.xml":  section("a"),
		"Contents/header.xml":    section("header"),
	})

	hml := filepath.Join(dir, "test.hml")
	if err := os.WriteFile(hml, []byte(sampleHML), 0644); err != nil {
		t.Fatal(err)
	}
	txt := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(txt, []byte("[한글수식]a over b[/한글수식]"), 0644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		fname string
		out   []string
	}{
		{hwpx, []string{"a", "b", "c"}},
		{hml, []string{
			"{1} over {3} TIMES LEFT ( A SMALLINTER B ^{C} RIGHT )",
			"x ^{2}", "", "[[1 2;3 4]]"}},
		{txt, []string{"a over b"}},
	}
	for _, testCase := range testCases {
		res, err := ExtractFile(testCase.fname)
		if err != nil {
			t.Errorf("%s: %s", testCase.fname, err)
			continue
		}
		if !reflect.DeepEqual(res, testCase.out) {
			t.Errorf("%s: got %q, expected %q", testCase.fname, res, testCase.out)
		}
	}
}

func TestExtractFileNoSections(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty.hwpx")
	writeHWPX(t, fname, map[string]string{"mimetype": "application/hwp+zip"})
	if _, err := ExtractFile(fname); err != errNoSections {
		t.Errorf("expected %v, got %v", errNoSections, err)
	}
}

func TestSectionNumber(t *testing.T) {
	testCases := []struct {
		in  string
		out int
	}{
		{"Contents/section0.xml", 0},
		{"Contents/section12.xml", 12},
		{"Contents/header.xml", -1},
		{"Contents/sectionX.xml", -1},
		{"section1.xml", -1},
	}
	for _, testCase := range testCases {
		if got := sectionNumber(testCase.in); got != testCase.out {
			t.Errorf("%q: got %d, expected %d", testCase.in, got, testCase.out)
		}
	}
}
