// hml.go -
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

// Package hml extracts formulas from documents written by the Hangul
// word processor.  Both the XML based HML format and the zip based
// HWPX format are supported, as well as plain text with formulas
// enclosed in [한글수식]...[/한글수식] markers.
package hml

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	markerOpen  = "[한글수식]"
	markerClose = "[/한글수식]"
)

// Extract returns the texts of all formula elements in the XML
// document read from r, in document order.  Formula elements are
// "math" and "hmath" elements, and "script" elements inside an
// "equation" element, in any namespace and letter case.  The text of
// an element without text is the empty string.
//
// If the document is malformed, the formulas found before the problem
// are returned together with the error.
func Extract(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, in io.Reader) (io.Reader, error) {
		switch strings.ToLower(charset) {
		case "utf8", "unicode":
			return in, nil
		}
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}

	var res []string
	var stack []string
	var text strings.Builder
	capture := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return res, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := strings.ToLower(t.Name.Local)
			stack = append(stack, name)
			if capture == 0 && isFormula(stack) {
				capture = len(stack)
				text.Reset()
			}
		case xml.EndElement:
			if capture == len(stack) {
				res = append(res, Clean(text.String()))
				capture = 0
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if capture > 0 && capture == len(stack) {
				text.Write(t)
			}
		}
	}
	return res, nil
}

func isFormula(stack []string) bool {
	switch stack[len(stack)-1] {
	case "math", "hmath":
		return true
	case "script":
		for _, name := range stack[:len(stack)-1] {
			if name == "equation" {
				return true
			}
		}
	}
	return false
}

// ExtractText returns the formulas enclosed in [한글수식]...[/한글수식]
// markers in a plain text.  A final opening marker without a matching
// closing marker is ignored.
func ExtractText(s string) []string {
	var res []string
	for {
		start := strings.Index(s, markerOpen)
		if start < 0 {
			break
		}
		s = s[start+len(markerOpen):]
		end := strings.Index(s, markerClose)
		if end < 0 {
			break
		}
		res = append(res, strings.TrimSpace(s[:end]))
		s = s[end+len(markerClose):]
	}
	return res
}

// Clean normalises the text of a formula: white space runs are
// collapsed into single spaces, leading and trailing white space is
// removed, and full-width parentheses are replaced by ASCII ones.
func Clean(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	return fullWidth.Replace(text)
}

var fullWidth = strings.NewReplacer("（", "(", "）", ")")

// ExtractFile returns the formulas contained in the named file.  Files
// with extension ".hwpx" are read as zip archives, where all sections
// "Contents/section*.xml" are scanned in order.  Files with extension
// ".hml" or ".xml" are read as XML documents.  All other files are
// read as plain text.
func ExtractFile(fname string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".hwpx":
		return extractHWPX(fname)
	case ".hml", ".xml":
		fd, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		return Extract(fd)
	}

	body, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return ExtractText(string(body)), nil
}

var errNoSections = errors.New("no Contents/section*.xml found")

func extractHWPX(fname string) ([]string, error) {
	zr, err := zip.OpenReader(fname)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var sections []*zip.File
	for _, f := range zr.File {
		if sectionNumber(f.Name) >= 0 {
			sections = append(sections, f)
		}
	}
	if len(sections) == 0 {
		return nil, errNoSections
	}
	sort.Slice(sections, func(i, j int) bool {
		return sectionNumber(sections[i].Name) < sectionNumber(sections[j].Name)
	})

	var res []string
	for _, f := range sections {
		formulas, err := extractZipFile(f)
		res = append(res, formulas...)
		if err != nil {
			return res, &SectionError{Name: f.Name, Err: err}
		}
	}
	return res, nil
}

func extractZipFile(f *zip.File) ([]string, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Extract(r)
}

// sectionNumber returns n for the file name "Contents/section<n>.xml",
// and -1 for all other names.
func sectionNumber(name string) int {
	const prefix, suffix = "Contents/section", ".xml"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
		return -1
	}
	n, err := strconv.Atoi(name[len(prefix) : len(name)-len(suffix)])
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// SectionError reports a problem with one section of an HWPX file.
type SectionError struct {
	Name string
	Err  error
}

func (err *SectionError) Error() string {
	return err.Name + ": " + err.Err.Error()
}

// Unwrap returns the underlying error.
func (err *SectionError) Unwrap() error {
	return err.Err
}
