// page.go -
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

// Package xhtml writes converted formulas into an XHTML page, where
// they are typeset by MathJax.
package xhtml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/google/uuid"
)

const baseNameSpaceURL = "http://hwpmath.seehuhn.de/"

var mathJaxURL = flag.String("mathjax-url",
	"https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js",
	"URL of the MathJax script used by generated pages")

// Errors returned by the Page methods.
var (
	ErrPageClosed        = errors.New("attempt to write to a closed page")
	ErrWrongSectionLevel = errors.New("wrong section level")
)

// Page collects text, section headings and formulas for a single
// XHTML page.  The page is written out by WriteTo.
type Page struct {
	UUID         uuid.UUID
	LastModified string
	Language     string
	Title        string
	MathJaxURL   string

	Nav           []TOCEntry
	SectionNumber SecNo
	SectionLevel  int

	Formulas int
	Errors   int

	body   bytes.Buffer
	ids    map[string]bool
	closed bool
}

// NewPage creates a new, empty page.  The identifier is used to
// derive the UUID of the page, so that pages for the same input
// document keep their identity.
func NewPage(identifier, title string) *Page {
	nameSpace := uuid.NewSHA1(uuid.NameSpaceURL, []byte(baseNameSpaceURL))
	return &Page{
		UUID:         uuid.NewSHA1(nameSpace, []byte(identifier)),
		LastModified: time.Now().UTC().Format(time.RFC3339),
		Language:     "ko",
		Title:        title,
		MathJaxURL:   *mathJaxURL,

		ids: make(map[string]bool),
	}
}

// AddSection starts a new section at the given level.  Level 1 is the
// top level, and each new section may be at most one level below the
// current one.  The element ID of the section is returned.
func (p *Page) AddSection(level int, title string) (string, error) {
	if p.closed {
		return "", ErrPageClosed
	}
	if level <= 0 || level > p.SectionLevel+1 {
		return "", ErrWrongSectionLevel
	}
	err := p.closeSections(level - 1)
	if err != nil {
		return "", err
	}
	p.SectionLevel = level
	p.SectionNumber.Inc(level)

	id := p.uniqueID("sec-" + p.SectionNumber.String())

	k := len(p.Nav) - 1
	var up int
	if k >= 0 {
		if level < p.Nav[k].Level {
			p.Nav[k].down = p.Nav[k].Level - level
		} else {
			up = level - p.Nav[k].Level
		}
	} else {
		up = level
	}
	p.Nav = append(p.Nav, TOCEntry{
		Level:  level,
		Number: p.SectionNumber.String(),
		Title:  title,
		ID:     id,
		up:     up,
	})

	heading := fmt.Sprintf("<h%d>%s %s</h%d>", level+1,
		template.HTMLEscapeString(p.SectionNumber.String()),
		template.HTMLEscapeString(title), level+1)
	err = p.execute("section-head", map[string]interface{}{
		"ID":      id,
		"Heading": template.HTML(heading),
	})
	return id, err
}

func (p *Page) closeSections(level int) error {
	for p.SectionLevel > level {
		err := p.execute("section-tail", nil)
		if err != nil {
			return err
		}
		p.SectionLevel--
	}
	return nil
}

// AddText adds a paragraph of plain text to the page.
func (p *Page) AddText(text string) error {
	if p.closed {
		return ErrPageClosed
	}
	return p.execute("text", text)
}

// AddFormula adds a LaTeX formula to the page.  Display formulas are
// set on a line of their own.  The element ID of the formula is
// returned.
func (p *Page) AddFormula(latex string, display bool) (string, error) {
	if p.closed {
		return "", ErrPageClosed
	}
	id := p.uniqueID(formulaID(latex))
	p.Formulas++
	return id, p.execute("formula", map[string]interface{}{
		"ID":      id,
		"LaTeX":   latex,
		"Display": display,
	})
}

// AddError records a formula which could not be converted.  The
// source text is shown together with the error message.
func (p *Page) AddError(source string, err error) error {
	if p.closed {
		return ErrPageClosed
	}
	p.Errors++
	return p.execute("error", map[string]interface{}{
		"Source":  source,
		"Message": err.Error(),
	})
}

// WriteTo closes all open sections and writes the complete page to w.
// After WriteTo has been called, no more content can be added.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	if !p.closed {
		err := p.closeSections(0)
		if err != nil {
			return 0, err
		}
		k := len(p.Nav) - 1
		if k >= 0 {
			p.Nav[k].down = p.Nav[k].Level
		}
		p.closed = true
	}

	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	err := pageTemplates.ExecuteTemplate(buf, "page", map[string]interface{}{
		"Page": p,
		"Body": template.HTML(p.body.String()),
	})
	if err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

func (p *Page) execute(name string, data interface{}) error {
	return pageTemplates.ExecuteTemplate(&p.body, name, data)
}
