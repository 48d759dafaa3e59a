// toc.go -
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

package xhtml

import (
	"strconv"
	"strings"
)

// SecNo is a hierarchical section number, e.g. SecNo{2, 1} for
// section 2.1.
type SecNo []int

func (s SecNo) String() string {
	parts := make([]string, len(s))
	for i, k := range s {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ".")
}

// Inc advances the number at the given level, where level 1 is the
// outermost one.  Deeper levels are discarded and missing levels are
// filled with zeros.
func (s *SecNo) Inc(level int) {
	for len(*s) < level {
		*s = append(*s, 0)
	}
	*s = (*s)[:level]
	(*s)[level-1]++
}

// TOCEntry is an entry in the table of contents of a page.
type TOCEntry struct {
	Level  int
	Number string
	Title  string
	ID     string

	// up is the number of lists opened before this entry, down the
	// number of lists closed after it.
	up, down int
}

// Up is used by the page template to open nested lists.
func (t TOCEntry) Up() []struct{} {
	return make([]struct{}, t.up)
}

// Down is used by the page template to close nested lists.
func (t TOCEntry) Down() []struct{} {
	return make([]struct{}, t.down)
}
