// id.go -
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
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// formulaID derives an element ID from the LaTeX source of a formula.
func formulaID(latex string) string {
	sum := sha3.Sum224([]byte(latex))
	return "eq-" + hex.EncodeToString(sum[:5])
}

// uniqueID turns label into a valid XML ID which has not been used on
// the page before, and marks it as used.
func (p *Page) uniqueID(label string) string {
	base := normaliseID(label)
	res := base
	sfx := 2
	for p.ids[res] {
		res = base + "-" + strconv.Itoa(sfx)
		sfx++
	}
	p.ids[res] = true
	return res
}

// normaliseID replaces all characters which are not allowed in XML
// IDs by hyphens.  Runs of hyphens are collapsed and IDs are made to
// start with a letter.
func normaliseID(label string) string {
	var chars []byte
	hyphenSeen := false
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !(isLetter(c) || isDigit(c) || c == '_' || c == '.') {
			c = '-'
		}
		if c == '-' && hyphenSeen {
			continue
		}
		if len(chars) == 0 && !isLetter(c) {
			chars = append(chars, 'x')
		}
		chars = append(chars, c)
		hyphenSeen = c == '-'
	}
	if len(chars) == 0 {
		return "x"
	}
	return string(chars)
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
