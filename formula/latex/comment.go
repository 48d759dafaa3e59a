// comment.go -
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

package latex

import (
	"strings"
	"unicode"
)

// readComment reads a block of consecutive comment lines, including
// the white space following the last line.  The comment text is
// returned without the leading '%' characters.
func (p *Tokenizer) readComment() string {
	var lines []string

	state := 1
loop:
	for p.Next() {
		buf := p.Peek()

		switch state {
		case 1: // look for '%'
			if buf[0] != '%' {
				break loop
			}
			state = 2
			fallthrough
		case 2: // look for end of line
			pos := strings.IndexByte(buf, '\n')
			if pos < 0 {
				pos = len(buf)
			}
			line := strings.TrimRightFunc(buf[1:pos], unicode.IsSpace)
			lines = append(lines, line)
			p.Skip(pos)
			state = 3
		case 3: // skip white space
			p.skipWhiteSpace()
			state = 1
		}
	}
	return strings.Join(lines, "\n")
}
