// patterns.go -
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
	"github.com/alexflint/go-restructure"
)

// combination matches the prefix notation for binomial coefficients
// and permutations, e.g. "_5C_2" or "_nP_r".
type combination struct {
	_  string `^_`
	N  string `[0-9A-Za-z]+`
	Op string `[CP]`
	_  string `_`
	R  string `[0-9A-Za-z]+`
}

func (m *combination) Len() int {
	return len(m.N) + len(m.Op) + len(m.R) + 2
}

// implicitSubscript matches a run of letters directly followed by
// digits, e.g. "x12".  All trailing digits form the subscript.
type implicitSubscript struct {
	_    string `^`
	Base string `[A-Za-z]+`
	Sub  string `[0-9]+`
}

// The patterns are compiled once and are shared by all parsers.
var (
	combinationPattern = restructure.MustCompile(&combination{}, restructure.Options{})
	implicitPattern    = restructure.MustCompile(&implicitSubscript{}, restructure.Options{})
)
