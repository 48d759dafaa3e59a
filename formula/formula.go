// formula.go -
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

// Package formula converts formulas between the equation editor
// notation of word processors and LaTeX.
//
// A Converter combines the tokenizers, parsers and emitters of the
// formula/... packages for one dialect of the notation:
//
//	conv := formula.New(symbols.ForDialect("hwp"), nil)
//	tex, err := conv.Convert("{1} over {3} TIMES LEFT ( A SMALLINTER B ^{C} RIGHT )", formula.ToLaTeX)
//
// Errors returned by the conversion functions are of type
// *scanner.ParseError and can be checked using errors.Is against the
// Err* values in formula/scanner and ErrUnsupportedDirection.
package formula

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Direction selects the target notation of a conversion.
type Direction int

// The supported conversion directions.
const (
	ToLaTeX Direction = iota
	ToNotation
)

// ErrUnsupportedDirection is returned when a conversion is requested
// for a direction which is not one of the constants above.
var ErrUnsupportedDirection = errors.New("unsupported direction")

func (d Direction) String() string {
	switch d {
	case ToLaTeX:
		return "latex"
	case ToNotation:
		return "notation"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// ParseDirection converts the name of a target notation into a
// Direction.  Recognised names are "latex" and "notation" (with "hwp"
// as an alias), in any case.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(name) {
	case "latex", "tex":
		return ToLaTeX, nil
	case "notation", "hwp":
		return ToNotation, nil
	}
	return -1, unsupported(name)
}

// Canonical returns the canonical form of a formula, used to compare
// formulas up to cosmetic differences.  All white space and all braces
// are removed.
func Canonical(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '{' || r == '}' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// IsRoundTripEquivalent reports whether a and b have the same
// canonical form.
func IsRoundTripEquivalent(a, b string) bool {
	return Canonical(a) == Canonical(b)
}
