// convert.go -
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

package formula

import (
	"github.com/seehuhn/hwpmath/formula/cache"
	"github.com/seehuhn/hwpmath/formula/emit"
	"github.com/seehuhn/hwpmath/formula/parser"
	"github.com/seehuhn/hwpmath/formula/scanner"
	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/formula/tree"
)

// Options can be used to configure a Converter.  The zero value gives
// a converter without cache, using the default number of workers for
// batch conversions.
type Options struct {
	// Cache, if non-nil, stores converted formulas.  A cache can be
	// shared between converters.
	Cache *cache.Cache

	// Workers is the maximal number of formulas converted at the same
	// time by ConvertBatch.  If Workers <= 0, the value from
	// queue.Workers() is used.
	Workers int
}

// Converter converts formulas in one dialect of the equation editor
// notation to and from LaTeX.  A Converter can be used concurrently.
type Converter struct {
	table   *symbols.Table
	parser  *parser.Parser
	emitter *emit.Emitter
	cache   *cache.Cache
	workers int
}

// New creates a converter for the dialect described by table.  The
// argument opts can be nil.
func New(table *symbols.Table, opts *Options) *Converter {
	if opts == nil {
		opts = &Options{}
	}
	return &Converter{
		table:   table,
		parser:  parser.New(table),
		emitter: emit.New(table),
		cache:   opts.Cache,
		workers: opts.Workers,
	}
}

// Table returns the symbol table used by the converter.
func (c *Converter) Table() *symbols.Table {
	return c.table
}

// Convert converts input into the notation given by dir.  For ToLaTeX,
// the input is read as equation editor notation, for ToNotation it is
// read as LaTeX.
func (c *Converter) Convert(input string, dir Direction) (string, error) {
	if dir != ToLaTeX && dir != ToNotation {
		return "", unsupported(dir.String())
	}

	key := c.table.Name() + "\x00" + dir.String() + "\x00" + input
	if res, ok := c.cache.Get(key); ok {
		return res, nil
	}

	root, err := c.Parse(input, dir)
	if err != nil {
		return "", err
	}
	target := emit.LaTeX
	if dir == ToNotation {
		target = emit.Notation
	}
	res := c.emitter.Emit(root, target)

	c.cache.Put(key, res)
	return res, nil
}

// Parse returns the expression tree for input, which is read in the
// source notation of a conversion in direction dir.
func (c *Converter) Parse(input string, dir Direction) (*tree.Group, error) {
	switch dir {
	case ToLaTeX:
		return c.parser.ParseString(input)
	case ToNotation:
		return c.parser.ParseLaTeXString(input)
	}
	return nil, unsupported(dir.String())
}

func unsupported(name string) error {
	return scanner.NewError(ErrUnsupportedDirection, 0, "",
		"no conversion to "+name)
}
