// batch.go -
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
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/seehuhn/hwpmath/formula/queue"
)

// ErrSkipped is stored in the results of a fail-fast batch conversion
// for formulas which were not converted because an earlier formula
// failed.
var ErrSkipped = errors.New("skipped after earlier error")

// Result is the outcome of converting one formula of a batch.
type Result struct {
	Input  string
	Output string
	Err    error
}

// ConvertBatch converts all inputs in direction dir.  The results are
// returned in the order of the inputs, with one result per input.
//
// If failFast is false, all inputs are converted and the returned
// error is nil unless dir is not supported; conversion errors are
// reported in the Err fields of the results.  If failFast is true,
// no new conversions are started once a conversion has failed, and
// the error of the first failing input is returned.
func (c *Converter) ConvertBatch(inputs []string, dir Direction, failFast bool) ([]Result, error) {
	if dir != ToLaTeX && dir != ToNotation {
		return nil, unsupported(dir.String())
	}

	results := make([]Result, len(inputs))
	for i, input := range inputs {
		results[i].Input = input
		if failFast {
			results[i].Err = ErrSkipped
		}
	}

	var failed atomic.Bool
	q := queue.New(c.workers)
	for i := range inputs {
		if failFast && failed.Load() {
			break
		}
		res := &results[i]
		q.Submit(func() {
			if failFast && failed.Load() {
				return
			}
			res.Output, res.Err = c.Convert(res.Input, dir)
			if res.Err != nil {
				failed.Store(true)
			}
		})
	}
	q.Finish()

	if failFast {
		for i, res := range results {
			if res.Err != nil && res.Err != ErrSkipped {
				return results, fmt.Errorf("formula %d: %w", i+1, res.Err)
			}
		}
	}
	return results, nil
}
