// queue_test.go -
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

package queue

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestQueue(t *testing.T) {
	q := New(3)
	results := make([]int, 100)
	for i := range results {
		i := i
		q.Submit(func() {
			results[i] = i * i
		})
	}
	q.Finish()

	for i, res := range results {
		if res != i*i {
			t.Errorf("job %d: got %d", i, res)
		}
	}
}

func TestMaxWorkers(t *testing.T) {
	const n = 2
	q := New(n)

	var running, peak int32
	var mu sync.Mutex
	for i := 0; i < 20; i++ {
		q.Submit(func() {
			cur := atomic.AddInt32(&running, 1)
			mu.Lock()
			if cur > peak {
				peak = cur
			}
			mu.Unlock()
			for j := 0; j < 1000; j++ {
				_ = j * j
			}
			atomic.AddInt32(&running, -1)
		})
	}
	q.Finish()

	if peak > n {
		t.Errorf("%d jobs ran concurrently, expected at most %d", peak, n)
	}
	if peak < 1 {
		t.Error("no job was run")
	}
}

func TestWorkers(t *testing.T) {
	t.Setenv("HWPMATH_WORKERS", "7")
	if n := Workers(); n != 7 {
		t.Errorf("got %d workers, expected 7", n)
	}
	t.Setenv("HWPMATH_WORKERS", "many")
	if n := Workers(); n != defaultWorkers {
		t.Errorf("got %d workers, expected %d", n, defaultWorkers)
	}
}

func TestEmptyQueue(t *testing.T) {
	q := New(0)
	q.Finish()
}
