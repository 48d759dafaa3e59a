// queue.go -
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

// Package queue runs jobs on a bounded number of worker goroutines.
package queue

import (
	"flag"
	"log"
	"os"
	"strconv"
	"sync"
)

const (
	queueLength    = 1
	defaultWorkers = 4
)

var numWorkers = flag.Int("formula-workers", 0,
	"number of concurrent conversion workers (default $HWPMATH_WORKERS or 4)")

// Workers returns the number of workers to use, as given by the
// -formula-workers command line flag or the HWPMATH_WORKERS
// environment variable.
func Workers() int {
	if *numWorkers > 0 {
		return *numWorkers
	}
	if env := os.Getenv("HWPMATH_WORKERS"); env != "" {
		n, err := strconv.Atoi(env)
		if err == nil && n > 0 {
			return n
		}
		log.Printf("ignoring invalid HWPMATH_WORKERS=%q", env)
	}
	return defaultWorkers
}

// Queue executes submitted jobs concurrently.
type Queue struct {
	maxWorkers int

	jobs    chan func()
	done    chan struct{}
	workers *sync.WaitGroup
}

// New creates a queue which runs at most n jobs at the same time.  If
// n <= 0, the value returned by Workers() is used.
func New(n int) *Queue {
	if n <= 0 {
		n = Workers()
	}
	q := &Queue{
		maxWorkers: n,
		jobs:       make(chan func(), queueLength),
		done:       make(chan struct{}),
		workers:    &sync.WaitGroup{},
	}
	go q.scheduler()
	return q
}

// Submit adds a new job to the queue.  The call blocks while all
// workers are busy and the queue is full.
func (q *Queue) Submit(job func()) {
	q.jobs <- job
}

// Finish must be called after the last job has been submitted to the
// queue.  The function waits until all jobs have completed and then
// shuts down the queue.
func (q *Queue) Finish() {
	close(q.jobs)
	<-q.done
	q.workers.Wait()
}

func (q *Queue) scheduler() {
	defer close(q.done)

	workers := make(chan int, q.maxWorkers)
	for i := 0; i < q.maxWorkers; i++ {
		workers <- i
	}

	for job := range q.jobs {
		worker := <-workers
		q.workers.Add(1)
		go func(job func()) {
			job()
			workers <- worker
			q.workers.Done()
		}(job)
	}
}
