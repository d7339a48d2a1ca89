package tasks

import (
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Queue runs loaders in the background and hands their results back to the
// frame thread. Completion callbacks only ever run inside Drain.
type Queue struct {
	group singleflight.Group

	mu    sync.Mutex
	ready []completion

	pending int
}

type completion struct {
	key  string
	val  any
	err  error
	done func(any, error)
}

func NewQueue() *Queue {
	return &Queue{}
}

// Go starts load on a goroutine. Concurrent calls with the same key share a
// single load; every caller's done still runs once with the shared result.
func (q *Queue) Go(key string, load func() (any, error), done func(any, error)) {
	q.pending++
	go func() {
		val, err, _ := q.group.Do(key, func() (val any, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("task %s panicked: %v", key, r)
				}
			}()
			return load()
		})
		q.mu.Lock()
		q.ready = append(q.ready, completion{key: key, val: val, err: err, done: done})
		q.mu.Unlock()
	}()
}

// Drain delivers every finished task and returns how many ran. Call it from
// the frame thread.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.ready
	q.ready = nil
	q.mu.Unlock()

	for _, c := range batch {
		q.pending--
		if c.err != nil {
			log.Printf("Task %s failed: %v", c.key, c.err)
		}
		if c.done != nil {
			c.done(c.val, c.err)
		}
	}
	return len(batch)
}

// Pending returns how many started tasks have not been delivered yet.
func (q *Queue) Pending() int {
	return q.pending
}
