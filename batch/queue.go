// Package batch — FIFO queue of tracking ids with deduplication.
// Backs --batch runs, where the same id often appears in an input file
// more than once and must be processed only once.
package batch

import "strings"

// Queue is a FIFO of tracking ids with deduplication.
type Queue struct {
	items []string
	seen  map[string]bool
	idx   int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		seen: make(map[string]bool),
	}
}

// Add enqueues a tracking id if it hasn't been seen before. Blank ids
// are ignored.
func (q *Queue) Add(id string) {
	id = strings.TrimSpace(id)
	if id == "" || q.seen[id] {
		return
	}
	q.seen[id] = true
	q.items = append(q.items, id)
}

// HasNext returns true if there are unprocessed ids.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed id and advances the pointer.
func (q *Queue) Next() string {
	id := q.items[q.idx]
	q.idx++
	return id
}

// Len returns the total number of unique ids seen.
func (q *Queue) Len() int {
	return len(q.items)
}
