// Package queue maintains the bounded, ordered collection of active toasts.
// The queue owns every entity it holds; other components only reference
// entities through the manager that wraps this queue.
package queue

import "github.com/cristianoliveira/bubbletoast/internal/entity"

// Queue is the active toast sequence, oldest first. It is not safe for
// concurrent use; the owning manager serializes access.
type Queue struct {
	capacity int
	items    []*entity.Toast
	byID     map[entity.ID]*entity.Toast
}

// New creates a queue that holds at most capacity toasts. A non-positive
// capacity falls back to the default.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = entity.DefaultMaxVisible
	}
	return &Queue{
		capacity: capacity,
		byID:     make(map[entity.ID]*entity.Toast),
	}
}

// Capacity returns the maximum number of concurrently active toasts.
func (q *Queue) Capacity() int {
	return q.capacity
}

// Len returns the number of active toasts.
func (q *Queue) Len() int {
	return len(q.items)
}

// Add inserts t at the end of the active sequence. If the queue is at
// capacity the single oldest entity (by creation time, ties broken by
// insertion order) is removed first and returned so the caller can tear
// down its lifecycle. Stacking indexes are recomputed.
func (q *Queue) Add(t *entity.Toast) (evicted *entity.Toast) {
	if len(q.items) >= q.capacity {
		evicted = q.evictOldest()
	}
	q.items = append(q.items, t)
	q.byID[t.ID] = t
	q.reindex()
	return evicted
}

// Remove drops the entity with the given id. Removing an unknown id is a
// no-op and returns nil. Stacking indexes are recomputed.
func (q *Queue) Remove(id entity.ID) *entity.Toast {
	t, ok := q.byID[id]
	if !ok {
		return nil
	}
	delete(q.byID, id)
	for i, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			break
		}
	}
	q.reindex()
	return t
}

// Clear drops every entity and returns them in insertion order.
func (q *Queue) Clear() []*entity.Toast {
	cleared := q.items
	q.items = nil
	q.byID = make(map[entity.ID]*entity.Toast)
	return cleared
}

// Get returns the entity with the given id, if active.
func (q *Queue) Get(id entity.ID) (*entity.Toast, bool) {
	t, ok := q.byID[id]
	return t, ok
}

// List returns the active toasts in insertion order, oldest first. The
// returned slice is a copy; the entities are not.
func (q *Queue) List() []*entity.Toast {
	out := make([]*entity.Toast, len(q.items))
	copy(out, q.items)
	return out
}

// evictOldest removes and returns the entity with the earliest creation
// time, ties broken by insertion order.
func (q *Queue) evictOldest() *entity.Toast {
	if len(q.items) == 0 {
		return nil
	}
	oldest := 0
	for i := 1; i < len(q.items); i++ {
		if q.items[i].OlderThan(q.items[oldest]) {
			oldest = i
		}
	}
	t := q.items[oldest]
	q.items = append(q.items[:oldest], q.items[oldest+1:]...)
	delete(q.byID, t.ID)
	return t
}

// reindex reassigns the 0-based stacking index of every active toast.
// The index is global across positions; offset math downstream depends on
// the total count, not on per-position grouping.
func (q *Queue) reindex() {
	for i, t := range q.items {
		t.Index = i
	}
}
