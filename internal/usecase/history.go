package usecase

import "svw.info/verdant/internal/domain"

// DefaultUndoCapacity bounds the undo history when no capacity is configured.
const DefaultUndoCapacity = 20

// Snapshot is the state restored by one undo.
type Snapshot struct {
	Board domain.Board
	Seeds int
}

// History is a bounded LIFO of snapshots; pushing past capacity drops the oldest.
type History struct {
	capacity int
	items    []Snapshot
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultUndoCapacity
	}
	return &History{capacity: capacity, items: make([]Snapshot, 0, capacity)}
}

func (h *History) Push(s Snapshot) {
	if len(h.items) == h.capacity {
		copy(h.items, h.items[1:])
		h.items = h.items[:len(h.items)-1]
	}
	h.items = append(h.items, s)
}

// Pop returns the most recent snapshot; ok is false when the history is empty.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.items) == 0 {
		return Snapshot{}, false
	}
	s := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	return s, true
}

func (h *History) Len() int      { return len(h.items) }
func (h *History) Capacity() int { return h.capacity }
func (h *History) Clear()        { h.items = h.items[:0] }
