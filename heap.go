package fibheap

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// Heap is a Fibonacci min-heap of keys K carrying payloads V.
//
// The zero value is not usable; construct with New, NewOrdered or NewFrom.
// A Heap must not be copied by assignment once in use: use Clone for an
// independent copy and Move to hand the forest to a new owner.
type Heap[K, V any] struct {
	min   *node[K, V] // root with the smallest key, nil when empty
	size  int
	less  func(a, b K) bool
	owner *owner
	log   zerolog.Logger
}

// New creates an empty heap ordered by less. less must be a strict weak order;
// the element for which less(x, y) holds against all others is the minimum.
// Pass a reversed comparison to obtain a max-heap.
//
// Complexity: O(1).
func New[K, V any](less func(a, b K) bool, opts ...Option) *Heap[K, V] {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heap[K, V]{
		less:  less,
		owner: &owner{},
		log:   cfg.logger,
	}
}

// NewOrdered creates an empty heap ordered by the natural < of K.
func NewOrdered[K constraints.Ordered, V any](opts ...Option) *Heap[K, V] {
	return New[K, V](func(a, b K) bool { return a < b }, opts...)
}

// NewFrom creates a heap holding items, equivalent to inserting them in order.
//
// Complexity: O(len(items)).
func NewFrom[K, V any](less func(a, b K) bool, items []Item[K, V], opts ...Option) *Heap[K, V] {
	h := New[K, V](less, opts...)
	for _, it := range items {
		h.Insert(it.Key, it.Payload)
	}

	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int { return h.size }

// Empty reports whether the heap holds no elements.
func (h *Heap[K, V]) Empty() bool { return h.size == 0 }

// Insert adds key with payload and returns the element's handle.
//
// Complexity: O(1).
func (h *Heap[K, V]) Insert(key K, payload V) *Element[K, V] {
	e := &Element[K, V]{key: key, payload: payload, owner: h.owner}
	h.addRoot(newNode(e))
	h.size++

	return e
}

// InsertCopy inserts a new element carrying e's current key and payload.
// e itself is not touched and may belong to any heap or none.
func (h *Heap[K, V]) InsertCopy(e *Element[K, V]) *Element[K, V] {
	return h.Insert(e.key, e.payload)
}

// Top returns the element with the minimum key without removing it.
//
// Complexity: O(1).
func (h *Heap[K, V]) Top() (*Element[K, V], error) {
	if h.size == 0 {
		return nil, ErrEmptyHeap
	}

	return h.min.elem, nil
}

// Contains reports whether e is currently stored in h.
func (h *Heap[K, V]) Contains(e *Element[K, V]) bool {
	return h.check(e) == nil
}

// Meld moves every element of other into h. other is left empty but usable.
// Handles issued by other stay valid and now refer to h.
// Melding nil, an empty heap or h itself is a no-op. Both heaps must share
// the same ordering.
//
// Complexity: O(1).
func (h *Heap[K, V]) Meld(other *Heap[K, V]) {
	if other == nil || other == h || other.size == 0 {
		return
	}
	if h.min == nil {
		h.min = other.min
	} else {
		splice(h.min, other.min)
		if h.less(other.min.elem.key, h.min.elem.key) {
			h.min = other.min
		}
	}
	h.size += other.size

	other.owner.next = h.owner
	other.owner = &owner{}
	other.min = nil
	other.size = 0
}

// DecreaseKey lowers e's key to key.
//
// Errors:
//   - ErrInvalidHandle if e is nil, detached or stored in another heap.
//   - ErrKeyOrder if key orders after the current key.
//
// On error the heap is unchanged.
//
// Complexity: O(1) amortized.
func (h *Heap[K, V]) DecreaseKey(e *Element[K, V], key K) error {
	if err := h.check(e); err != nil {
		return err
	}
	if h.less(e.key, key) {
		return ErrKeyOrder
	}

	x := e.node
	e.key = key
	if p := x.parent; p != nil && h.less(key, p.elem.key) {
		cut(x)
		h.addRoot(x)
		h.cascadingCut(p)

		return nil
	}
	if x.parent == nil && h.less(key, h.min.elem.key) {
		h.min = x
	}

	return nil
}

// ExtractMin removes and returns the element with the minimum key. The returned
// element is detached: its Key and Payload stay readable.
//
// Complexity: O(log n) amortized.
func (h *Heap[K, V]) ExtractMin() (*Element[K, V], error) {
	if h.size == 0 {
		return nil, ErrEmptyHeap
	}
	z := h.min
	if h.size == 1 {
		h.min = nil
		h.size = 0
		z.elem.detach()

		return z.elem, nil
	}

	h.promoteChildren(z)
	h.consolidate(z)
	h.size--
	z.elem.detach()

	return z.elem, nil
}

// RemoveMin is ExtractMin.
func (h *Heap[K, V]) RemoveMin() (*Element[K, V], error) {
	return h.ExtractMin()
}

// Remove deletes e from the heap wherever it sits and returns it detached.
//
// Complexity: O(log n) amortized.
func (h *Heap[K, V]) Remove(e *Element[K, V]) (*Element[K, V], error) {
	if err := h.check(e); err != nil {
		return nil, err
	}
	x := e.node
	if x == h.min {
		return h.ExtractMin()
	}

	p := x.parent
	if p != nil {
		cut(x)
	} else {
		unlink(x)
	}
	h.promoteChildren(x)
	h.size--
	if p != nil {
		h.cascadingCut(p)
	}
	e.detach()

	return e, nil
}

// check validates that e is stored in h.
func (h *Heap[K, V]) check(e *Element[K, V]) error {
	if e == nil || e.node == nil {
		return ErrInvalidHandle
	}
	r := e.owner.root()
	if r != h.owner {
		return fmt.Errorf("%w: element belongs to another heap", ErrInvalidHandle)
	}
	e.owner = r

	return nil
}
