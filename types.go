package fibheap

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by Heap operations.
var (
	// ErrEmptyHeap indicates Top or ExtractMin was called on a heap with no elements.
	ErrEmptyHeap = errors.New("fibheap: heap is empty")

	// ErrInvalidHandle indicates the element is nil, is no longer stored in any heap,
	// or belongs to a different heap than the receiver.
	ErrInvalidHandle = errors.New("fibheap: invalid element handle")

	// ErrKeyOrder indicates DecreaseKey was given a key that orders after the current one.
	ErrKeyOrder = errors.New("fibheap: new key is greater than current key")
)

// Item is a key/payload pair used to build a heap in one call (see NewFrom).
type Item[K, V any] struct {
	Key     K
	Payload V
}

// Element is a handle to one key/payload pair inserted into a Heap.
//
// The element outlives its place in the forest: after it has been extracted or
// removed, Key and Payload still answer, but the heap refuses to operate on it.
// Two handles are equal iff they are the same *Element.
type Element[K, V any] struct {
	key     K
	payload V

	// node is nil once the element is detached from every heap.
	node *node[K, V]

	// owner resolves to the token of the heap currently holding the element.
	owner *owner
}

// Key returns the element's current key.
func (e *Element[K, V]) Key() K { return e.key }

// Payload returns the user data stored with the element.
func (e *Element[K, V]) Payload() V { return e.payload }

// SetPayload replaces the user data. The key, and so the element's position, is untouched.
func (e *Element[K, V]) SetPayload(v V) { e.payload = v }

// Equal reports whether e and o refer to the same element.
func (e *Element[K, V]) Equal(o *Element[K, V]) bool { return e == o }

// Attached reports whether the element is still stored in some heap.
func (e *Element[K, V]) Attached() bool { return e != nil && e.node != nil }

func (e *Element[K, V]) detach() {
	e.node = nil
	e.owner = nil
}

// owner is a heap identity token. Meld forwards the absorbed heap's token to the
// receiver's so the absorbed handles resolve to their new heap without a walk.
type owner struct {
	next *owner
}

// root follows forwarding links with path halving.
func (o *owner) root() *owner {
	for o.next != nil {
		if o.next.next != nil {
			o.next = o.next.next
		}
		o = o.next
	}

	return o
}

// Option configures a Heap at construction time.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger attaches a zerolog logger. Consolidation and lifecycle events are
// logged at debug level, cascading cuts at trace level. Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}
