package fibheap

// cloneJob is a child ring still to copy: src is the source parent's child,
// dst the already-copied parent.
type cloneJob[K, V any] struct {
	src, dst *node[K, V]
}

// Clone returns an independent deep copy of h: same tree shapes, same ring
// order, same keys, payloads copied by assignment. The copy's minimum is the
// duplicate of h's minimum. Handles of h are foreign to the copy and vice versa.
//
// Complexity: O(n).
func (h *Heap[K, V]) Clone() *Heap[K, V] {
	c := &Heap[K, V]{
		size:  h.size,
		less:  h.less,
		owner: &owner{},
		log:   h.log,
	}
	if h.min == nil {
		return c
	}

	var stack []cloneJob[K, V]

	copyRing := func(head, parent *node[K, V]) *node[K, V] {
		var first, prev *node[K, V]
		n := head
		for {
			e := &Element[K, V]{key: n.elem.key, payload: n.elem.payload, owner: c.owner}
			d := newNode(e)
			d.parent = parent
			d.degree = n.degree
			d.marked = n.marked
			if first == nil {
				first = d
			} else {
				splice(prev, d)
			}
			prev = d
			if n.child != nil {
				stack = append(stack, cloneJob[K, V]{src: n.child, dst: d})
			}
			n = n.right
			if n == head {
				break
			}
		}

		return first
	}

	c.min = copyRing(h.min, nil)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p.dst.child = copyRing(p.src, p.dst)
	}

	h.log.Debug().Int("size", h.size).Msg("fibheap: cloned")

	return c
}

// Move hands the whole forest to a new heap and leaves h empty but usable.
// Every handle issued by h, or melded into it, now addresses the returned heap.
//
// Complexity: O(1).
func (h *Heap[K, V]) Move() *Heap[K, V] {
	m := &Heap[K, V]{
		min:   h.min,
		size:  h.size,
		less:  h.less,
		owner: h.owner,
		log:   h.log,
	}
	h.min = nil
	h.size = 0
	h.owner = &owner{}

	return m
}

// Clear empties the heap, detaching every element. Outstanding handles keep
// their Key and Payload; DecreaseKey and Remove on them report ErrInvalidHandle.
// The heap can be reused afterwards.
//
// Complexity: O(n).
func (h *Heap[K, V]) Clear() {
	n := h.size
	if h.min != nil {
		stack := []*node[K, V]{h.min}
		for len(stack) > 0 {
			head := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x := head
			for {
				next := x.right
				if x.child != nil {
					stack = append(stack, x.child)
				}
				x.elem.detach()
				x.parent, x.child, x.left, x.right = nil, nil, nil, nil
				x = next
				if x == head {
					break
				}
			}
		}
	}
	h.min = nil
	h.size = 0
	h.owner = &owner{}

	h.log.Debug().Int("released", n).Msg("fibheap: cleared")
}
