package fibheap

// node is the structural half of an element: its place in the forest.
//
// Siblings form a circular doubly-linked ring; a lone node is its own left and
// right neighbour. Roots have a nil parent and are never marked.
type node[K, V any] struct {
	parent *node[K, V]
	child  *node[K, V] // any one child, nil if degree == 0
	left   *node[K, V]
	right  *node[K, V]

	degree int  // exact number of children
	marked bool // lost a child since it last became a child

	elem *Element[K, V]
}

func newNode[K, V any](e *Element[K, V]) *node[K, V] {
	n := &node[K, V]{elem: e}
	n.left = n
	n.right = n
	e.node = n

	return n
}

// splice joins the rings containing a and b into one ring in O(1).
//
//	a → ar … a   and   b → br … b   become   a → br … b → ar … a
func splice[K, V any](a, b *node[K, V]) {
	ar, br := a.right, b.right
	a.right = br
	br.left = a
	b.right = ar
	ar.left = b
}

// unlink takes n out of its sibling ring, leaving n as a ring of one.
func unlink[K, V any](n *node[K, V]) {
	n.left.right = n.right
	n.right.left = n.left
	n.left = n
	n.right = n
}

// cut excises the subtree rooted at n from n's parent. n ends up a detached,
// unmarked ring of one; the caller decides where it goes.
func cut[K, V any](n *node[K, V]) {
	p := n.parent
	if p.child == n {
		if n.right == n {
			p.child = nil
		} else {
			p.child = n.right
		}
	}
	unlink(n)
	p.degree--
	n.parent = nil
	n.marked = false
}

// link makes root y a child of root x. y must already be out of any ring.
func link[K, V any](x, y *node[K, V]) {
	y.parent = x
	y.marked = false
	if x.child == nil {
		x.child = y
	} else {
		splice(x.child, y)
	}
	x.degree++
}

// addRoot splices a detached tree into the root ring and updates min.
func (h *Heap[K, V]) addRoot(n *node[K, V]) {
	if h.min == nil {
		h.min = n
		return
	}
	splice(h.min, n)
	if h.less(n.elem.key, h.min.elem.key) {
		h.min = n
	}
}

// promoteChildren moves every child of n into the root ring. O(degree(n)).
func (h *Heap[K, V]) promoteChildren(n *node[K, V]) {
	c := n.child
	if c == nil {
		return
	}
	p := c
	for {
		p.parent = nil
		p.marked = false
		p = p.right
		if p == c {
			break
		}
	}
	n.child = nil
	n.degree = 0
	splice(h.min, c)
}

// cascadingCut walks up from p, which has just lost a child. A marked non-root
// is cut to the root ring and the walk continues at its old parent; an unmarked
// non-root is marked and the walk stops.
func (h *Heap[K, V]) cascadingCut(p *node[K, V]) {
	cuts := 0
	for p != nil && p.parent != nil {
		if !p.marked {
			p.marked = true
			break
		}
		gp := p.parent
		cut(p)
		h.addRoot(p)
		cuts++
		p = gp
	}
	if cuts > 0 {
		h.log.Trace().Int("cuts", cuts).Msg("fibheap: cascading cut")
	}
}
