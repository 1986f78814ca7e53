// Package fibheap implements a generic Fibonacci heap: a mergeable min-priority
// queue with durable element handles.
//
// What is a Fibonacci heap?
//
//	A forest of heap-ordered multi-way trees whose roots sit in one circular
//	list. Work is deferred: Insert and Meld only splice rings, and the forest
//	is tidied up (consolidated) when the minimum is extracted. DecreaseKey
//	cuts a node loose instead of sifting it, and a per-node mark bounds how
//	many children a node may lose before it is cut too (cascading cut).
//
// Complexity (amortized):
//
//	Insert, Top, Meld, DecreaseKey  O(1)
//	ExtractMin, Remove              O(log n)
//	Clone, Clear                    O(n)
//	Move                            O(1)
//
// Handles:
//
//	Insert returns an *Element. The element is the durable identity of the
//	inserted key/payload pair: it stays valid across Insert, Meld, DecreaseKey,
//	Remove of other elements and Move of the whole heap. Once the element leaves
//	the heap (ExtractMin, Remove, Clear) its Key and Payload remain readable but
//	DecreaseKey/Remove report ErrInvalidHandle. Clone produces new elements;
//	handles of the source are foreign to the copy and are rejected.
//
// Errors (sentinel):
//
//	ErrEmptyHeap      Top/ExtractMin on an empty heap.
//	ErrInvalidHandle  nil, detached or foreign element.
//	ErrKeyOrder       DecreaseKey asked to increase a key.
//
// Quick example:
//
//	h := fibheap.NewOrdered[int, string]()
//	h.Insert(3, "three")
//	e := h.Insert(20, "twenty")
//	_ = h.DecreaseKey(e, 0)
//	top, _ := h.Top() // top.Key() == 0
//
// The heap is not safe for concurrent use. The sub-packages core, dijkstra and
// prim_kruskal build shortest-path and spanning-tree algorithms on top of it.
//
//	go get github.com/katalvlaran/fibheap
package fibheap
