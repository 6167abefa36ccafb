package rtree

import "container/heap"

// Entry is a single (rect, value) record yielded by a traversal iterator.
// Dist is the caller's distance for Nearby, and zero for Scan/Search.
type Entry[T any] struct {
	Rect  Rect
	Value *T
	Dist  float32
}

// frame is one level of an explicit traversal stack: the children of a
// parent node, plus a cursor into them. Scan and Search share this shape;
// Nearby uses a priority queue instead (see below).
type frame[T any] struct {
	items []node[T]
	idx   int
}

func newStack[T any](root *node[T]) []frame[T] {
	if root == nil {
		return nil
	}
	return []frame[T]{{items: root.mustParent().Items()}}
}

// ScanIter walks every entry in the tree, depth-first, in whatever order
// children appear inside parents. It borrows the tree immutably; the tree
// must not be mutated while an iterator is in use.
type ScanIter[T any] struct {
	stack []frame[T]
}

// Next advances the iterator and returns the next entry, or (zero, false)
// once exhausted.
func (it *ScanIter[T]) Next() (Entry[T], bool) {
outer:
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		for top.idx < len(top.items) {
			n := &top.items[top.idx]
			top.idx++
			if n.isLeaf() {
				return Entry[T]{Rect: n.rect, Value: &n.value}, true
			}
			it.stack = append(it.stack, frame[T]{items: n.mustParent().Items()})
			continue outer
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	return Entry[T]{}, false
}

// SearchIter walks only entries whose rect intersects a query rect,
// skipping leaves and not descending into parents that miss entirely.
type SearchIter[T any] struct {
	stack []frame[T]
	query Rect
}

// Next advances the iterator and returns the next intersecting entry, or
// (zero, false) once exhausted.
func (it *SearchIter[T]) Next() (Entry[T], bool) {
outer:
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		for top.idx < len(top.items) {
			n := &top.items[top.idx]
			top.idx++
			if !n.rect.intersects(it.query) {
				continue
			}
			if n.isLeaf() {
				return Entry[T]{Rect: n.rect, Value: &n.value}, true
			}
			it.stack = append(it.stack, frame[T]{items: n.mustParent().Items()})
			continue outer
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	return Entry[T]{}, false
}

// queueItem is one pending node in a Nearby traversal: a node reference and
// the caller-computed distance it was enqueued with.
type queueItem[T any] struct {
	dist float32
	n    *node[T]
}

// priorityQueue is a container/heap min-heap ordered by dist, so the
// smallest distance dequeues first.
type priorityQueue[T any] []queueItem[T]

func (pq priorityQueue[T]) Len() int            { return len(pq) }
func (pq priorityQueue[T]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue[T]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue[T]) Push(x interface{}) { *pq = append(*pq, x.(queueItem[T])) }
func (pq *priorityQueue[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// NearbyIter performs best-first traversal over a min-heap keyed by a
// caller-supplied distance function. Because entries are dequeued in
// nondecreasing distance order, callers whose distance function is a
// monotone lower bound on rectangles receive true nearest-first order; the
// iterator itself makes no assumption of monotonicity.
type NearbyIter[T any] struct {
	queue priorityQueue[T]
	dist  func(rect Rect, value *T) float32
}

// Next advances the iterator and returns the next entry in dequeue order,
// or (zero, false) once exhausted.
func (it *NearbyIter[T]) Next() (Entry[T], bool) {
	for it.queue.Len() > 0 {
		popped := heap.Pop(&it.queue).(queueItem[T])
		n := popped.n
		if n.isLeaf() {
			return Entry[T]{Rect: n.rect, Value: &n.value, Dist: popped.dist}, true
		}
		children := n.mustParent().Items()
		for i := range children {
			c := &children[i]
			var d float32
			if c.isLeaf() {
				d = it.dist(c.rect, &c.value)
			} else {
				d = it.dist(c.rect, nil)
			}
			heap.Push(&it.queue, queueItem[T]{dist: d, n: c})
		}
	}
	return Entry[T]{}, false
}
