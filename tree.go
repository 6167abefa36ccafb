// Package rtree implements an in-memory R-tree: a height-balanced spatial
// index over axis-aligned rectangles, each carrying an application-defined
// payload of type T. It supports point/range insertion, removal by
// (rect, payload) key, intersection search, full scan, and best-first
// nearest-neighbor traversal driven by a caller-supplied distance
// function. The tree is single-owner; callers are responsible for their
// own synchronization if shared across goroutines.
package rtree

import (
	"github.com/flier/goutil/pkg/arena"
	"github.com/jpochyla/rtree.rs/alloc"
)

// Tree is the top-level façade: it tracks the root, entry count, and
// height, and dispatches to the insert/remove/traversal engines.
type Tree[T any] struct {
	root   *node[T]
	length int
	height int
	alloc  alloc.Allocator[node[T]]
}

// New returns an empty tree backed by the given allocator. Use
// NewHeapAllocator or NewArenaAllocator to obtain one.
func New[T any](a alloc.Allocator[node[T]]) *Tree[T] {
	return &Tree[T]{alloc: a}
}

// NewHeapAllocator returns an allocator that heap-allocates one array per
// node, released by the garbage collector in the ordinary way.
func NewHeapAllocator[T any]() alloc.Allocator[node[T]] {
	return alloc.NewHeap[node[T]]()
}

// NewArenaAllocator returns an allocator that carves every node's child
// array out of a caller-owned *arena.Arena. Resetting a (or letting it be
// garbage collected) releases every Slab allocated through it at once;
// the tree never frees nodes individually through this path.
func NewArenaAllocator[T any](a *arena.Arena) *alloc.Arena[node[T]] {
	return alloc.NewArena[node[T]](a)
}

// Len returns the number of entries in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Rect returns the bounding rect of all entries, or false if the tree is
// empty.
func (t *Tree[T]) Rect() (Rect, bool) {
	if t.root == nil {
		return Rect{}, false
	}
	return t.root.rect, true
}

// Height returns the number of interior parent levels above the leaves,
// minus one. A tree with only entries directly under the root has height 0.
func (t *Tree[T]) Height() int {
	return t.height
}

// Insert adds (rect, value) to the tree, restoring every R-tree invariant
// before returning.
func (t *Tree[T]) Insert(rect Rect, value T) {
	if t.root == nil {
		root := newParent[T](rect, t.alloc)
		t.root = &root
	}
	insert(t.root, rect, value, t.height, t.alloc)
	if t.root.mustParent().Full() {
		newRoot := newParent[T](t.root.rect, t.alloc)
		right := splitLargestAxisEdgeSnap(t.root, t.alloc)
		oldRoot := *t.root
		children := newRoot.mustParent()
		children.Push(oldRoot)
		children.Push(right)
		newRoot.recalc()
		t.root = &newRoot
		t.height++
	}
	t.length++
}

// Remove deletes the first entry whose rect equals rect and whose payload
// equals value; rect also narrows the descent. It returns the removed
// value and true, or (zero, false) if no entry matched. T must be
// comparable for payload equality to be meaningful; Tree[T] itself does
// not require it so non-comparable payloads can still be inserted and
// traversed.
func Remove[T comparable](t *Tree[T], rect Rect, value T) (T, bool) {
	if t.root == nil {
		return zero[T](), false
	}
	var reinsert []node[T]
	out, found, recalced := remove(t.root, rect, value, &reinsert, t.height)
	if !found {
		return zero[T](), false
	}
	t.length -= 1 + len(reinsert)
	if t.length == 0 {
		t.root = nil
		recalced = false
	} else if t.height > 0 && t.root.mustParent().Len() == 1 {
		only := t.root.mustParent().Items()[0]
		t.height--
		t.root = &only
		t.root.recalc()
	} else if recalced {
		t.root.recalc()
	}
	for i := len(reinsert) - 1; i >= 0; i-- {
		t.Insert(reinsert[i].rect, reinsert[i].value)
	}
	return out.value, true
}

func zero[T any]() T {
	var z T
	return z
}

// Iter is an alias for Scan, matching the original library's pairing of
// the two names for the same traversal.
func (t *Tree[T]) Iter() *ScanIter[T] {
	return t.Scan()
}

// Scan returns an iterator over every entry in the tree, depth-first, with
// no particular stable global order.
func (t *Tree[T]) Scan() *ScanIter[T] {
	return &ScanIter[T]{stack: newStack(t.root)}
}

// Search returns an iterator over every entry whose rect intersects query.
func (t *Tree[T]) Search(query Rect) *SearchIter[T] {
	return &SearchIter[T]{stack: newStack(t.root), query: query}
}

// Nearby returns a best-first iterator driven by dist, a caller-supplied
// function computing a node's distance from some externally-known target:
// dist receives the node's rect, and for leaves, a pointer to the payload
// (nil for interior nodes). Entries are dequeued in nondecreasing dist
// order.
func (t *Tree[T]) Nearby(dist func(rect Rect, value *T) float32) *NearbyIter[T] {
	it := &NearbyIter[T]{dist: dist}
	if t.root != nil {
		it.queue = append(it.queue, queueItem[T]{dist: 0, n: t.root})
	}
	return it
}
