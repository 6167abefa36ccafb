package rtree

import "github.com/jpochyla/rtree.rs/alloc"

// MaxItems and MinItems are the hard fan-out bounds: every non-root parent
// holds between MinItems and MaxItems children; the root is exempt from
// the lower bound.
const (
	MaxItems = alloc.MaxItems
	MinItems = 2
)

// node is the discriminated tree element: a leaf Entry (Rect, Value) when
// children is nil, or an interior Parent (Rect, bounded child array)
// otherwise. There is no separate Entry/Parent exported type; the nil-ness
// of children is the discriminant.
type node[T any] struct {
	rect     Rect
	value    T
	children *alloc.Slab[node[T]]
}

func newLeaf[T any](rect Rect, value T) node[T] {
	return node[T]{rect: rect, value: value}
}

func newParent[T any](rect Rect, a alloc.Allocator[node[T]]) node[T] {
	return node[T]{rect: rect, children: a.Make()}
}

func (n *node[T]) isLeaf() bool {
	return n.children == nil
}

// mustParent panics if n is not an interior node. Accessing an Entry as if
// it were a Parent (or vice versa) is an invariant violation and is
// treated as a programmer error.
func (n *node[T]) mustParent() *alloc.Slab[node[T]] {
	if n.children == nil {
		panic("rtree: leaf node accessed as a parent")
	}
	return n.children
}

// recalc recomputes n.rect from scratch as the tight union of its
// children's rects. n must be a parent with at least one child.
func (n *node[T]) recalc() {
	children := n.mustParent().Items()
	if len(children) == 0 {
		return
	}
	rect := children[0].rect
	for i := 1; i < len(children); i++ {
		rect.expand(children[i].rect)
	}
	n.rect = rect
}
