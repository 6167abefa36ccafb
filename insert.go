package rtree

import "github.com/jpochyla/rtree.rs/alloc"

// chooseLeastEnlargement picks the child of n minimizing
// unionedArea(candidate, rect) - area(candidate), breaking ties by smaller
// area; the first candidate wins over all later ties unless one is
// strictly better. n must be a non-empty parent.
func chooseLeastEnlargement[T any](n *node[T], rect Rect) int {
	children := n.mustParent().Items()
	best := -1
	var bestEnlargement, bestArea float32
	for i := range children {
		area := children[i].rect.area()
		enlargement := children[i].rect.unionedArea(rect) - area
		if best == -1 || enlargement < bestEnlargement ||
			(enlargement == bestEnlargement && area < bestArea) {
			best, bestEnlargement, bestArea = i, enlargement, area
		}
	}
	return best
}

// insert descends from n (a parent at the given depth, where depth 0 means
// n's direct children are leaves) and adds a new leaf (rect, value). After
// insertion, and after any recursive child split, n's rect is expanded to
// cover rect.
func insert[T any](n *node[T], rect Rect, value T, depth int, a alloc.Allocator[node[T]]) {
	children := n.mustParent()
	if depth == 0 {
		children.Push(newLeaf(rect, value))
	} else {
		idx := chooseLeastEnlargement(n, rect)
		child := &children.Items()[idx]
		insert(child, rect, value, depth-1, a)
		if child.mustParent().Full() {
			right := splitLargestAxisEdgeSnap(child, a)
			children.Push(right)
		}
	}
	n.rect.expand(rect)
}
