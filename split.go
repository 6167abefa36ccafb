package rtree

import (
	"sort"

	"github.com/jpochyla/rtree.rs/alloc"
)

// splitLargestAxisEdgeSnap splits a full parent left (MaxItems children)
// into left and a freshly allocated right sibling, partitioning along
// left's largest axis by which edge each child sits closer to. left ends
// up holding the children that stay; the right sibling is returned as a
// Node. Both sides end up with rects recomputed from scratch and children
// sorted by ascending Min.X.
func splitLargestAxisEdgeSnap[T any](left *node[T], a alloc.Allocator[node[T]]) node[T] {
	rect := left.rect
	ax := rect.largestAxis()
	right := newParent[T](rect, a)

	lchildren := left.mustParent()
	rchildren := right.mustParent()

	i := 0
	for i < lchildren.Len() {
		c := lchildren.Items()[i]
		minDist := c.rect.Min.on(ax) - rect.Min.on(ax)
		maxDist := rect.Max.on(ax) - c.rect.Max.on(ax)
		if minDist < maxDist {
			// stays left; advance past it
			i++
		} else {
			// moves right; swap-remove does not advance i, so the
			// child swapped into position i is considered next.
			rchildren.Push(lchildren.SwapRemove(i))
		}
	}

	// Rebalance so neither side underflows below MinItems.
	if lchildren.Len() < MinItems {
		sortByAxisMin(rchildren.Items(), ax)
		for lchildren.Len() < MinItems {
			moveLast(rchildren, lchildren)
		}
	} else if rchildren.Len() < MinItems {
		sortByAxisMax(lchildren.Items(), ax)
		for rchildren.Len() < MinItems {
			moveLast(lchildren, rchildren)
		}
	}

	left.recalc()
	right.recalc()
	sortByMinX(lchildren.Items())
	sortByMinX(rchildren.Items())
	return right
}

// moveLast pops the last child of from (expected to be the extreme of a
// preceding sort) and pushes it onto to.
func moveLast[T any](from, to *alloc.Slab[node[T]]) {
	last := from.Len() - 1
	to.Push(from.SwapRemove(last))
}

func sortByAxisMin[T any](children []node[T], ax axis) {
	sort.Slice(children, func(i, j int) bool {
		return orderedFloat32(children[i].rect.Min.on(ax)).less(orderedFloat32(children[j].rect.Min.on(ax)))
	})
}

func sortByAxisMax[T any](children []node[T], ax axis) {
	sort.Slice(children, func(i, j int) bool {
		return orderedFloat32(children[i].rect.Max.on(ax)).less(orderedFloat32(children[j].rect.Max.on(ax)))
	})
}

func sortByMinX[T any](children []node[T]) {
	sort.Slice(children, func(i, j int) bool {
		return orderedFloat32(children[i].rect.Min.X).less(orderedFloat32(children[j].rect.Min.X))
	})
}
