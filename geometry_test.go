package rtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersectsClosedInterval(t *testing.T) {
	a := Rect{Min: Point{0, 0}, Max: Point{1, 1}}
	b := Rect{Min: Point{1, 1}, Max: Point{2, 2}}
	assert.True(t, a.intersects(b), "touching edges must count as intersecting")
	assert.True(t, b.intersects(a))

	c := Rect{Min: Point{1.001, 1.001}, Max: Point{2, 2}}
	assert.False(t, a.intersects(c))
}

func TestRectExpand(t *testing.T) {
	r := PointRect(0, 0)
	r.expand(PointRect(5, -3))
	assert.Equal(t, Rect{Min: Point{0, -3}, Max: Point{5, 0}}, r)
}

func TestRectArea(t *testing.T) {
	assert.Equal(t, float32(0), PointRect(1, 2).area())
	r := Rect{Min: Point{0, 0}, Max: Point{2, 3}}
	assert.Equal(t, float32(6), r.area())
}

func TestRectLargestAxisTiesGoToX(t *testing.T) {
	square := Rect{Min: Point{0, 0}, Max: Point{3, 3}}
	assert.Equal(t, axisX, square.largestAxis())

	tall := Rect{Min: Point{0, 0}, Max: Point{1, 3}}
	assert.Equal(t, axisY, tall.largestAxis())

	wide := Rect{Min: Point{0, 0}, Max: Point{3, 1}}
	assert.Equal(t, axisX, wide.largestAxis())
}

func TestRectOnEdge(t *testing.T) {
	outer := Rect{Min: Point{0, 0}, Max: Point{10, 10}}

	touching := Rect{Min: Point{0, 2}, Max: Point{1, 3}}
	assert.True(t, outer.onEdge(touching))

	interior := Rect{Min: Point{2, 2}, Max: Point{3, 3}}
	assert.False(t, outer.onEdge(interior))
}

func TestRectOnEdgeNaNForcesRecompute(t *testing.T) {
	outer := Rect{Min: Point{0, 0}, Max: Point{10, 10}}
	nan := float32(math.NaN())

	withNaNMin := Rect{Min: Point{nan, 2}, Max: Point{3, 3}}
	assert.True(t, outer.onEdge(withNaNMin), "a NaN edge must force a conservative recompute")

	withNaNMax := Rect{Min: Point{2, 2}, Max: Point{nan, 3}}
	assert.True(t, outer.onEdge(withNaNMax))
}

func TestRectBoxDist(t *testing.T) {
	origin := PointRect(0, 0)

	assert.Equal(t, float32(0), origin.BoxDist(PointRect(0, 0)))
	assert.Equal(t, float32(9), origin.BoxDist(PointRect(3, 0)))
	assert.Equal(t, float32(16), origin.BoxDist(PointRect(0, 4)))
	assert.Equal(t, float32(100), origin.BoxDist(PointRect(6, 8)))
}

func TestRectBoxDistOverlapIsNegativeSquared(t *testing.T) {
	a := Rect{Min: Point{0, 0}, Max: Point{10, 10}}
	b := Rect{Min: Point{4, 4}, Max: Point{6, 6}}
	// b is nested inside a: dx = max(0,4) - min(10,6) = 4 - 6 = -2, and
	// box_dist does not clamp dx/dy to zero before squaring.
	got := a.BoxDist(b)
	assert.Equal(t, float32(-2)*float32(-2)+float32(-2)*float32(-2), got)
}

func TestRectUnionedArea(t *testing.T) {
	a := Rect{Min: Point{0, 0}, Max: Point{2, 2}}
	b := Rect{Min: Point{1, 1}, Max: Point{4, 4}}
	assert.Equal(t, float32(16), a.unionedArea(b))
}
