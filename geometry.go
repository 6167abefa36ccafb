package rtree

import "math"

// Point is a pair of single-precision coordinates.
type Point struct {
	X, Y float32
}

// Rect is the closed axis-aligned rectangle [Min.X, Max.X] x [Min.Y, Max.Y].
// A "point rect" has Min == Max. Rect is plain data and is freely copied.
type Rect struct {
	Min, Max Point
}

// PointRect returns the degenerate rectangle containing only (x, y).
func PointRect(x, y float32) Rect {
	return Rect{Min: Point{x, y}, Max: Point{x, y}}
}

// Infinite is the sentinel rectangle spanning the full float32 range. It is
// used only as the default search predicate for full scans.
var Infinite = Rect{
	Min: Point{-math.MaxFloat32, -math.MaxFloat32},
	Max: Point{math.MaxFloat32, math.MaxFloat32},
}

// axis identifies which coordinate a split or sort key operates on.
type axis int

const (
	axisX axis = iota
	axisY
)

func (p Point) on(a axis) float32 {
	if a == axisY {
		return p.Y
	}
	return p.X
}

// expand widens r to contain b.
func (r *Rect) expand(b Rect) {
	if b.Min.X < r.Min.X {
		r.Min.X = b.Min.X
	}
	if b.Max.X > r.Max.X {
		r.Max.X = b.Max.X
	}
	if b.Min.Y < r.Min.Y {
		r.Min.Y = b.Min.Y
	}
	if b.Max.Y > r.Max.Y {
		r.Max.Y = b.Max.Y
	}
}

// area returns (Max.X-Min.X)*(Max.Y-Min.Y). Zero for point rects, never
// negative for a well-formed rect.
func (r Rect) area() float32 {
	return (r.Max.X - r.Min.X) * (r.Max.Y - r.Min.Y)
}

// unionedArea returns the area of the bounding rectangle of r union b,
// without mutating either.
func (r Rect) unionedArea(b Rect) float32 {
	x := max32(r.Max.X, b.Max.X) - min32(r.Min.X, b.Min.X)
	y := max32(r.Max.Y, b.Max.Y) - min32(r.Min.Y, b.Min.Y)
	return x * y
}

// intersects reports whether r and b share at least one point. Touching
// edges count as intersecting (closed-interval test).
func (r Rect) intersects(b Rect) bool {
	if b.Min.X > r.Max.X || b.Max.X < r.Min.X {
		return false
	}
	if b.Min.Y > r.Max.Y || b.Max.Y < r.Min.Y {
		return false
	}
	return true
}

// onEdge assumes b intersects r and reports whether b touches or exceeds any
// side of r. The negated-strict form is deliberate: a NaN comparison makes
// its negated test true, forcing a conservative recompute rather than
// silently keeping a stale rect.
func (r Rect) onEdge(b Rect) bool {
	if !(b.Min.X > r.Min.X) || !(b.Max.X < r.Max.X) {
		return true
	}
	if !(b.Min.Y > r.Min.Y) || !(b.Max.Y < r.Max.Y) {
		return true
	}
	return false
}

// largestAxis returns Y if the rect is taller than it is wide, else X; ties
// go to X.
func (r Rect) largestAxis() axis {
	if r.Max.Y-r.Min.Y > r.Max.X-r.Min.X {
		return axisY
	}
	return axisX
}

// BoxDist returns the squared separation between r and other, treated as
// point-to-rect when one side is degenerate. dx and dy are not clamped to
// zero, so overlapping rectangles yield a non-Euclidean "negative overlap
// squared" value; this is preserved deliberately because Nearby treats the
// result as an opaque ordering key, not a true distance.
func (r Rect) BoxDist(other Rect) float32 {
	dx := max32(r.Min.X, other.Min.X) - min32(r.Max.X, other.Max.X)
	dy := max32(r.Min.Y, other.Min.Y) - min32(r.Max.Y, other.Max.Y)
	return dx*dx + dy*dy
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
