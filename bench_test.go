package rtree

import (
	"math/rand"
	"testing"
)

// benchN matches the point count the original benchmark suite used for its
// insert/search comparisons.
const benchN = 1000

func benchPoints(n int) []Point {
	r := rand.New(rand.NewSource(0xdeadbeef))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{
			X: r.Float32()*360 - 180,
			Y: r.Float32()*180 - 90,
		}
	}
	return pts
}

func BenchmarkInsertHeap(b *testing.B) {
	pts := benchPoints(benchN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New[int](NewHeapAllocator[int]())
		for j, p := range pts {
			tr.Insert(PointRect(p.X, p.Y), j)
		}
	}
}

func BenchmarkSearchItemHeap(b *testing.B) {
	pts := benchPoints(benchN)
	tr := New[int](NewHeapAllocator[int]())
	for j, p := range pts {
		tr.Insert(PointRect(p.X, p.Y), j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range pts {
			it := tr.Search(PointRect(p.X, p.Y))
			it.Next()
		}
	}
}

func BenchmarkRemoveAndReinsertHalf(b *testing.B) {
	pts := benchPoints(benchN)

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := New[int](NewHeapAllocator[int]())
		for j, p := range pts {
			tr.Insert(PointRect(p.X, p.Y), j)
		}
		b.StartTimer()

		for j := 0; j < len(pts)/2; j++ {
			idx := j * 2
			Remove(tr, PointRect(pts[idx].X, pts[idx].Y), idx)
		}
		for j := 0; j < len(pts)/2; j++ {
			idx := j * 2
			tr.Insert(PointRect(pts[idx].X, pts[idx].Y), idx)
		}
	}
}

func BenchmarkNearby(b *testing.B) {
	pts := benchPoints(benchN)
	tr := New[int](NewHeapAllocator[int]())
	for j, p := range pts {
		tr.Insert(PointRect(p.X, p.Y), j)
	}
	target := PointRect(0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := tr.Nearby(func(r Rect, _ *int) float32 {
			return r.BoxDist(target)
		})
		for n := 0; n < 10; n++ {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}
