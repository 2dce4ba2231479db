package segment_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/seg2d/segment"
	"github.com/grailbio/testutil/expect"
)

func randSeg(r *rand.Rand, bound int) segment.Seg {
	c := func() int16 { return int16(r.Intn(2*bound+1) - bound) }
	return segment.MakeSeg(c(), c(), c(), c())
}

func TestIntersectsScenarios(t *testing.T) {
	tests := []struct {
		name string
		q, b segment.Seg
		want bool
	}{
		{"crossing X", segment.MakeSeg(0, 0, 10, 10), segment.MakeSeg(0, 10, 10, 0), true},
		{"parallel miss", segment.MakeSeg(0, 0, 10, 0), segment.MakeSeg(0, 1, 10, 1), false},
		{"collinear overlap", segment.MakeSeg(0, 0, 10, 0), segment.MakeSeg(5, 0, 15, 0), false},
		{"shared endpoint", segment.MakeSeg(0, 0, 10, 0), segment.MakeSeg(10, 0, 10, 10), false},
		{"T-junction", segment.MakeSeg(0, 0, 10, 0), segment.MakeSeg(5, 0, 5, 10), false},
	}
	for _, test := range tests {
		expect.EQ(t, segment.Intersects(test.q, test.b), test.want, test.name)
	}
}

func TestIntersectsSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for iter := 0; iter < 20000; iter++ {
		// Small coordinates so a meaningful fraction of pairs intersect.
		s1 := randSeg(r, 20)
		s2 := randSeg(r, 20)
		got := segment.Intersects(s1, s2)
		if got != segment.Intersects(s2, s1) {
			t.Fatalf("Intersects(%v, %v) not symmetric", s1, s2)
		}
		swapped1 := segment.Seg{P1: s1.P2, P2: s1.P1}
		swapped2 := segment.Seg{P1: s2.P2, P2: s2.P1}
		if got != segment.Intersects(swapped1, s2) || got != segment.Intersects(s1, swapped2) {
			t.Fatalf("Intersects(%v, %v) sensitive to endpoint order", s1, s2)
		}
	}
}

func TestIntersectsDisjointBoxes(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for iter := 0; iter < 10000; iter++ {
		s1 := randSeg(r, 1000)
		s2 := randSeg(r, 1000)
		// Shift s2 strictly past s1's bounding box.
		s2.P1.X += 3000
		s2.P2.X += 3000
		if segment.Intersects(s1, s2) {
			t.Fatalf("bbox-disjoint pair reported intersecting: %v %v", s1, s2)
		}
	}
}

func TestIntersectsDegenerate(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for iter := 0; iter < 10000; iter++ {
		q := randSeg(r, 20)
		p := randSeg(r, 20).P1
		b := segment.Seg{P1: p, P2: p}
		expect.True(t, b.Degenerate())
		if segment.Intersects(q, b) {
			t.Fatalf("degenerate barrier %v reported intersecting %v", b, q)
		}
		if segment.Intersects(b, q) {
			t.Fatalf("degenerate query %v reported intersecting %v", b, q)
		}
	}
}

func TestBatchIntersect(t *testing.T) {
	barriers := []segment.Seg{
		segment.MakeSeg(0, 5, 10, 5),
		segment.MakeSeg(5, 0, 5, 10),
	}
	queries := []segment.Seg{
		segment.MakeSeg(0, 0, 10, 10),
		segment.MakeSeg(100, 100, 200, 200),
		segment.MakeSeg(4, 6, 6, 4),
	}
	results := make([]byte, len(queries))
	segment.BatchIntersect(barriers, queries, results)
	expect.EQ(t, results, []byte{1, 0, 1})

	// Empty barrier set: everything misses.
	segment.BatchIntersect(nil, queries, results)
	expect.EQ(t, results, []byte{0, 0, 0})
	expect.EQ(t, segment.CountMisses(nil, queries), 3)
	expect.EQ(t, segment.CountMisses(barriers, queries), 1)
}
