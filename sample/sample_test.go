// seehuhn.de/go/ease - easing functions and interpolation curves
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sample

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestGrid(t *testing.T) {
	type testCase struct {
		n    int
		want []float64
	}
	testCases := []testCase{
		{-1, []float64{}},
		{0, []float64{}},
		{1, []float64{0}},
		{4, []float64{0, 0.25, 0.5, 0.75}},
	}
	for _, tc := range testCases {
		got := Grid(tc.n)
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("Grid(%d) mismatch (-want +got):\n%s", tc.n, d)
		}
	}
}

func TestSampleLength(t *testing.T) {
	for _, n := range []int{0, 1, 25, 50, 100} {
		got := Sample(n, math.Sqrt)
		if len(got) != n {
			t.Errorf("len(Sample(%d)) = %d", n, len(got))
		}
	}
	if got := Sample(-5, math.Sqrt); got == nil || len(got) != 0 {
		t.Errorf("Sample(-5) = %v, want empty slice", got)
	}
}

func TestSampleLinear(t *testing.T) {
	identity := func(x float64) float64 { return x }
	got := Sample(DefaultN, identity)
	for i, y := range got {
		if y != float64(i)/100 {
			t.Errorf("sample %d = %g, want %g", i, y, float64(i)/100)
		}
	}
}

func TestSampleOrder(t *testing.T) {
	var seen []float64
	Sample(5, func(x float64) float64 {
		seen = append(seen, x)
		return 0
	})
	if d := cmp.Diff([]float64{0, 0.2, 0.4, 0.6, 0.8}, seen); d != "" {
		t.Errorf("evaluation order (-want +got):\n%s", d)
	}
}

func TestAll(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return 2 * x
	}

	seq := All(10, f)
	if calls != 0 {
		t.Fatalf("All evaluated %d values before iteration", calls)
	}

	var got []float64
	for i, y := range seq {
		if i == 3 {
			break
		}
		got = append(got, y)
	}
	if d := cmp.Diff([]float64{0, 0.2, 0.4}, got); d != "" {
		t.Errorf("All mismatch (-want +got):\n%s", d)
	}
	if calls != 4 {
		t.Errorf("f called %d times, want 4", calls)
	}

	var all []float64
	for _, y := range All(10, f) {
		all = append(all, y)
	}
	if d := cmp.Diff(Sample(10, f), all); d != "" {
		t.Errorf("All differs from Sample (-want +got):\n%s", d)
	}

	for range All(0, f) {
		t.Error("All(0) yielded a value")
	}
}

func TestPoints(t *testing.T) {
	got := Points(4, func(x float64) float64 { return x * x })
	want := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 0.25, Y: 0.0625},
		{X: 0.5, Y: 0.25},
		{X: 0.75, Y: 0.5625},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Points mismatch (-want +got):\n%s", d)
	}
	if got := Points(0, math.Sin); len(got) != 0 {
		t.Errorf("Points(0) = %v", got)
	}
}

func TestParallel(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(x) * math.Exp(-x) }
	for _, n := range []int{0, 1, 7, 100, 1000} {
		for _, workers := range []int{-1, 0, 1, 3, 16} {
			got, err := Parallel(context.Background(), n, f, workers)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(Sample(n, f), got); d != "" {
				t.Errorf("n=%d, workers=%d: mismatch (-want +got):\n%s", n, workers, d)
			}
		}
	}
}

func TestParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, n := range []int{0, 100} {
		res, err := Parallel(ctx, n, math.Sqrt, 4)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("n=%d: got error %v, want context.Canceled", n, err)
		}
		if res != nil {
			t.Errorf("n=%d: got %d values together with an error", n, len(res))
		}
	}
}

func BenchmarkSample(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Sample(DefaultN, math.Sin)
	}
}
