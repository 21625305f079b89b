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

// Package sample evaluates one-dimensional functions on an evenly spaced
// grid.
//
// The grid for n samples consists of the points x_i = i/n for
// i = 0, ..., n-1.  This covers the half-open interval [0, 1); the end
// point x = 1 is not included.  For n <= 0 the grid is empty.
package sample

import (
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/vec"
)

// DefaultN is the number of samples used when no other value is given.
const DefaultN = 100

// Grid returns the n points x_i = i/n, for i = 0, ..., n-1.
func Grid(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(i) / float64(n)
	}
	return res
}

// Sample applies f to each point of the n-point grid, in order, and returns
// the results.  The returned slice has length n, or length 0 if n <= 0.
func Sample(n int, f func(float64) float64) []float64 {
	res := Grid(n)
	for i, x := range res {
		res[i] = f(x)
	}
	return res
}

// All returns an iterator over the pairs (i, f(x_i)).  The function f is
// only called when the iterator is consumed.
func All(n int, f func(float64) float64) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < n; i++ {
			if !yield(i, f(float64(i)/float64(n))) {
				return
			}
		}
	}
}

// Points returns the samples as points (x_i, f(x_i)).
func Points(n int, f func(float64) float64) []vec.Vec2 {
	if n <= 0 {
		return []vec.Vec2{}
	}
	res := make([]vec.Vec2, n)
	for i := range res {
		x := float64(i) / float64(n)
		res[i] = vec.Vec2{X: x, Y: f(x)}
	}
	return res
}

// Parallel is like [Sample], but evaluates f concurrently using up to
// workers goroutines.  If workers <= 0, runtime.GOMAXPROCS(0) is used.
// The function f must be safe for concurrent use.
//
// If ctx is cancelled before all values are computed, the context's error
// is returned.
func Parallel(ctx context.Context, n int, f func(float64) float64, workers int) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	res := Grid(n)
	if len(res) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return res, nil
	}

	chunk := (n + 4*workers - 1) / (4 * workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				res[i] = f(res[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
