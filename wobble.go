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

package ease

import "math"

// Wobble adds an oscillation with count half-waves to the identity.  The
// amplitude of the oscillation follows sin(τ/2·x)·height, so that the
// curve is pinned at both ends and deviates by at most height from the
// identity in between.
func Wobble(x, count, height float64) float64 {
	wobbleHeight := math.Sin(Tau/2*x) * height
	wobbleOffset := math.Sin(Tau/2*count*x) * wobbleHeight
	return x + wobbleOffset
}

// WobbleCurve holds the parameters of a [Wobble] curve.
type WobbleCurve struct {
	Count  float64
	Height float64
}

// At evaluates the curve at x.
func (w WobbleCurve) At(x float64) float64 {
	return Wobble(x, w.Count, w.Height)
}

// Func returns the curve as an easing function.
func (w WobbleCurve) Func() Func {
	return w.At
}
