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

// DefaultPeriod is the oscillation period used by the elastic curves
// when no other value is given.
const DefaultPeriod = 0.2

// ElasticIn computes 2^(10(x-1))·sin((x-p/4)·τ/p) + 1.
//
// The period p must be non-zero, otherwise the result is NaN.
func ElasticIn(x, p float64) float64 {
	return math.Pow(2, 10*(x-1))*math.Sin((x-p/4)*Tau/p) + 1
}

// ElasticOut computes 2^(-10x)·sin((x-p/4)·τ/p) + 1.
// The curve starts at 0, overshoots 1 and then settles at 1.
//
// The period p must be non-zero, otherwise the result is NaN.
func ElasticOut(x, p float64) float64 {
	return math.Pow(2, -10*x)*math.Sin((x-p/4)*Tau/p) + 1
}

// Elastic is an elastic easing curve with a fixed period.
type Elastic struct {
	// Period is the length of one oscillation.
	Period float64

	// Out selects ElasticOut instead of ElasticIn.
	Out bool
}

// At evaluates the curve at x.
func (e Elastic) At(x float64) float64 {
	if e.Out {
		return ElasticOut(x, e.Period)
	}
	return ElasticIn(x, e.Period)
}

// Func returns the curve as an easing function.
func (e Elastic) Func() Func {
	return e.At
}
