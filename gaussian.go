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

// phi is the density of the centred normal distribution with standard
// deviation sigma.
func phi(x, sigma float64) float64 {
	s2 := sigma * sigma
	return math.Exp(-x*x/(2*s2)) / math.Sqrt(Tau*s2)
}

// Gaussian computes (φ(0) - φ(x)) / φ(0), where φ is the density of the
// normal distribution with mean 0 and standard deviation sigma.
//
// The result is 0 at x=0 and approaches 1 once |x| is large compared to
// sigma.  For sigma=0 the result is NaN.
func Gaussian(x, sigma float64) float64 {
	max := phi(0, sigma)
	return (max - phi(x, sigma)) / max
}

// GaussianCurve holds the parameter of a [Gaussian] curve.
type GaussianCurve struct {
	Sigma float64
}

// At evaluates the curve at x.
func (g GaussianCurve) At(x float64) float64 {
	return Gaussian(x, g.Sigma)
}

// Func returns the curve as an easing function.
func (g GaussianCurve) Func() Func {
	return g.At
}
