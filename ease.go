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

// Tau is the ratio of a circle's circumference to its radius.
const Tau = 2 * math.Pi

// Func is an easing function.
type Func func(x float64) float64

// Linear returns x unchanged.
func Linear(x float64) float64 {
	return x
}

// Smoothstep computes x²(3-2x).  The first derivative vanishes at x=0 and
// x=1.
func Smoothstep(x float64) float64 {
	return x * x * (3 - 2*x)
}

// Smootherstep computes x³(x(6x-15)+10).  The first and second
// derivatives vanish at x=0 and x=1.
func Smootherstep(x float64) float64 {
	return x * x * x * (x*(6*x-15) + 10)
}

// SmoothestStep computes -20x⁷ + 70x⁶ - 84x⁵ + 35x⁴.
// This is the next polynomial in the smoothstep family, with vanishing
// derivatives up to order three at both ends.
func SmoothestStep(x float64) float64 {
	return -20*math.Pow(x, 7) + 70*math.Pow(x, 6) - 84*math.Pow(x, 5) + 35*math.Pow(x, 4)
}

// Squared computes x².
func Squared(x float64) float64 {
	return x * x
}

// InverseSquared computes 1 - (1-x)².
func InverseSquared(x float64) float64 {
	return 1 - (1-x)*(1-x)
}

// Cubed computes x³.
func Cubed(x float64) float64 {
	return x * x * x
}

// Sin computes sin(x·τ/4), a quarter period of the sine function
// which rises from 0 at x=0 to 1 at x=1.
func Sin(x float64) float64 {
	return math.Sin(x * Tau / 4)
}
