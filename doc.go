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

// Package ease implements one-dimensional easing functions.
//
// An easing function maps a normalised progress value x in [0, 1] to an
// output value which is used to shape an interpolation curve.  The outputs
// are not necessarily confined to [0, 1]: elastic and wobbling curves
// overshoot, and the Catmull-Rom spline is only pinned at x=0 and x=1.
//
// The following functions are provided:
//
//   - [Linear], [Squared], [InverseSquared], [Cubed]: simple polynomials
//   - [Smoothstep], [Smootherstep], [SmoothestStep]: polynomials with
//     vanishing derivatives at both ends of the domain
//   - [Sin]: a quarter period of the sine function
//   - [CatmullRom]: a cubic spline segment through four control points
//   - [ElasticIn], [ElasticOut]: decaying oscillations
//   - [Wobble]: oscillation around the identity
//   - [Gaussian]: a curve derived from the normal density
//
// All functions are pure.  Special floating point values are propagated
// rather than reported as errors.
//
// Functions with parameters are also available as small structs with an
// At method, and all functions are listed by name in a catalog, see
// [Lookup] and [Names].  The sibling package seehuhn.de/go/ease/sample
// evaluates functions on the grid x_i = i/n.
package ease
