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

// CatmullRom evaluates the Catmull-Rom spline segment between p1 and p2 at
// x, using p0 and p3 as the outer control points.  The curve passes
// through p1 at x=0 and through p2 at x=1.
func CatmullRom(x, p0, p1, p2, p3 float64) float64 {
	return 0.5 * ((2 * p1) +
		(-p0+p2)*x +
		(2*p0-5*p1+4*p2-p3)*x*x +
		(-p0+3*p1-3*p2+p3)*x*x*x)
}

// CatmullRomSpline holds the four control points of a Catmull-Rom segment.
type CatmullRomSpline struct {
	P0, P1, P2, P3 float64
}

// DefaultCatmullRom is a segment from 0 to 1 with strongly pulled outer
// control points, which makes the curve dip below 0 before rising
// steeply towards 1.
var DefaultCatmullRom = CatmullRomSpline{P0: -15, P1: 0, P2: 1, P3: 7.5}

// At evaluates the spline segment at x.
func (s CatmullRomSpline) At(x float64) float64 {
	return CatmullRom(x, s.P0, s.P1, s.P2, s.P3)
}

// Func returns the spline segment as an easing function.
func (s CatmullRomSpline) Func() Func {
	return s.At
}
