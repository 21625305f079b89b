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

package function

import "math"

// Power represents a power interpolation function of the form
// y = Y0 + x^N × (Y1 - Y0).  The PDF specification refers to this type of
// function as "exponential interpolation".
//
// With XMax=1, Y0=0 and Y1=1, this gives the easing functions
// [ease.Squared] for N=2 and [ease.Cubed] for N=3.
type Power struct {
	// XMin is the minimum value of the input range.  Input values x smaller
	// than XMin are clipped to XMin.  This must be less than or equal to XMax.
	XMin float64

	// XMax is the maximum value of the input range.  Input values x larger
	// than XMax are clipped to XMax.
	XMax float64

	// Y0 is the function value at x = 0.
	Y0 float64

	// Y1 is the function value at x = 1.
	Y1 float64

	// N is the interpolation exponent.
	N float64
}

// At evaluates the function at x.
func (f *Power) At(x float64) float64 {
	x = clip(x, f.XMin, f.XMax)

	var xPowN float64
	switch f.N {
	case 0:
		xPowN = 1
	case 1:
		xPowN = x
	default:
		xPowN = math.Pow(x, f.N)
	}
	return f.Y0 + xPowN*(f.Y1-f.Y0)
}

// Validate checks whether the function is properly configured.
func (f *Power) Validate() error {
	if !isRange(f.XMin, f.XMax) {
		return newInvalidFunctionError("power", "XMin/XMax", "invalid domain [%g,%g]",
			f.XMin, f.XMax)
	}
	if !isFinite(f.Y0) || !isFinite(f.Y1) {
		return newInvalidFunctionError("power", "Y0/Y1", "values must be finite, got %g, %g",
			f.Y0, f.Y1)
	}
	if !isFinite(f.N) {
		return newInvalidFunctionError("power", "N", "must be a finite number, got %g", f.N)
	}
	if f.N != math.Trunc(f.N) && f.XMin < 0 {
		// If N is non-integer, x must be >= 0
		return newInvalidFunctionError("power", "XMin",
			"must be >= 0 when N is non-integer, got %g", f.XMin)
	}
	if f.N < 0 && f.XMin <= 0 && f.XMax >= 0 {
		return newInvalidFunctionError("power", "XMin/XMax", "must not include 0 when N is negative")
	}
	return nil
}
