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

import (
	"seehuhn.de/go/ease"
)

// Stitch represents a piecewise defined function.  The domain is divided
// into k subdomains, and a different function is used on each of them.
// The PDF specification refers to this as a "stitching function".
type Stitch struct {
	// XMin and XMax define the overall input range.
	XMin, XMax float64

	// Functions is the list of the k functions to be combined.
	Functions []ease.Func

	// Bounds defines the boundaries between subdomains.
	// It must have k-1 elements, in increasing order, within the domain.
	// The first function applies to the range [XMin, Bounds[0]),
	// the second to [Bounds[0], Bounds[1]), ..., the last to
	// [Bounds[k-2], XMax].
	Bounds []float64

	// Encode maps each subdomain to the corresponding function's input
	// range as [min0, max0, min1, max1, ...].  If this is nil, every
	// subdomain is mapped to [0, 1].
	Encode []float64
}

// At evaluates the function at x.
func (f *Stitch) At(x float64) float64 {
	k := len(f.Functions)
	if k == 0 {
		return 0
	}

	x = clip(x, f.XMin, f.XMax)
	idx, a, b := f.findSubdomain(x)

	encMin, encMax := 0.0, 1.0
	if len(f.Encode) >= 2*k {
		encMin, encMax = f.Encode[2*idx], f.Encode[2*idx+1]
	}
	return f.Functions[idx](interpolate(x, a, b, encMin, encMax))
}

// findSubdomain determines which subdomain the input x belongs to and returns
// the subdomain index together with the subdomain boundaries.
//
// Subdomains are half-open intervals [a, b), except for the last one
// which is closed.  If XMin equals Bounds[0], the first subdomain
// degenerates to the single point XMin, and the second one is open on the
// left.
func (f *Stitch) findSubdomain(x float64) (int, float64, float64) {
	k := len(f.Functions)
	if len(f.Bounds) == 0 || k == 1 {
		return 0, f.XMin, f.XMax
	}

	if x == f.XMin && f.XMin == f.Bounds[0] {
		return 0, f.XMin, f.Bounds[0]
	}
	if x < f.Bounds[0] {
		return 0, f.XMin, f.Bounds[0]
	}

	last := min(len(f.Bounds), k-1)
	for i := 1; i < last; i++ {
		if x < f.Bounds[i] {
			return i, f.Bounds[i-1], f.Bounds[i]
		}
	}
	return last, f.Bounds[last-1], f.XMax
}

// Validate checks whether the function is properly configured.
func (f *Stitch) Validate() error {
	if !isRange(f.XMin, f.XMax) {
		return newInvalidFunctionError("stitch", "XMin/XMax", "invalid domain [%g,%g]",
			f.XMin, f.XMax)
	}

	k := len(f.Functions)
	if k == 0 {
		return newInvalidFunctionError("stitch", "Functions", "at least one function must be specified")
	}
	for i, fn := range f.Functions {
		if fn == nil {
			return newInvalidFunctionError("stitch", "Functions", "function %d is nil", i)
		}
	}

	if len(f.Bounds) != k-1 {
		return newInvalidFunctionError("stitch", "Bounds", "must have k-1 (%d) elements, got %d",
			k-1, len(f.Bounds))
	}
	for i, bound := range f.Bounds {
		if bound < f.XMin || bound > f.XMax {
			return newInvalidFunctionError("stitch", "Bounds",
				"Bounds[%d] = %g must be within domain [%g, %g]", i, bound, f.XMin, f.XMax)
		}
		if i > 0 && bound <= f.Bounds[i-1] {
			return newInvalidFunctionError("stitch", "Bounds",
				"must be in increasing order: Bounds[%d] = %g, Bounds[%d] = %g",
				i-1, f.Bounds[i-1], i, bound)
		}
	}

	if f.Encode != nil && len(f.Encode) != 2*k {
		return newInvalidFunctionError("stitch", "Encode", "must have 2*k (%d) elements, got %d",
			2*k, len(f.Encode))
	}
	for _, e := range f.Encode {
		if !isFinite(e) {
			return newInvalidFunctionError("stitch", "Encode", "values must be finite, got %g", e)
		}
	}

	return nil
}
