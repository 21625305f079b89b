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
	"math"

	"seehuhn.de/go/ease"
	"seehuhn.de/go/ease/sample"
)

// Table is a sampled function.  The samples are taken at equally spaced
// points from XMin to XMax, both end points included, and the function
// value between the samples is found by interpolation.
type Table struct {
	// XMin is the input value of the first sample.
	XMin float64

	// XMax is the input value of the last sample.
	// This must be greater than or equal to XMin.
	XMax float64

	// Samples holds the function values.
	Samples []float64

	// Order is the interpolation order: 1 for linear interpolation,
	// 3 for a cubic Catmull-Rom spline through the samples.  At the ends
	// of the table, the spline uses linearly extrapolated control points.
	Order int
}

// Tabulate samples f on the n-point grid of package sample and returns the
// resulting table.  The table covers the input range [0, (n-1)/n].
func Tabulate(f ease.Func, n, order int) *Table {
	t := &Table{
		Samples: sample.Sample(n, f),
		Order:   order,
	}
	if n > 1 {
		t.XMax = float64(n-1) / float64(n)
	}
	return t
}

// At evaluates the table at x.
// Inputs outside [XMin, XMax] are clipped.  A table without samples
// evaluates to 0.
func (t *Table) At(x float64) float64 {
	k := len(t.Samples)
	switch k {
	case 0:
		return 0
	case 1:
		return t.Samples[0]
	}

	x = clip(x, t.XMin, t.XMax)
	pos := interpolate(x, t.XMin, t.XMax, 0, float64(k-1))

	i := int(math.Floor(pos))
	if i < 0 {
		return t.Samples[0]
	} else if i >= k-1 {
		return t.Samples[k-1]
	}
	frac := pos - float64(i)

	if t.Order == 3 {
		return ease.CatmullRom(frac, t.sample(i-1), t.Samples[i], t.Samples[i+1], t.sample(i+2))
	}
	return t.Samples[i]*(1-frac) + t.Samples[i+1]*frac
}

// sample returns the sample at index i.  Indices one step outside the
// table are extrapolated linearly from the two nearest samples.
func (t *Table) sample(i int) float64 {
	k := len(t.Samples)
	switch {
	case i < 0:
		return 2*t.Samples[0] - t.Samples[1]
	case i >= k:
		return 2*t.Samples[k-1] - t.Samples[k-2]
	}
	return t.Samples[i]
}

// Validate checks whether the table is properly configured.
func (t *Table) Validate() error {
	if !isRange(t.XMin, t.XMax) {
		return newInvalidFunctionError("table", "XMin/XMax", "invalid domain [%g,%g]",
			t.XMin, t.XMax)
	}
	if len(t.Samples) == 0 {
		return newInvalidFunctionError("table", "Samples", "no samples")
	}
	if len(t.Samples) > 1 && t.XMin == t.XMax {
		return newInvalidFunctionError("table", "XMin/XMax",
			"%d samples need a non-empty domain", len(t.Samples))
	}
	if t.Order != 1 && t.Order != 3 {
		return newInvalidFunctionError("table", "Order", "must be 1 or 3, got %d", t.Order)
	}
	return nil
}
