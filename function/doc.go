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

// Package function implements one-dimensional functions which are built
// from simpler parts: tables of samples, power laws and piecewise
// combinations.
//
// The types in this package are modelled on the function types of the PDF
// format, restricted to a single input and a single output:
//
//   - [Table]: sampled values with linear or cubic interpolation
//     (PDF Type 0)
//   - [Power]: power interpolation y = Y0 + x^N × (Y1 - Y0) (PDF Type 2)
//   - [Stitch]: functions combined across subdomains (PDF Type 3)
//
// All types have an At method, so that a method value like t.At can be
// used wherever an [ease.Func] is expected.  Inputs outside the domain
// of a function are clipped to the domain.
package function
