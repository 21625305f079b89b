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

import (
	"errors"
	"fmt"
)

// ErrUnknown is matched by errors which report an unknown easing function
// or an unknown parameter name.
var ErrUnknown = errors.New("unknown name")

// UnknownCurveError is returned by [Lookup] when no easing function of
// the given name exists.
type UnknownCurveError struct {
	Name string
}

func (e *UnknownCurveError) Error() string {
	return fmt.Sprintf("unknown easing function %q", e.Name)
}

// Is reports whether target is [ErrUnknown] or an *UnknownCurveError.
func (e *UnknownCurveError) Is(target error) bool {
	if target == ErrUnknown {
		return true
	}
	_, ok := target.(*UnknownCurveError)
	return ok
}

// ParameterError is returned when arguments for an easing function name a
// parameter which the function does not have.
type ParameterError struct {
	Curve string
	Param string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("easing function %q has no parameter %q", e.Curve, e.Param)
}

// Is reports whether target is [ErrUnknown] or a *ParameterError.
func (e *ParameterError) Is(target error) bool {
	if target == ErrUnknown {
		return true
	}
	_, ok := target.(*ParameterError)
	return ok
}
