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
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Param describes a named real-valued parameter of an easing function.
type Param struct {
	Name    string
	Default float64
}

// Curve is a catalog entry for an easing function.
type Curve struct {
	// Name is the name used to look up the function.
	Name string

	// Title is a human readable description.
	Title string

	// Params lists the parameters in the order the function expects them.
	Params []Param

	bind func(args []float64) Func
}

// Func returns the easing function with its parameters bound to the values
// in args.  Parameters missing from args take their default values.
// If args names a parameter the function does not have, a
// [*ParameterError] is returned.
func (c *Curve) Func(args map[string]float64) (Func, error) {
	for name := range args {
		if c.param(name) < 0 {
			return nil, &ParameterError{Curve: c.Name, Param: name}
		}
	}

	vals := make([]float64, len(c.Params))
	for i, p := range c.Params {
		vals[i] = p.Default
		if v, ok := args[p.Name]; ok {
			vals[i] = v
		}
	}
	return c.bind(vals), nil
}

func (c *Curve) param(name string) int {
	for i, p := range c.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func fixed(f Func) func([]float64) Func {
	return func([]float64) Func { return f }
}

var catalog = map[string]*Curve{}

func register(c *Curve) {
	catalog[strings.ToLower(c.Name)] = c
}

func init() {
	register(&Curve{Name: "linear", Title: "Linear Interpolation", bind: fixed(Linear)})
	register(&Curve{Name: "smoothstep", Title: "Smoothstep", bind: fixed(Smoothstep)})
	register(&Curve{Name: "smootherstep", Title: "Smootherstep", bind: fixed(Smootherstep)})
	register(&Curve{Name: "smoothestStep", Title: "Smoothest Step", bind: fixed(SmoothestStep)})
	register(&Curve{Name: "squared", Title: "Squared", bind: fixed(Squared)})
	register(&Curve{Name: "inverseSquared", Title: "Inverse Squared", bind: fixed(InverseSquared)})
	register(&Curve{Name: "cubed", Title: "Cubed", bind: fixed(Cubed)})
	register(&Curve{Name: "sin", Title: "Sin", bind: fixed(Sin)})
	register(&Curve{
		Name:  "catmullRom",
		Title: "Catmull-Rom",
		Params: []Param{
			{Name: "p0", Default: DefaultCatmullRom.P0},
			{Name: "p1", Default: DefaultCatmullRom.P1},
			{Name: "p2", Default: DefaultCatmullRom.P2},
			{Name: "p3", Default: DefaultCatmullRom.P3},
		},
		bind: func(a []float64) Func {
			return CatmullRomSpline{P0: a[0], P1: a[1], P2: a[2], P3: a[3]}.Func()
		},
	})
	register(&Curve{
		Name:   "elasticIn",
		Title:  "Elastic In",
		Params: []Param{{Name: "p", Default: DefaultPeriod}},
		bind: func(a []float64) Func {
			return Elastic{Period: a[0]}.Func()
		},
	})
	register(&Curve{
		Name:   "elasticOut",
		Title:  "Elastic Out",
		Params: []Param{{Name: "p", Default: DefaultPeriod}},
		bind: func(a []float64) Func {
			return Elastic{Period: a[0], Out: true}.Func()
		},
	})
	register(&Curve{
		Name:  "wobble",
		Title: "Wobble",
		Params: []Param{
			{Name: "count", Default: 30},
			{Name: "height", Default: 0.25},
		},
		bind: func(a []float64) Func {
			return WobbleCurve{Count: a[0], Height: a[1]}.Func()
		},
	})
	register(&Curve{
		Name:   "gaussian",
		Title:  "Gaussian",
		Params: []Param{{Name: "sigma", Default: 0.15}},
		bind: func(a []float64) Func {
			return GaussianCurve{Sigma: a[0]}.Func()
		},
	})
}

// Lookup returns the catalog entry for the easing function with the given
// name.  Names are matched case-insensitively.
func Lookup(name string) (*Curve, error) {
	c, ok := catalog[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownCurveError{Name: name}
	}
	return c, nil
}

// Names returns the names of all easing functions in the catalog,
// in sorted order.
func Names() []string {
	curves := maps.Values(catalog)
	names := make([]string, len(curves))
	for i, c := range curves {
		names[i] = c.Name
	}
	slices.Sort(names)
	return names
}

// ParseArgs parses a comma separated list of name=value pairs,
// for example "count=30,height=0.25".
func ParseArgs(s string) (map[string]float64, error) {
	args := make(map[string]float64)
	if strings.TrimSpace(s) == "" {
		return args, nil
	}
	for _, item := range strings.Split(s, ",") {
		name, val, ok := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed argument %q, expected name=value", item)
		}
		if _, dup := args[name]; dup {
			return nil, fmt.Errorf("duplicate argument %q", name)
		}
		x, err := cast.ToFloat64E(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		args[name] = x
	}
	return args, nil
}
