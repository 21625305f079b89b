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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNames(t *testing.T) {
	want := []string{
		"catmullRom", "cubed", "elasticIn", "elasticOut", "gaussian",
		"inverseSquared", "linear", "sin", "smootherstep", "smoothestStep",
		"smoothstep", "squared", "wobble",
	}
	if d := cmp.Diff(want, Names()); d != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", d)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"wobble", "Wobble", "WOBBLE"} {
		c, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if c.Name != "wobble" {
			t.Errorf("Lookup(%q).Name = %q", name, c.Name)
		}
	}

	_, err := Lookup("bounce")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Lookup(bounce): got %v, want ErrUnknown", err)
	}
	var e *UnknownCurveError
	if !errors.As(err, &e) || e.Name != "bounce" {
		t.Errorf("Lookup(bounce): got %v", err)
	}
}

func TestCurveFunc(t *testing.T) {
	type testCase struct {
		name string
		args map[string]float64
		x    float64
		want float64
	}
	testCases := []testCase{
		{"linear", nil, 0.3, 0.3},
		{"smoothstep", nil, 0.25, Smoothstep(0.25)},
		{"catmullRom", nil, 0.4, CatmullRom(0.4, -15, 0, 1, 7.5)},
		{"catmullRom", map[string]float64{"p0": 0, "p3": 1}, 0.4, CatmullRom(0.4, 0, 0, 1, 1)},
		{"elasticIn", nil, 0.6, ElasticIn(0.6, 0.2)},
		{"elasticOut", map[string]float64{"p": 0.3}, 0.6, ElasticOut(0.6, 0.3)},
		{"wobble", nil, 0.42, Wobble(0.42, 30, 0.25)},
		{"wobble", map[string]float64{"count": 4}, 0.42, Wobble(0.42, 4, 0.25)},
		{"gaussian", map[string]float64{"sigma": 0.05}, 0.1, Gaussian(0.1, 0.05)},
	}
	for _, tc := range testCases {
		c, err := Lookup(tc.name)
		if err != nil {
			t.Fatal(err)
		}
		f, err := c.Func(tc.args)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got := f(tc.x); got != tc.want {
			t.Errorf("%s%v(%g) = %g, want %g", tc.name, tc.args, tc.x, got, tc.want)
		}
	}
}

func TestCurveFuncUnknownParam(t *testing.T) {
	c, err := Lookup("gaussian")
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Func(map[string]float64{"mu": 1})
	var e *ParameterError
	if !errors.As(err, &e) {
		t.Fatalf("got %v, want ParameterError", err)
	}
	if e.Curve != "gaussian" || e.Param != "mu" {
		t.Errorf("wrong error contents: %v", e)
	}
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("ParameterError does not match ErrUnknown")
	}
}

func TestParseArgs(t *testing.T) {
	good := []struct {
		in   string
		want map[string]float64
	}{
		{"", map[string]float64{}},
		{"  ", map[string]float64{}},
		{"sigma=0.05", map[string]float64{"sigma": 0.05}},
		{"count=30, height=0.25", map[string]float64{"count": 30, "height": 0.25}},
		{"p0=-15,p1=0,p2=1,p3=7.5", map[string]float64{"p0": -15, "p1": 0, "p2": 1, "p3": 7.5}},
	}
	for _, tc := range good {
		got, err := ParseArgs(tc.in)
		if err != nil {
			t.Errorf("ParseArgs(%q): %v", tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("ParseArgs(%q) mismatch (-want +got):\n%s", tc.in, d)
		}
	}

	bad := []string{"sigma", "=1", "sigma=abc", "p=1,p=2", "count=30,"}
	for _, in := range bad {
		if _, err := ParseArgs(in); err == nil {
			t.Errorf("ParseArgs(%q) succeeded", in)
		}
	}
}
