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

package playground

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/ease"
	"seehuhn.de/go/ease/sample"
)

func TestDefault(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Runs) != 15 {
		t.Errorf("got %d runs, want 15", len(b.Runs))
	}

	res, err := b.Eval()
	if err != nil {
		t.Fatal(err)
	}

	var labels []string
	for _, r := range res {
		labels = append(labels, r.Label)
		if len(r.X) != sample.DefaultN || len(r.Y) != sample.DefaultN {
			t.Errorf("%s: got %d/%d samples", r.Label, len(r.X), len(r.Y))
		}
	}
	want := []string{
		"linear", "smoothstep", "smootherstep", "smoothestStep", "squared",
		"inverseSquared", "cubed", "sin",
		"catmullRom(p0=-15,p1=0,p2=1,p3=7.5)",
		"elasticIn(p=0.2)", "elasticOut(p=0.2)",
		"wobble(count=30,height=0.25)",
		"gaussian(sigma=0.05)", "gaussian(sigma=0.15)", "gaussian(sigma=0.25)",
	}
	if d := cmp.Diff(want, labels); d != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", d)
	}

	if res[0].Title != "Linear Interpolation" || res[1].Title != "Smoothstep" {
		t.Errorf("wrong titles %q, %q", res[0].Title, res[1].Title)
	}

	wobble := res[11]
	if d := cmp.Diff(sample.Sample(100, func(x float64) float64 {
		return ease.Wobble(x, 30, 0.25)
	}), wobble.Y); d != "" {
		t.Errorf("wobble samples mismatch (-want +got):\n%s", d)
	}
	if wobble.Y[0] != 0 {
		t.Errorf("wobble starts at %g", wobble.Y[0])
	}
}

func TestRead(t *testing.T) {
	doc := `
runs:
  - name: gaussian
    n: 25
    args: {sigma: 0.05}
  - name: SmoothStep
    n: 50
`
	b, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	res, err := b.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || len(res[0].Y) != 25 || len(res[1].Y) != 50 {
		t.Fatalf("unexpected result shape")
	}
	if d := cmp.Diff(sample.Sample(50, ease.Smoothstep), res[1].Y); d != "" {
		t.Errorf("smoothstep mismatch (-want +got):\n%s", d)
	}
}

func TestReadErrors(t *testing.T) {
	type testCase struct {
		name    string
		doc     string
		unknown bool
	}
	testCases := []testCase{
		{"empty", "", false},
		{"syntax", "runs: [", false},
		{"field", "runs:\n  - name: linear\n    steps: 4\n", false},
		{"negative n", "runs:\n  - name: linear\n    n: -3\n", false},
		{"curve", "runs:\n  - name: bounce\n", true},
		{"param", "runs:\n  - name: wobble\n    args: {width: 1}\n", true},
	}
	for _, tc := range testCases {
		_, err := Read(strings.NewReader(tc.doc))
		if err == nil {
			t.Errorf("%s: no error", tc.name)
			continue
		}
		if errors.Is(err, ease.ErrUnknown) != tc.unknown {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestEvalTitles(t *testing.T) {
	b := &Book{Runs: []*Run{
		{Name: "cubed", N: 4},
		{Name: "cubed", Title: "Third Power", N: 4},
	}}
	res, err := b.Eval()
	if err != nil {
		t.Fatal(err)
	}
	c, err := ease.Lookup("cubed")
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Title != c.Title {
		t.Errorf("got title %q, want %q", res[0].Title, c.Title)
	}
	if res[1].Title != "Third Power" {
		t.Errorf("got title %q, want %q", res[1].Title, "Third Power")
	}

	b.Runs = append(b.Runs, &Run{Name: "bounce", N: 4})
	res, err = b.Eval()
	if !errors.Is(err, ease.ErrUnknown) {
		t.Errorf("got error %v, want ErrUnknown", err)
	}
	if res != nil {
		t.Errorf("got %d results on error", len(res))
	}
}
