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

// Package playground describes batches of sample runs.
//
// A batch is a YAML document listing the easing functions to sample,
// together with their parameters and the number of samples:
//
//	runs:
//	  - name: wobble
//	    n: 50
//	    args: {count: 30, height: 0.25}
//
// The batch returned by [Default] samples every function of the catalog
// in package ease, the Gaussian curve for three different values of sigma.
package playground

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/ease"
	"seehuhn.de/go/ease/sample"
)

//go:embed playground.yaml
var defaultBook []byte

// Book is a batch of sample runs.
type Book struct {
	Runs []*Run `yaml:"runs"`
}

// Run describes one easing function to be sampled.
type Run struct {
	// Name is the catalog name of the easing function.
	Name string `yaml:"name"`

	// Title (optional) is used instead of the catalog title.
	Title string `yaml:"title,omitempty"`

	// N is the number of samples.  If this is zero, [sample.DefaultN]
	// is used.
	N int `yaml:"n,omitempty"`

	// Args holds parameter values for the easing function.
	Args map[string]float64 `yaml:"args,omitempty"`
}

// Result holds the samples of one run.
type Result struct {
	Label string
	Title string
	X     []float64
	Y     []float64
}

// Default returns the built-in batch.
func Default() (*Book, error) {
	return Read(bytes.NewReader(defaultBook))
}

// Read decodes a batch from r and checks that all function names and
// parameters are known.
func Read(r io.Reader) (*Book, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	b := &Book{}
	err := dec.Decode(b)
	if errors.Is(err, io.EOF) {
		return nil, errors.New("playground: empty document")
	} else if err != nil {
		return nil, fmt.Errorf("playground: %w", err)
	}

	for i, run := range b.Runs {
		if run.N < 0 {
			return nil, fmt.Errorf("playground: run %d: invalid number of samples %d", i, run.N)
		}
		if _, err := run.Func(); err != nil {
			return nil, fmt.Errorf("playground: run %d: %w", i, err)
		}
	}
	return b, nil
}

// Func returns the easing function of the run, with the parameters bound.
func (r *Run) Func() (ease.Func, error) {
	c, err := ease.Lookup(r.Name)
	if err != nil {
		return nil, err
	}
	return c.Func(r.Args)
}

// Samples returns the number of samples of the run.
func (r *Run) Samples() int {
	if r.N == 0 {
		return sample.DefaultN
	}
	return r.N
}

// Label returns a short description of the run, for example
// "gaussian(sigma=0.05)".
func (r *Run) Label() string {
	if len(r.Args) == 0 {
		return r.Name
	}
	keys := maps.Keys(r.Args)
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + strconv.FormatFloat(r.Args[k], 'g', -1, 64)
	}
	return r.Name + "(" + strings.Join(parts, ",") + ")"
}

// Eval samples all runs of the batch, in order.
func (b *Book) Eval() ([]*Result, error) {
	res := make([]*Result, 0, len(b.Runs))
	for i, run := range b.Runs {
		f, err := run.Func()
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}

		title := run.Title
		if title == "" {
			c, err := ease.Lookup(run.Name)
			if err != nil {
				return nil, fmt.Errorf("run %d: %w", i, err)
			}
			title = c.Title
		}

		n := run.Samples()
		res = append(res, &Result{
			Label: run.Label(),
			Title: title,
			X:     sample.Grid(n),
			Y:     sample.Sample(n, f),
		})
	}
	return res, nil
}
