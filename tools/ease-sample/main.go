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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"seehuhn.de/go/ease"
	"seehuhn.de/go/ease/function"
	"seehuhn.de/go/ease/internal/float"
	"seehuhn.de/go/ease/playground"
	"seehuhn.de/go/ease/sample"
	"seehuhn.de/go/ease/tools/internal/buildinfo"
	"seehuhn.de/go/ease/tools/internal/profile"
)

var (
	fnArg         = flag.String("fn", "linear", "easing `function` to sample")
	nArg          = flag.Int("n", sample.DefaultN, "number of samples")
	argsArg       = flag.String("args", "", "function parameters as `name=value,...`")
	minArg        = flag.Float64("min", 0, "output value for 0")
	maxArg        = flag.Float64("max", 1, "output value for 1")
	precArg       = flag.Int("prec", 4, "number of decimal `digits`")
	langArg       = flag.String("lang", "", "format numbers for the given `language` tag")
	formatArg     = flag.String("format", "text", "output `format`, text or cbor")
	playgroundArg = flag.Bool("playground", false, "sample all functions of the built-in playground")
	configArg     = flag.String("config", "", "read sample runs from YAML `file`")
	listArg       = flag.Bool("list", false, "list the available functions")
	workersArg    = flag.Int("workers", 1, "number of goroutines used for sampling a single function")
	tableArg      = flag.Int("table", 0, "resample through a lookup table with interpolation `order` 1 or 3")
	tableSizeArg  = flag.Int("table-size", 17, "number of lookup table entries")
	cpuprofile    = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile    = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ease-sample \u2014 sample easing functions on the grid x = i/n\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("ease-sample"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  ease-sample [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ease-sample -fn smoothstep -n 25\n")
		fmt.Fprintf(os.Stderr, "  ease-sample -fn wobble -args count=30,height=0.25\n")
		fmt.Fprintf(os.Stderr, "  ease-sample -playground -format cbor > curves.cbor\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	if *listArg {
		return list(os.Stdout)
	}

	var results []*playground.Result
	switch {
	case *configArg != "":
		fd, err := os.Open(*configArg)
		if err != nil {
			return err
		}
		book, err := playground.Read(fd)
		fd.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", *configArg, err)
		}
		results, err = book.Eval()
		if err != nil {
			return err
		}
	case *playgroundArg:
		book, err := playground.Default()
		if err != nil {
			return err
		}
		results, err = book.Eval()
		if err != nil {
			return err
		}
	default:
		res, err := sampleOne(*fnArg, *argsArg, *nArg, *workersArg, *tableArg, *tableSizeArg)
		if err != nil {
			return err
		}
		results = []*playground.Result{res}
	}

	for _, res := range results {
		for i, y := range res.Y {
			res.Y[i] = (*maxArg-*minArg)*y + *minArg
		}
	}

	switch *formatArg {
	case "text":
		format, err := newFormatter(*langArg, *precArg)
		if err != nil {
			return err
		}
		return writeText(os.Stdout, results, format, isTerminal(os.Stdout))
	case "cbor":
		return writeCBOR(os.Stdout, results, *precArg)
	default:
		return fmt.Errorf("unknown output format %q", *formatArg)
	}
}

// sampleOne samples a single catalog function.  If tableOrder is non-zero,
// the function is first replaced by a lookup table with tableSize entries
// on [0, 1].
func sampleOne(name, argString string, n, workers, tableOrder, tableSize int) (*playground.Result, error) {
	c, err := ease.Lookup(name)
	if err != nil {
		return nil, err
	}
	args, err := ease.ParseArgs(argString)
	if err != nil {
		return nil, err
	}
	f, err := c.Func(args)
	if err != nil {
		return nil, err
	}
	if tableOrder != 0 {
		f, err = tabulate(f, tableSize, tableOrder)
		if err != nil {
			return nil, err
		}
	}

	var ys []float64
	if workers > 1 {
		ys, err = sample.Parallel(context.Background(), n, f, workers)
		if err != nil {
			return nil, err
		}
	} else {
		ys = sample.Sample(n, f)
	}

	r := &playground.Run{Name: c.Name, Args: args}
	return &playground.Result{
		Label: r.Label(),
		Title: c.Title,
		X:     sample.Grid(n),
		Y:     ys,
	}, nil
}

func tabulate(f ease.Func, size, order int) (ease.Func, error) {
	if size < 2 {
		return nil, fmt.Errorf("table needs at least 2 entries, got %d", size)
	}
	t := &function.Table{
		XMax:    1,
		Samples: make([]float64, size),
		Order:   order,
	}
	for i := range t.Samples {
		t.Samples[i] = f(float64(i) / float64(size-1))
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.At, nil
}

func list(w io.Writer) error {
	for _, name := range ease.Names() {
		c, err := ease.Lookup(name)
		if err != nil {
			return err
		}
		var params []string
		for _, p := range c.Params {
			params = append(params, p.Name+"="+float.Format(p.Default, 6))
		}
		_, err = fmt.Fprintf(w, "%-16s %-22s %s\n", c.Name, c.Title, strings.Join(params, ","))
		if err != nil {
			return err
		}
	}
	return nil
}

type formatter func(x float64) string

func newFormatter(lang string, prec int) (formatter, error) {
	if prec < 0 {
		return nil, errors.New("negative precision")
	}
	if lang == "" {
		return func(x float64) string {
			return float.Format(x, prec)
		}, nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, err
	}
	p := message.NewPrinter(tag)
	return func(x float64) string {
		return p.Sprint(number.Decimal(x, number.Scale(prec)))
	}, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// writeText writes the samples as text.  For interactive use, a table with
// index, x and y is shown for every run.  Otherwise only the y values are
// written, one per line, and runs are separated by comment lines.
func writeText(w io.Writer, results []*playground.Result, format formatter, table bool) error {
	for k, res := range results {
		var err error
		switch {
		case table:
			if k > 0 {
				fmt.Fprintln(w)
			}
			_, err = fmt.Fprintf(w, "%s \u2014 %s\n%5s  %-8s %s\n", res.Title, res.Label, "i", "x", "y")
			for i, y := range res.Y {
				if err != nil {
					break
				}
				_, err = fmt.Fprintf(w, "%5d  %-8s %s\n", i, format(res.X[i]), format(y))
			}
		default:
			if len(results) > 1 {
				_, err = fmt.Fprintf(w, "# %s\n", res.Label)
			}
			for _, y := range res.Y {
				if err != nil {
					break
				}
				_, err = fmt.Fprintln(w, format(y))
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// record is the CBOR representation of one run.
type record struct {
	Label string    `cbor:"label"`
	Title string    `cbor:"title"`
	X     []float64 `cbor:"x"`
	Y     []float64 `cbor:"y"`
}

// writeCBOR writes the runs as a CBOR array of records.  If prec is
// non-negative, all numbers are rounded to prec decimal digits.
func writeCBOR(w io.Writer, results []*playground.Result, prec int) error {
	recs := make([]record, len(results))
	for i, res := range results {
		recs[i] = record{
			Label: res.Label,
			Title: res.Title,
			X:     roundAll(res.X, prec),
			Y:     roundAll(res.Y, prec),
		}
	}
	data, err := cbor.Marshal(recs)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func roundAll(xs []float64, prec int) []float64 {
	if prec < 0 {
		return xs
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float.Round(x, prec)
	}
	return out
}
