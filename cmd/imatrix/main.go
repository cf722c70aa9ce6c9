// SPDX-License-Identifier: MIT

// Command imatrix builds a seeded random int32 matrix and prints it, or the
// result of one operation applied to it.
//
// Usage:
//
//	imatrix [--rows N] [--cols N] [--seed S] [--max V] [--op OP] [--k K] [--log-level LVL]
//
// OP is one of: show, stats, transpose, flip, sort, scale, square.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/imatrix/matrix"
)

var log = logging.Logger("imatrix")

// errUnknownOp is returned for an --op value outside the supported set.
var errUnknownOp = errors.New("imatrix: unknown op")

// options holds the parsed command line.
type options struct {
	rows, cols int
	seed       int64
	maxValue   int
	op         string
	k          int32
	logLevel   string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseFlags reads args into options. Output of the flag set (usage, parse
// errors) goes to stderr.
func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("imatrix", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.IntVar(&o.rows, "rows", 3, "number of rows (>= 0)")
	fs.IntVar(&o.cols, "cols", 3, "number of columns (>= 0)")
	fs.Int64Var(&o.seed, "seed", 1, "random seed (0 selects the default seed)")
	fs.IntVar(&o.maxValue, "max", 9, "inclusive upper bound of random values")
	fs.StringVar(&o.op, "op", "show", "operation: show, stats, transpose, flip, sort, scale, square")
	fs.Int32Var(&o.k, "k", 2, "scalar for --op scale")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	return o, nil
}

// run is the whole program minus process exit; results go to out.
func run(args []string, out io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	level, err := logging.LevelFromString(o.logLevel)
	if err != nil {
		log.Warnf("invalid log level %q, using info", o.logLevel)
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	if o.maxValue < 0 || o.maxValue > math.MaxInt32 {
		return fmt.Errorf("--max %d: %w", o.maxValue, matrix.ErrInvalidArgument)
	}
	m, err := matrix.NewShaped(o.rows, o.cols, true, matrix.WithSeed(o.seed), matrix.WithMaxValue(o.maxValue))
	if err != nil {
		return err
	}
	log.Debugw("matrix generated", "rows", o.rows, "cols", o.cols, "seed", o.seed, "max", o.maxValue)

	return apply(o, m, out)
}

// apply runs o.op on m and writes the result.
func apply(o options, m *matrix.Matrix, out io.Writer) error {
	switch o.op {
	case "show":
		return printMatrix(out, m)
	case "stats":
		return printStats(out, m)
	case "transpose":
		return printMatrix(out, m.Transpose())
	case "flip":
		return printMatrix(out, m.FlipHorizontal())
	case "sort":
		sorted := m.Clone()
		sorted.Sort()
		return printMatrix(out, sorted)
	case "scale":
		return printMatrix(out, m.Scale(o.k))
	case "square":
		// m × mᵀ is always defined, whatever the shape.
		sq, err := m.Mul(m.Transpose())
		if err != nil {
			return err
		}
		return printMatrix(out, sq)
	default:
		return fmt.Errorf("%q: %w", o.op, errUnknownOp)
	}
}

// printMatrix writes m.String(), terminating the empty form with a newline.
func printMatrix(out io.Writer, m *matrix.Matrix) error {
	s := m.String()
	if m.IsEmpty() {
		s += "\n"
	}
	_, err := io.WriteString(out, s)

	return err
}

// printStats writes shape and aggregates, one "name: value" per line.
// Min, max and average are omitted for an empty matrix.
func printStats(out io.Writer, m *matrix.Matrix) error {
	rows, cols := m.Shape()
	if _, err := fmt.Fprintf(out, "rows: %d\ncols: %d\nsum: %d\n", rows, cols, m.Sum()); err != nil {
		return err
	}
	if m.IsEmpty() {
		return nil
	}
	lo, err := m.Min()
	if err != nil {
		return err
	}
	hi, err := m.Max()
	if err != nil {
		return err
	}
	avg, err := m.Average()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "min: %d\nmax: %d\naverage: %d\n", lo, hi, avg)

	return err
}
