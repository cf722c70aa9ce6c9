// SPDX-License-Identifier: MIT

// Package matrix - dense int32 storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders) and explicit, injectable randomness.
//
// Complexity quicksheet:
//   - constructors: O(r*c); At/Set: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("matrix")

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtEmpty    = "[]"
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense row-major matrix of int32 values.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - rng drives Randomize and is inherited by derived matrices.
//
// A Matrix exclusively owns data. It is not safe for concurrent use; callers
// serialize access to a given instance.
type Matrix struct {
	r, c int        // row and column counts
	data []int32    // contiguous row-major storage (len == r*c)
	rng  *rand.Rand // random source used by Randomize
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// newMatrix allocates an r×c zero matrix carrying cfg. Shape must be validated.
func newMatrix(rows, cols int, cfg config) *Matrix {
	return &Matrix{
		r:    rows,
		c:    cols,
		data: make([]int32, rows*cols),
		rng:  cfg.rng,
	}
}

// derive allocates an r×c zero matrix sharing m's random source.
func (m *Matrix) derive(rows, cols int) *Matrix {
	return &Matrix{
		r:    rows,
		c:    cols,
		data: make([]int32, rows*cols),
		rng:  m.rng,
	}
}

// New builds a random matrix: rows and cols are drawn uniformly from
// [1, DefaultMaxDim] and every element from [0, DefaultMaxValue].
// Both bounds are overridable with WithMaxDim / WithMaxValue.
//
// Determinism:
//   - Pass WithSeed or WithRand for reproducible output; otherwise a time-seeded
//     source is used.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(opts ...Option) *Matrix {
	cfg := newConfig(opts...)
	rows := randomDim(cfg.rng, cfg.maxDim)
	cols := randomDim(cfg.rng, cfg.maxDim)
	m := newMatrix(rows, cols, cfg)
	fillUniform(m.data, cfg.rng, cfg.maxValue)

	return m
}

// NewShaped creates a rows×cols matrix, zero-filled or randomly filled.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation. Zero-sized shapes
//     (0×N, N×0, 0×0) are legal.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimension.
//   - Stage 2: allocate a zero-filled buffer.
//   - Stage 3: when fillRandom, draw every element from [0, maxValue] in row-major order.
//
// Errors:
//   - ErrInvalidDimension (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewShaped(rows, cols int, fillRandom bool, opts ...Option) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewShaped", err)
	}
	cfg := newConfig(opts...)
	m := newMatrix(rows, cols, cfg)
	if fillRandom {
		fillUniform(m.data, cfg.rng, cfg.maxValue)
	}

	return m, nil
}

// NewZeros returns a rows×cols zero matrix. Thin alias of NewShaped(rows, cols, false).
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) {
	return NewShaped(rows, cols, false, opts...)
}

// NewRandomCols returns a randomly filled matrix with the given row count and a
// column count drawn from [1, DefaultMaxDim].
//
// Errors:
//   - ErrInvalidDimension when rows < 0.
func NewRandomCols(rows int, opts ...Option) (*Matrix, error) {
	if err := ValidateShape(rows, 0); err != nil {
		return nil, matrixErrorf("NewRandomCols", err)
	}
	cfg := newConfig(opts...)
	cols := randomDim(cfg.rng, cfg.maxDim)
	m := newMatrix(rows, cols, cfg)
	fillUniform(m.data, cfg.rng, cfg.maxValue)

	return m, nil
}

// NewFromSlice copies rows*cols values, row-major, from a flat slice.
// MAIN DESCRIPTION:
//   - Data-interchange constructor for callers holding a flat buffer.
//
// Implementation:
//   - Stage 1: validate shape (rows<0 OR cols<0 ⇒ ErrInvalidDimension).
//   - Stage 2: validate the source (nil ⇒ ErrNilArgument when cells are needed;
//     too short ⇒ ErrInvalidArgument).
//   - Stage 3: copy the first rows*cols values; extra values are ignored.
//
// Behavior highlights:
//   - The result never aliases values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromSlice(values []int32, rows, cols int, opts ...Option) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewFromSlice", err)
	}
	n := rows * cols
	if values == nil && n > 0 {
		return nil, matrixErrorf("NewFromSlice", ErrNilArgument)
	}
	if len(values) < n {
		return nil, matrixErrorf("NewFromSlice", fmt.Errorf("need %d values, got %d: %w", n, len(values), ErrInvalidArgument))
	}
	m := newMatrix(rows, cols, newConfig(opts...))
	copy(m.data, values[:n])

	return m, nil
}

// NewFromRows builds a matrix from a rectangular 2D slice; the shape is
// inferred as (len(rows), len(rows[0])). An empty outer slice yields 0×0.
//
// Errors:
//   - ErrNilArgument for nil input, ErrInvalidDimension for ragged rows.
func NewFromRows(rows [][]int32, opts ...Option) (*Matrix, error) {
	r, c, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf("NewFromRows", err)
	}
	m := newMatrix(r, c, newConfig(opts...))
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewFromMatrix returns an independent copy of other (shape, values and
// random configuration). Errors with ErrNilArgument when other is nil.
func NewFromMatrix(other *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(other); err != nil {
		return nil, matrixErrorf("NewFromMatrix", err)
	}

	return other.Clone(), nil
}

// NewIdentity returns I_n (n×n, ones on the diagonal, zeros elsewhere).
// Errors with ErrInvalidDimension when n < 0.
func NewIdentity(n int, opts ...Option) (*Matrix, error) {
	m, err := NewShaped(n, n, false, opts...)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix has no elements (rows==0 or cols==0).
func (m *Matrix) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// The bare sentinel is returned; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v int32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with a new buffer. The random source is shared.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	cp := m.derive(m.r, m.c)
	copy(cp.data, m.data)

	return cp
}

// String renders one line per row as "[v1, v2, ..., vn]\n".
// An empty matrix (rows==0 or cols==0) renders as "[]" with no newline.
//
// Determinism:
//   - Fixed traversal order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix) String() string {
	if m.IsEmpty() {
		return _fmtEmpty
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(int64(m.data[base+j]), 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
