// Package matrix offers a dense, row-major int32 matrix container.
//
// The matrix package provides:
//
//   - Constructors: random (New, NewShaped, NewRandomCols), zero (NewZeros),
//     identity (NewIdentity) and copying ones (NewFromSlice, NewFromRows,
//     NewFromMatrix, Clone).
//   - Element and row access (At, Set, SetRow, Row, corner accessors) that
//     return sentinel errors instead of panicking.
//   - Aggregates and search (Min, Max, Sum, Average, CountOccurrences,
//     IndexOf, IndexFrom).
//   - Structural mutation (AddRow, AddColumn, Fill, Clear, Randomize, Sort)
//     and the destructive reshape-and-clear pair SetRowsAndClear /
//     SetColsAndClear.
//   - Arithmetic that always returns a new matrix (Add, Hadamard, Mul, Scale,
//     Transpose, FlipHorizontal) plus [][]int32 variants and Multiply.
//   - Flat conversions (ToSlice, Load) and a String form of one
//     "[v1, v2, ..., vn]" line per row ("[]" when empty).
//
// Randomness is always injected: pass WithSeed or WithRand for reproducible
// matrices. A *Matrix is not safe for concurrent use.
//
// Errors are matched with errors.Is against ErrInvalidDimension,
// ErrIndexOutOfRange, ErrDimensionMismatch, ErrDivideByZero, ErrNilArgument
// and ErrInvalidArgument.
package matrix
