// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) shared by Add,
//     Hadamard, Scale and their [][]int32 variants, so the tight loops live in
//     one place.
//
// Determinism & Performance:
//   - Single flat pass 0..n-1 over row-major buffers.
//   - No hidden allocations beyond the output; O(r*c) time and space.
//   - int32 arithmetic wraps on overflow (two's complement).

package matrix

// ewBinary computes out[i] = f(a[i], b[i]) into a fresh matrix shaped like a.
// Shapes must already be validated equal.
func ewBinary(a, b *Matrix, f func(x, y int32) int32) *Matrix {
	out := a.derive(a.r, a.c)
	for i := range out.data {
		out.data[i] = f(a.data[i], b.data[i])
	}

	return out
}

// ewUnary computes out[i] = f(a[i]) into a fresh matrix shaped like a.
func ewUnary(a *Matrix, f func(x int32) int32) *Matrix {
	out := a.derive(a.r, a.c)
	for i, v := range a.data {
		out.data[i] = f(v)
	}

	return out
}

func ewAdd(x, y int32) int32 { return x + y }

func ewMul(x, y int32) int32 { return x * y }
