// Package imatrix is a small toolkit for dense integer matrices.
//
// What is imatrix?
//
//	A dependency-light library plus a command-line tool:
//		• matrix/      - the dense row-major int32 Matrix: constructors,
//		                 safe accessors, aggregates, search, structural
//		                 mutation and arithmetic
//		• cmd/imatrix/ - generate a seeded random matrix and print it or an
//		                 operation applied to it
//
// Randomness is injected (WithSeed / WithRand), so every random matrix can be
// reproduced. Errors are sentinel values matched with errors.Is.
//
// Quick start:
//
//	m, _ := matrix.NewFromRows([][]int32{{1, 2}, {3, 4}})
//	sq, _ := m.Mul(m)
//	fmt.Print(sq) // [7, 10]\n[15, 22]\n
package imatrix
