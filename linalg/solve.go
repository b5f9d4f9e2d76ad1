// Package linalg implements the dense linear-algebra kernel the
// Berlekamp-Welch decoder is built on: Gaussian elimination with partial
// pivoting over a prime field GF(p).
package linalg

import (
	"github.com/kepler-labs/fuzzyvault/field"
	"github.com/kepler-labs/fuzzyvault/vaulterr"
)

// Solve solves M*x = y for an n x n matrix M and n x 1 vector y over
// GF(p), reporting either the unique solution or vaulterr.NoSolution.
// M and y are not mutated; Solve operates on its own copy. Since field
// arithmetic has no numerical-stability concerns, any nonzero pivot
// candidate is acceptable, so this picks the first nonzero entry in
// column order rather than searching for a "best" one.
func Solve(f *field.Field, m [][]field.Element, y []field.Element) ([]field.Element, error) {
	n := len(m)
	if n == 0 {
		return nil, vaulterr.New(vaulterr.NoSolution, "empty system")
	}
	for _, row := range m {
		if len(row) != n {
			return nil, vaulterr.New(vaulterr.NoSolution, "matrix is not square")
		}
	}
	if len(y) != n {
		return nil, vaulterr.New(vaulterr.NoSolution, "right-hand side length mismatch")
	}

	// augmented[i] = [row i of M | y_i], worked on in place.
	augmented := make([][]field.Element, n)
	for i := range m {
		row := make([]field.Element, n+1)
		copy(row, m[i])
		row[n] = y[i]
		augmented[i] = row
	}

	for col := 0; col < n; col++ {
		pivotRow := -1
		for row := col; row < n; row++ {
			if augmented[row][col] != 0 {
				pivotRow = row
				break
			}
		}
		if pivotRow == -1 {
			return nil, vaulterr.New(vaulterr.NoSolution, "zero pivot in column %d", col)
		}
		augmented[col], augmented[pivotRow] = augmented[pivotRow], augmented[col]

		pivotInv, err := f.Inv(augmented[col][col])
		if err != nil {
			return nil, vaulterr.New(vaulterr.NoSolution, "unexpected zero pivot in column %d", col)
		}
		for j := col; j <= n; j++ {
			augmented[col][j] = f.Mul(augmented[col][j], pivotInv)
		}

		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := augmented[row][col]
			if factor == 0 {
				continue
			}
			for j := col; j <= n; j++ {
				augmented[row][j] = f.Sub(augmented[row][j], f.Mul(factor, augmented[col][j]))
			}
		}
	}

	x := make([]field.Element, n)
	for i := 0; i < n; i++ {
		x[i] = augmented[i][n]
	}
	return x, nil
}
