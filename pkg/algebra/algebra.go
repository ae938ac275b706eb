// Package algebra provides the dense matrix and vector building blocks
// used by the Black-Litterman calculators. It is a thin layer over
// gonum's mat package: operations return freshly allocated results and
// never mutate their operands.
//
// Dimension agreement is the caller's responsibility. The calculators
// validate every input upfront, so the panics gonum raises on shape
// mismatches are unreachable for inputs that pass validation.
package algebra

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrInversion is returned when a matrix is singular or too
// ill-conditioned to invert.
var ErrInversion = errors.New("matrix inversion failed")

// Transpose returns Mᵀ as a concrete dense matrix.
func Transpose(m *mat.Dense) *mat.Dense {
	var t mat.Dense
	t.CloneFrom(m.T())
	return &t
}

// Scale returns s·M.
func Scale(s float64, m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Scale(s, m)
	return &out
}

// Mul returns A·B. Inner dimensions must agree.
func Mul(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Mul(a, b)
	return &out
}

// Add returns A + B. Operands must have identical dimensions.
func Add(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Add(a, b)
	return &out
}

// Sub returns A − B. Operands must have identical dimensions.
func Sub(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Sub(a, b)
	return &out
}

// Inverse returns M⁻¹. name identifies the matrix in the error so that
// callers several formula steps away can tell which inversion failed;
// the underlying gonum diagnostic is chained for inspection.
func Inverse(name string, m *mat.Dense) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("%w: failed to invert %s: %w", ErrInversion, name, err)
	}
	return &inv, nil
}

// ColumnMatrix reshapes v into an n×1 matrix so that a vector can take
// part in matrix-style multiplication.
func ColumnMatrix(v []float64) *mat.Dense {
	out := mat.NewDense(len(v), 1, nil)
	for i, x := range v {
		out.Set(i, 0, x)
	}
	return out
}

// ToVector flattens an n×1 matrix back into a slice. It is the exact
// inverse of ColumnMatrix: ToVector(ColumnMatrix(v)) == v for all v.
func ToVector(m *mat.Dense) []float64 {
	r, _ := m.Dims()
	v := make([]float64, r)
	for i := range v {
		v[i] = m.At(i, 0)
	}
	return v
}

// FromRows builds a dense matrix from row slices. rows must be
// non-empty and rectangular.
func FromRows(rows [][]float64) *mat.Dense {
	r := len(rows)
	c := len(rows[0])
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, rows[i][j])
		}
	}
	return out
}

// ToRows converts a dense matrix back into row slices.
func ToRows(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
