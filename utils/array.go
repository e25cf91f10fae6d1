package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Array is a dense float64 array with an explicit shape. OSIRIS snapshot
// readers hand the reduction routines arrays of arbitrary rank, so rank is
// a runtime property checked as a precondition rather than a compile-time
// one. The buffer is owned: constructors copy their input and accessors
// copy their output, so no two Arrays alias.
//
// Rank-2 data is stored row-major, indexed [axis0, axis1].
type Array struct {
	data  []float64
	shape []int
}

// NewArray builds an Array of the given shape from a flat row-major buffer.
// Every extent must be positive and len(data) must equal the product of the
// extents.
func NewArray(shape []int, data []float64) (a Array, err error) {
	if len(shape) == 0 {
		err = fmt.Errorf("%w: empty shape", ErrInvalidArgument)
		return
	}
	size := 1
	for _, n := range shape {
		if n <= 0 {
			err = fmt.Errorf("%w: non-positive extent %d in shape %s",
				ErrInvalidArgument, n, formatShape(shape))
			return
		}
		size *= n
	}
	if len(data) != size {
		err = fmt.Errorf("%w: shape %s needs %d values, got %d",
			ErrInvalidArgument, formatShape(shape), size, len(data))
		return
	}
	a.shape = append([]int(nil), shape...)
	a.data = append([]float64(nil), data...)
	return
}

// NewArray1D copies data into a rank-1 Array.
func NewArray1D(data []float64) (Array, error) {
	return NewArray([]int{len(data)}, data)
}

// NewArray2D copies rows into a rank-2 Array. Ragged input is rejected.
func NewArray2D(rows [][]float64) (a Array, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		err = fmt.Errorf("%w: empty 2D input", ErrInvalidArgument)
		return
	}
	nc := len(rows[0])
	data := make([]float64, 0, len(rows)*nc)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("%w: ragged 2D input, row 0 has %d columns, row %d has %d",
				ErrInvalidArgument, nc, i, len(row))
			return
		}
		data = append(data, row...)
	}
	return NewArray([]int{len(rows), nc}, data)
}

// Rank returns the number of axes.
func (a Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the extents per axis.
func (a Array) Shape() []int { return append([]int(nil), a.shape...) }

// Size returns the total number of elements.
func (a Array) Size() int { return len(a.data) }

// Len returns the extent along the given axis.
func (a Array) Len(axis int) int {
	if axis < 0 || axis >= len(a.shape) {
		panic(fmt.Sprintf("axis %d out of range for rank %d", axis, len(a.shape)))
	}
	return a.shape[axis]
}

// At returns the element at the given multi-index.
func (a Array) At(indices ...int) float64 {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("got %d indices for rank %d", len(indices), len(a.shape)))
	}
	flat := 0
	for axis, i := range indices {
		if i < 0 || i >= a.shape[axis] {
			panic(fmt.Sprintf("index %d out of range for axis %d of extent %d",
				i, axis, a.shape[axis]))
		}
		flat = flat*a.shape[axis] + i
	}
	return a.data[flat]
}

// Data returns a copy of the flat row-major buffer.
func (a Array) Data() []float64 { return append([]float64(nil), a.data...) }

// Matrix returns the rank-2 contents as a fresh gonum Dense matrix.
func (a Array) Matrix() (m *mat.Dense, err error) {
	if a.Rank() != 2 {
		err = &ShapeError{Op: "Matrix", WantRank: 2, GotShape: a.Shape()}
		return
	}
	m = mat.NewDense(a.shape[0], a.shape[1], a.Data())
	return
}

// Vector returns the rank-1 contents as a fresh gonum VecDense.
func (a Array) Vector() (v *mat.VecDense, err error) {
	if a.Rank() != 1 {
		err = &ShapeError{Op: "Vector", WantRank: 1, GotShape: a.Shape()}
		return
	}
	v = mat.NewVecDense(a.shape[0], a.Data())
	return
}

// Equals reports exact equality of shape and contents.
func (a Array) Equals(b Array) bool { return a.EqualsTol(b, 0) }

// EqualsTol reports equality of shape with contents within tol.
func (a Array) EqualsTol(b Array, tol float64) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}
	return true
}
