package clf

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// Array is an immutable N-dimensional numeric table stored row-major as a
// flat slice. The flat length always equals the product of the dimensions,
// enforced at construction.
type Array struct {
	dim    []int
	values []float64
}

// NewArray builds an Array after checking that the flat value count matches
// the declared dimensions. Values are never truncated or padded.
func NewArray(dim []int, values []float64) (*Array, error) {
	if len(dim) == 0 {
		return nil, &ShapeError{Dim: dim, Reason: "array must have at least one dimension"}
	}

	want := 1
	for _, d := range dim {
		if d <= 0 {
			return nil, &ShapeError{Dim: dim, Reason: "dimensions must be positive"}
		}
		want *= d
	}

	if len(values) != want {
		return nil, &ShapeError{
			Dim:    dim,
			Reason: fmt.Sprintf("got %d values, dimensions require %d", len(values), want),
		}
	}

	return &Array{dim: append([]int(nil), dim...), values: values}, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.dim) }

// Dim returns a copy of the dimension tuple.
func (a *Array) Dim() []int { return append([]int(nil), a.dim...) }

// Len returns the flat value count.
func (a *Array) Len() int { return len(a.values) }

// Values returns the flat row-major backing slice for bulk consumers. The
// slice must not be modified.
func (a *Array) Values() []float64 { return a.values }

// At returns the element at the given multi-index using row-major stride
// arithmetic. It panics when the index does not match the array's rank or is
// out of bounds, mirroring slice indexing.
func (a *Array) At(idx ...int) float64 {
	if len(idx) != len(a.dim) {
		panic(fmt.Sprintf("array index rank %d does not match array rank %d", len(idx), len(a.dim)))
	}

	flat := 0
	for i, x := range idx {
		if x < 0 || x >= a.dim[i] {
			panic(fmt.Sprintf("array index %d out of range for dimension %d of size %d", x, i, a.dim[i]))
		}
		flat = flat*a.dim[i] + x
	}

	return a.values[flat]
}

// parseArray decodes an Array element: a required dim attribute plus
// whitespace separated float values as text content.
func parseArray(e *xmltree.Element) (*Array, error) {
	rawDim, err := requiredAttr(e, "dim")
	if err != nil {
		return nil, err
	}

	dim, err := parseDimensions("dim", rawDim)
	if err != nil {
		return nil, err
	}

	values, err := parseFloatList("Array", e.Text())
	if err != nil {
		return nil, err
	}

	arr, err := NewArray(dim, values)
	if err != nil {
		return nil, errors.Wrap(err, "Array element")
	}

	return arr, nil
}
