package clf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colour-pipeline/go-clf/pkg/clf"
)

func TestNewArray(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5}

	arr, err := clf.NewArray([]int{2, 3}, values)
	require.NoError(t, err)

	assert.Equal(t, 2, arr.Rank())
	assert.Equal(t, []int{2, 3}, arr.Dim())
	assert.Equal(t, 6, arr.Len())
	assert.Equal(t, values, arr.Values())
}

func TestNewArrayShapeMismatch(t *testing.T) {
	_, err := clf.NewArray([]int{2, 3}, []float64{0, 1, 2, 3, 4})

	shapeErr := &clf.ShapeError{}
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, []int{2, 3}, shapeErr.Dim)
}

func TestNewArrayRejectsBadDimensions(t *testing.T) {
	_, err := clf.NewArray(nil, nil)
	assert.Error(t, err)

	_, err = clf.NewArray([]int{2, 0}, nil)
	assert.Error(t, err)
}

func TestArrayAtRowMajor(t *testing.T) {
	// 2x2x3: flat index = (i*2+j)*3 + k.
	values := make([]float64, 12)
	for i := range values {
		values[i] = float64(i)
	}

	arr, err := clf.NewArray([]int{2, 2, 3}, values)
	require.NoError(t, err)

	assert.Equal(t, 0.0, arr.At(0, 0, 0))
	assert.Equal(t, 5.0, arr.At(0, 1, 2))
	assert.Equal(t, 7.0, arr.At(1, 0, 1))
	assert.Equal(t, 11.0, arr.At(1, 1, 2))
}

func TestArrayAtPanics(t *testing.T) {
	arr, err := clf.NewArray([]int{2, 2}, []float64{0, 1, 2, 3})
	require.NoError(t, err)

	assert.Panics(t, func() { arr.At(0) })
	assert.Panics(t, func() { arr.At(0, 2) })
	assert.Panics(t, func() { arr.At(-1, 0) })
}
