package clf

import (
	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// Matrix multiplies each pixel by a constant matrix, optionally with an
// offset column. Allowed shapes are 3x3, 3x4, 4x4 and 4x5.
type Matrix struct {
	NodeHeader

	Array *Array
}

// Kind implements ProcessNode.
func (*Matrix) Kind() NodeKind { return KindMatrix }

// matrixShapes is the per-kind whitelist of array shapes. The fourth column
// of a 3x4 (or fifth of a 4x5) matrix is the offset vector.
var matrixShapes = [][2]int{{3, 3}, {3, 4}, {4, 4}, {4, 5}}

// HasOffset reports whether the matrix carries an offset column.
func (m *Matrix) HasOffset() bool {
	dim := m.Array.Dim()

	return dim[1] == dim[0]+1
}

func parseMatrix(e *xmltree.Element) (ProcessNode, error) {
	header, err := parseNodeHeader(e)
	if err != nil {
		return nil, err
	}

	arr, err := requiredLUTArray(e)
	if err != nil {
		return nil, err
	}

	dim := arr.Dim()
	allowed := false

	if len(dim) == 2 {
		for _, shape := range matrixShapes {
			if dim[0] == shape[0] && dim[1] == shape[1] {
				allowed = true

				break
			}
		}
	}

	if !allowed {
		return nil, &ShapeError{Dim: dim, Reason: "Matrix array must be 3x3, 3x4, 4x4 or 4x5"}
	}

	return &Matrix{NodeHeader: header, Array: arr}, nil
}
