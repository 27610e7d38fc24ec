package clf

import (
	"fmt"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// LUT1D is a one dimensional lookup table. Its array has rank 2: the first
// dimension is the entry count, the last is 1 for a single curve or 3 for
// per-channel curves.
type LUT1D struct {
	NodeHeader

	Array         *Array
	HalfDomain    bool
	RawHalfs      bool
	Interpolation Interpolation1D
}

// Kind implements ProcessNode.
func (*LUT1D) Kind() NodeKind { return KindLUT1D }

// LUT3D is a three dimensional lookup table. Its array has rank 4 with the
// last dimension fixed to 3 (RGB output per grid point).
type LUT3D struct {
	NodeHeader

	Array         *Array
	HalfDomain    bool
	RawHalfs      bool
	Interpolation Interpolation3D
}

// Kind implements ProcessNode.
func (*LUT3D) Kind() NodeKind { return KindLUT3D }

func parseLUT1D(e *xmltree.Element) (ProcessNode, error) {
	header, err := parseNodeHeader(e)
	if err != nil {
		return nil, err
	}

	node := &LUT1D{NodeHeader: header, Interpolation: Interpolation1DLinear}

	node.Array, err = requiredLUTArray(e)
	if err != nil {
		return nil, err
	}

	if dim := node.Array.Dim(); len(dim) != 2 || (dim[1] != 1 && dim[1] != 3) {
		return nil, &ShapeError{Dim: dim, Reason: "LUT1D array must have rank 2 with a last dimension of 1 or 3"}
	}

	if node.HalfDomain, err = parseBoolAttr(e, "halfDomain"); err != nil {
		return nil, err
	}

	if node.RawHalfs, err = parseBoolAttr(e, "rawHalfs"); err != nil {
		return nil, err
	}

	if node.HalfDomain && node.Array.Dim()[0] != HalfDomainEntries {
		return nil, &ShapeError{
			Dim:    node.Array.Dim(),
			Reason: fmt.Sprintf("half domain LUT1D must have %d entries", HalfDomainEntries),
		}
	}

	if raw, ok := e.Attr("interpolation"); ok {
		if node.Interpolation, err = ParseInterpolation1D(raw); err != nil {
			return nil, err
		}
	}

	return node, nil
}

func parseLUT3D(e *xmltree.Element) (ProcessNode, error) {
	header, err := parseNodeHeader(e)
	if err != nil {
		return nil, err
	}

	node := &LUT3D{NodeHeader: header, Interpolation: Interpolation3DTrilinear}

	node.Array, err = requiredLUTArray(e)
	if err != nil {
		return nil, err
	}

	if dim := node.Array.Dim(); len(dim) != 4 || dim[3] != 3 {
		return nil, &ShapeError{Dim: dim, Reason: "LUT3D array must have rank 4 with a last dimension of 3"}
	}

	if node.HalfDomain, err = parseBoolAttr(e, "halfDomain"); err != nil {
		return nil, err
	}

	if node.RawHalfs, err = parseBoolAttr(e, "rawHalfs"); err != nil {
		return nil, err
	}

	if raw, ok := e.Attr("interpolation"); ok {
		if node.Interpolation, err = ParseInterpolation3D(raw); err != nil {
			return nil, err
		}
	}

	return node, nil
}

// requiredLUTArray fetches the single mandatory Array child of a LUT or
// Matrix node.
func requiredLUTArray(e *xmltree.Element) (*Array, error) {
	elem, err := singleChild(e, "Array")
	if err != nil {
		return nil, err
	}

	if elem == nil {
		return nil, missingField("Array")
	}

	return parseArray(elem)
}

// HalfDomainEntries is the entry count of a LUT1D indexed directly by
// 16-bit half-float code values.
const HalfDomainEntries = 65536

// String summarises the table for diagnostics.
func (l *LUT3D) String() string {
	dim := l.Array.Dim()

	return fmt.Sprintf("LUT3D %dx%dx%d (%s)", dim[0], dim[1], dim[2], l.Interpolation)
}
