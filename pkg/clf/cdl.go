package clf

import (
	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// ASCCDL applies an ASC Color Decision List correction: slope, offset and
// power per channel plus an overall saturation.
type ASCCDL struct {
	NodeHeader

	Style CDLStyle
	SOP   *SOPNode
	Sat   *SatNode
}

// Kind implements ProcessNode.
func (*ASCCDL) Kind() NodeKind { return KindASCCDL }

func parseASCCDL(e *xmltree.Element) (ProcessNode, error) {
	header, err := parseNodeHeader(e)
	if err != nil {
		return nil, err
	}

	raw, err := requiredAttr(e, "style")
	if err != nil {
		return nil, err
	}

	style, err := ParseCDLStyle(raw)
	if err != nil {
		return nil, err
	}

	node := &ASCCDL{NodeHeader: header, Style: style}

	sopElem, err := singleChild(e, "SOPNode")
	if err != nil {
		return nil, err
	}

	if node.SOP, err = parseSOPNode(sopElem); err != nil {
		return nil, errors.Wrap(err, "SOPNode")
	}

	satElem, err := singleChild(e, "SatNode")
	if err != nil {
		return nil, err
	}

	if node.Sat, err = parseSatNode(satElem); err != nil {
		return nil, errors.Wrap(err, "SatNode")
	}

	return node, nil
}
