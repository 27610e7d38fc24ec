package clf

import (
	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// Exponent applies a power curve selected by its style, parameterised by a
// mandatory ExponentParams child.
type Exponent struct {
	NodeHeader

	Style  ExponentStyle
	Params *ExponentParams
}

// Kind implements ProcessNode.
func (*Exponent) Kind() NodeKind { return KindExponent }

func parseExponent(e *xmltree.Element) (ProcessNode, error) {
	header, err := parseNodeHeader(e)
	if err != nil {
		return nil, err
	}

	raw, err := requiredAttr(e, "style")
	if err != nil {
		return nil, err
	}

	style, err := ParseExponentStyle(raw)
	if err != nil {
		return nil, err
	}

	paramsElem, err := singleChild(e, "ExponentParams")
	if err != nil {
		return nil, err
	}

	if paramsElem == nil {
		return nil, missingField("ExponentParams")
	}

	params, err := parseExponentParams(paramsElem)
	if err != nil {
		return nil, errors.Wrap(err, "ExponentParams")
	}

	return &Exponent{NodeHeader: header, Style: style, Params: params}, nil
}
