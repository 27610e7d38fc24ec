package clf

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// Range remaps an input value range to an output range. Each bound is
// optional, but at least one must be present, and the noClamp style requires
// all four.
type Range struct {
	NodeHeader

	MinIn  *float64
	MaxIn  *float64
	MinOut *float64
	MaxOut *float64
	Style  RangeStyle
}

// Kind implements ProcessNode.
func (*Range) Kind() NodeKind { return KindRange }

func parseRange(e *xmltree.Element) (ProcessNode, error) {
	header, err := parseNodeHeader(e)
	if err != nil {
		return nil, err
	}

	node := &Range{NodeHeader: header, Style: RangeStyleClamp}

	for _, bound := range []struct {
		name string
		dst  **float64
	}{
		{"minInValue", &node.MinIn},
		{"maxInValue", &node.MaxIn},
		{"minOutValue", &node.MinOut},
		{"maxOutValue", &node.MaxOut},
	} {
		child, err := singleChild(e, bound.name)
		if err != nil {
			return nil, err
		}

		if child == nil {
			continue
		}

		text := strings.TrimSpace(child.Text())
		if text == "" {
			return nil, &DecodeError{Field: bound.name, Value: "", Reason: "bound element has no value"}
		}

		v, err := parseFloat(bound.name, text)
		if err != nil {
			return nil, err
		}

		*bound.dst = &v
	}

	if node.MinIn == nil && node.MaxIn == nil && node.MinOut == nil && node.MaxOut == nil {
		return nil, errors.Wrap(missingField("minInValue"), "Range node must declare at least one bound")
	}

	if raw, ok := e.Attr("style"); ok {
		if node.Style, err = ParseRangeStyle(raw); err != nil {
			return nil, err
		}
	}

	if node.Style == RangeStyleNoClamp &&
		(node.MinIn == nil || node.MaxIn == nil || node.MinOut == nil || node.MaxOut == nil) {
		return nil, errors.New("noClamp style requires minInValue, maxInValue, minOutValue and maxOutValue")
	}

	return node, nil
}
