package clf

import (
	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// Log applies a logarithmic or anti-logarithmic curve selected by its style.
// The optional LogParams child refines the camera and lin-to-log styles.
type Log struct {
	NodeHeader

	Style  LogStyle
	Params *LogParams
}

// Kind implements ProcessNode.
func (*Log) Kind() NodeKind { return KindLog }

func parseLog(e *xmltree.Element) (ProcessNode, error) {
	header, err := parseNodeHeader(e)
	if err != nil {
		return nil, err
	}

	raw, err := requiredAttr(e, "style")
	if err != nil {
		return nil, err
	}

	style, err := ParseLogStyle(raw)
	if err != nil {
		return nil, err
	}

	paramsElem, err := singleChild(e, "LogParams")
	if err != nil {
		return nil, err
	}

	params, err := parseLogParams(paramsElem)
	if err != nil {
		return nil, errors.Wrap(err, "LogParams")
	}

	return &Log{NodeHeader: header, Style: style, Params: params}, nil
}
