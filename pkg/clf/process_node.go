package clf

import (
	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// NodeKind identifies one of the closed set of process node kinds.
type NodeKind string

const (
	KindLUT1D    NodeKind = "LUT1D"
	KindLUT3D    NodeKind = "LUT3D"
	KindMatrix   NodeKind = "Matrix"
	KindRange    NodeKind = "Range"
	KindLog      NodeKind = "Log"
	KindExponent NodeKind = "Exponent"
	KindASCCDL   NodeKind = "ASC_CDL"
)

// ProcessNode is one stage of a CLF pipeline. The concrete type is one of
// LUT1D, LUT3D, Matrix, Range, Log, Exponent or ASCCDL.
type ProcessNode interface {
	// Kind returns the node kind tag.
	Kind() NodeKind
	// Header returns the fields shared by every node kind.
	Header() *NodeHeader
}

// NodeHeader holds the fields common to every process node.
type NodeHeader struct {
	ID           string
	Name         string
	InBitDepth   BitDepth
	OutBitDepth  BitDepth
	Descriptions []string
}

// Header implements ProcessNode for every node type embedding NodeHeader.
func (h *NodeHeader) Header() *NodeHeader { return h }

// parseNodeHeader decodes the shared preamble: optional id and name, the
// required in/out bit depths and the ordered Description children.
func parseNodeHeader(e *xmltree.Element) (NodeHeader, error) {
	h := NodeHeader{}
	h.ID, _ = e.Attr("id")
	h.Name, _ = e.Attr("name")
	h.Descriptions = descriptions(e)

	for _, attr := range []struct {
		name string
		dst  *BitDepth
	}{
		{"inBitDepth", &h.InBitDepth},
		{"outBitDepth", &h.OutBitDepth},
	} {
		raw, err := requiredAttr(e, attr.name)
		if err != nil {
			return h, err
		}

		depth, err := ParseBitDepth(raw)
		if err != nil {
			return h, errors.Wrapf(err, "attribute %q", attr.name)
		}

		*attr.dst = depth
	}

	return h, nil
}

// nodeParsers is the closed tag to parser mapping covering every known
// process node kind. Tags outside this map fail the whole document.
var nodeParsers = map[string]func(*xmltree.Element) (ProcessNode, error){
	string(KindLUT1D):    parseLUT1D,
	string(KindLUT3D):    parseLUT3D,
	string(KindMatrix):   parseMatrix,
	string(KindRange):    parseRange,
	string(KindLog):      parseLog,
	string(KindExponent): parseExponent,
	string(KindASCCDL):   parseASCCDL,
}

// parseProcessNode dispatches an element to the parser for its tag and
// attaches the node's kind and id to any failure.
func parseProcessNode(e *xmltree.Element) (ProcessNode, error) {
	parse, ok := nodeParsers[e.Name]
	if !ok {
		return nil, &UnknownNodeError{Tag: e.Name}
	}

	node, err := parse(e)
	if err != nil {
		id, _ := e.Attr("id")

		return nil, errors.Wrapf(err, "%s node %q", e.Name, id)
	}

	return node, nil
}
