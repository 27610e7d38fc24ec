package clf

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// Namespace is the XML namespace of CLF v3 documents.
const Namespace = "urn:AMPAS:CLF:v3.0"

// MaxSupportedVersion is the highest compCLFversion this parser accepts.
const MaxSupportedVersion = 3.0

// ProcessList is the top level CLF document model: an ordered pipeline of
// process nodes plus document metadata. The node order is the execution
// order of the transform.
type ProcessList struct {
	ID      string
	Name    string
	Version string

	// InverseOf is the id of the ProcessList this transform inverts. It is a
	// logical lookup key, never resolved to a live reference.
	InverseOf string

	Descriptions     []string
	InputDescriptor  string
	OutputDescriptor string
	Info             *Info

	Nodes []ProcessNode
}

func parseVersion(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 || v > MaxSupportedVersion {
		return &UnsupportedVersionError{Version: raw}
	}

	return nil
}

// metadataTags are ProcessList children that are not process nodes.
var metadataTags = map[string]struct{}{
	"Description":      {},
	"InputDescriptor":  {},
	"OutputDescriptor": {},
	"Info":             {},
}

func parseProcessList(root *xmltree.Element, cfg parseConfig) (*ProcessList, error) {
	if root.Name != "ProcessList" {
		return nil, errors.Wrapf(ErrNotProcessList, "got %q", root.Name)
	}

	switch root.Namespace {
	case Namespace:
	case "":
		if cfg.requireNamespace {
			return nil, errors.Errorf("ProcessList must declare the %s namespace", Namespace)
		}
	default:
		return nil, errors.Errorf("invalid ProcessList namespace %q", root.Namespace)
	}

	pl := &ProcessList{}

	var err error
	if pl.ID, err = requiredAttr(root, "id"); err != nil {
		return nil, errors.Wrap(err, "ProcessList")
	}

	if pl.Version, err = requiredAttr(root, "compCLFversion"); err != nil {
		return nil, errors.Wrap(err, "ProcessList")
	}

	if err = parseVersion(pl.Version); err != nil {
		return nil, err
	}

	pl.Name, _ = root.Attr("name")
	pl.InverseOf, _ = root.Attr("inverseOf")
	pl.Descriptions = descriptions(root)

	if pl.InputDescriptor, err = childText(root, "InputDescriptor"); err != nil {
		return nil, err
	}

	if pl.OutputDescriptor, err = childText(root, "OutputDescriptor"); err != nil {
		return nil, err
	}

	infoElem, err := singleChild(root, "Info")
	if err != nil {
		return nil, err
	}

	if pl.Info, err = parseInfo(infoElem); err != nil {
		return nil, errors.Wrap(err, "Info")
	}

	for _, child := range root.Children {
		if _, ok := metadataTags[child.Name]; ok {
			continue
		}

		node, err := parseProcessNode(child)
		if err != nil {
			return nil, errors.Wrapf(err, "ProcessList %q", pl.ID)
		}

		pl.Nodes = append(pl.Nodes, node)
	}

	if err := checkBitDepthCompatibility(pl.Nodes); err != nil {
		return nil, errors.Wrapf(err, "ProcessList %q", pl.ID)
	}

	return pl, nil
}

// checkBitDepthCompatibility verifies that the output bit depth of every
// node matches the input bit depth of its successor.
func checkBitDepthCompatibility(nodes []ProcessNode) error {
	for i := 0; i+1 < len(nodes); i++ {
		out := nodes[i].Header().OutBitDepth
		in := nodes[i+1].Header().InBitDepth

		if out != in {
			return errors.Errorf(
				"incompatible bit depths between %s node %q (out %s) and %s node %q (in %s)",
				nodes[i].Kind(), nodes[i].Header().ID, out,
				nodes[i+1].Kind(), nodes[i+1].Header().ID, in,
			)
		}
	}

	return nil
}
