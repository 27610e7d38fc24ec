package clf

import (
	"io"

	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

type parseConfig struct {
	requireNamespace bool
}

// ParseOption adjusts how a document is parsed.
type ParseOption func(*parseConfig)

// RequireNamespace rejects documents that omit the CLF namespace. By default
// an absent namespace is tolerated while a wrong one is always rejected.
func RequireNamespace() ParseOption {
	return func(cfg *parseConfig) {
		cfg.requireNamespace = true
	}
}

// Parse reads a CLF document from a string and returns its ProcessList.
// Parsing is all-or-nothing: on any validation failure no partial result is
// returned.
func Parse(text string, opts ...ParseOption) (*ProcessList, error) {
	root, err := xmltree.ParseString(text)

	return fromElement(root, err, opts)
}

// ParseBytes reads a CLF document from a byte slice.
func ParseBytes(data []byte, opts ...ParseOption) (*ProcessList, error) {
	root, err := xmltree.ParseBytes(data)

	return fromElement(root, err, opts)
}

// ParseReader reads a CLF document from a reader.
func ParseReader(r io.Reader, opts ...ParseOption) (*ProcessList, error) {
	root, err := xmltree.Parse(r)

	return fromElement(root, err, opts)
}

func fromElement(root *xmltree.Element, err error, opts []ParseOption) (*ProcessList, error) {
	if err != nil {
		if errors.Is(err, xmltree.ErrNoRoot) {
			return nil, ErrEmptyDocument
		}

		return nil, errors.Wrap(err, "unable to parse document")
	}

	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return parseProcessList(root, cfg)
}
