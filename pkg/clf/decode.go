package clf

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// Primitive decoders turning raw attribute and text strings into typed
// values. Each failure names the offending field and value.

// parseFloatList splits text on arbitrary whitespace and decodes every token
// as a floating point number. Empty tokens are skipped.
func parseFloatList(field, text string) ([]float64, error) {
	tokens := strings.Fields(text)
	values := make([]float64, 0, len(tokens))

	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &DecodeError{
				Field:  field,
				Value:  tok,
				Reason: "malformed number at position " + strconv.Itoa(i),
			}
		}

		values = append(values, v)
	}

	return values, nil
}

// parseDimensions decodes a space separated sequence of positive integers.
func parseDimensions(field, text string) ([]int, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, &DecodeError{Field: field, Value: text, Reason: "no dimensions given"}
	}

	dim := make([]int, 0, len(tokens))

	for _, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil || v <= 0 {
			return nil, &DecodeError{Field: field, Value: tok, Reason: "dimensions must be positive integers"}
		}

		dim = append(dim, v)
	}

	return dim, nil
}

// parseFloat decodes a single floating point value.
func parseFloat(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &DecodeError{Field: field, Value: text, Reason: "malformed number"}
	}

	return v, nil
}

// parseThreeFloats decodes exactly three whitespace separated floats, as used
// by the ASC_CDL Slope, Offset and Power elements.
func parseThreeFloats(field, text string) ([3]float64, error) {
	values, err := parseFloatList(field, text)
	if err != nil {
		return [3]float64{}, err
	}

	if len(values) != 3 {
		return [3]float64{}, &DecodeError{
			Field:  field,
			Value:  strings.TrimSpace(text),
			Reason: "expected exactly three values",
		}
	}

	return [3]float64{values[0], values[1], values[2]}, nil
}

// parseBoolAttr decodes an optional boolean attribute. An absent attribute
// defaults to false. Accepted tokens are the XML schema booleans true/false
// (case insensitive) and 1/0.
func parseBoolAttr(e *xmltree.Element, name string) (bool, error) {
	raw, ok := e.Attr(name)
	if !ok {
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}

	return false, &DecodeError{Field: name, Value: raw, Reason: "not a valid boolean"}
}

// requiredAttr returns the named attribute or a MissingFieldError.
func requiredAttr(e *xmltree.Element, name string) (string, error) {
	v, ok := e.Attr(name)
	if !ok {
		return "", missingField(name)
	}

	return v, nil
}

// optionalFloatAttr decodes the named attribute as a float when present.
func optionalFloatAttr(e *xmltree.Element, name string) (*float64, error) {
	raw, ok := e.Attr(name)
	if !ok {
		return nil, nil
	}

	v, err := parseFloat(name, raw)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// singleChild returns the unique direct child with the given name, nil when
// absent, and an error when the child occurs more than once.
func singleChild(e *xmltree.Element, name string) (*xmltree.Element, error) {
	children := e.ChildrenNamed(name)

	switch len(children) {
	case 0:
		return nil, nil
	case 1:
		return children[0], nil
	}

	return nil, errors.Errorf("expected at most one %s element, found %d", name, len(children))
}

// childText returns the trimmed text of the unique named child, or "" when
// the child is absent.
func childText(e *xmltree.Element, name string) (string, error) {
	child, err := singleChild(e, name)
	if err != nil || child == nil {
		return "", err
	}

	return strings.TrimSpace(child.Text()), nil
}

// descriptions collects the text of every Description child in source order.
func descriptions(e *xmltree.Element) []string {
	var out []string

	for _, d := range e.ChildrenNamed("Description") {
		out = append(out, strings.TrimSpace(d.Text()))
	}

	return out
}
