// Package xmltree builds a minimal in-memory element tree on top of the
// encoding/xml tokenizer. It exposes exactly what the CLF parser needs from
// an element: local tag name, namespace, attributes, ordered children and
// concatenated text content.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoRoot is returned when the document contains no root element.
var ErrNoRoot = errors.New("document has no root element")

// Element is one XML element with its ordered children.
type Element struct {
	Name      string
	Namespace string
	Children  []*Element

	attrs map[string]string
	text  strings.Builder
}

// Attr returns the value of the named attribute and whether it was present.
// Namespace prefixes on attributes are ignored, CLF attributes are unprefixed.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Text returns the concatenated character data directly inside the element.
func (e *Element) Text() string {
	return e.text.String()
}

// Child returns the first direct child with the given local name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// ChildrenNamed returns all direct children with the given local name, in
// document order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element

	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}

	return out
}

// Parse reads a whole XML document and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.Wrap(err, "unable to tokenise document")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			elem := &Element{
				Name:      t.Name.Local,
				Namespace: t.Name.Space,
				attrs:     make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				elem.attrs[a.Name.Local] = a.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("document has more than one root element")
				}
				root = elem
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, elem)
			}

			stack = append(stack, elem)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}

	return root, nil
}

// ParseString parses a document held in a string.
func ParseString(text string) (*Element, error) {
	return Parse(strings.NewReader(text))
}

// ParseBytes parses a document held in a byte slice.
func ParseBytes(data []byte) (*Element, error) {
	return Parse(bytes.NewReader(data))
}
