package clf

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyDocument is returned when the document contains no root element.
	ErrEmptyDocument = errors.New("document is empty")
	// ErrNotProcessList is returned when the root element is not a ProcessList.
	ErrNotProcessList = errors.New("root element must be ProcessList")
)

// DecodeError reports an attribute or text value that cannot be decoded into
// its typed representation, e.g. an unrecognised enum token or a malformed
// number. Malformed values are never downgraded to defaults.
type DecodeError struct {
	Field  string
	Value  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s value %q: %s", e.Field, e.Value, e.Reason)
}

// ShapeError reports an Array whose flat value count does not match its
// declared dimensions, or whose dimensions do not fit the owning node kind.
type ShapeError struct {
	Dim    []int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid array shape %v: %s", e.Dim, e.Reason)
}

// MissingFieldError reports a required attribute or child element that is
// absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// UnknownNodeError reports a ProcessList child tag that is not a known
// process node kind. The whole document is rejected, skipping a node would
// silently change the meaning of the transform.
type UnknownNodeError struct {
	Tag string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown process node tag %q", e.Tag)
}

// UnsupportedVersionError reports a compCLFversion outside the supported
// range, or one that cannot be parsed at all.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported CLF version %q", e.Version)
}

// missingField builds a MissingFieldError for the given attribute or child
// element name.
func missingField(name string) error {
	return &MissingFieldError{Field: name}
}
