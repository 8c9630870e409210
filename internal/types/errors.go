package types

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedDocument = errors.New("malformed types document")
	ErrMissingName       = errors.New("type element has no name")
	ErrDuplicateName     = errors.New("duplicate type name")
	ErrInvalidField      = errors.New("invalid field value")
	ErrUnknownField      = errors.New("unknown field")
)

func unknownField(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}
