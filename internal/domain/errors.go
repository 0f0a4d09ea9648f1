package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedColumnToken     = errors.New("malformed column token")
	ErrUnsupportedGeneratorKind = errors.New("unsupported generator kind")
	ErrDuplicateColumn          = errors.New("duplicate column name")
	ErrEmptyTable               = errors.New("no data to write")
	ErrIO                       = errors.New("io error")
)

type MalformedColumnTokenError struct {
	Token string
}

func (e *MalformedColumnTokenError) Error() string {
	return fmt.Sprintf("invalid column format %q, use 'name:type'", e.Token)
}

func (e *MalformedColumnTokenError) Is(target error) bool {
	return target == ErrMalformedColumnToken
}

type UnsupportedGeneratorKindError struct {
	Kind string
}

func (e *UnsupportedGeneratorKindError) Error() string {
	return fmt.Sprintf("unsupported fake type: %q", e.Kind)
}

func (e *UnsupportedGeneratorKindError) Is(target error) bool {
	return target == ErrUnsupportedGeneratorKind
}

type DuplicateColumnError struct {
	Name string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name: %s", e.Name)
}

func (e *DuplicateColumnError) Is(target error) bool {
	return target == ErrDuplicateColumn
}

// IOError wraps a filesystem failure hit while writing output.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
