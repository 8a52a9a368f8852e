package core

import (
	"errors"
	"fmt"
)

// Error kinds raised while building an object graph.
var (
	ErrNotFound               = errors.New("location is neither a file nor a directory")
	ErrUnsupportedFormat      = errors.New("no format matches this document")
	ErrDecode                 = errors.New("could not decode document")
	ErrEmptyDecode            = errors.New("document decoded to nothing")
	ErrConstruction           = errors.New("type cannot be constructed")
	ErrNamingCollision        = errors.New("object name collides with an external property")
	ErrCollectionIncompatible = errors.New("collection is not compatible with the property type")
)

// Error carries the location and target type alongside one of the Err*
// kinds. errors.Is matches both the kind and the wrapped cause.
type Error struct {
	Kind error
	Path string
	Type string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("compose: %s %s (%s)", e.Kind, e.Path, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError builds an *Error for the given kind.
func NewError(kind error, path, typ string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Type: typ, Err: cause}
}

// PropertyError names the external property whose resolution failed.
type PropertyError struct {
	Property string
	Path     string
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %s at %s: %v", e.Property, e.Path, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}
