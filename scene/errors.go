package scene

import (
	"errors"
	"fmt"
)

// Sentinel errors for scene loading and rendering.
var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("scene: unknown file format")

	// ErrUnknownKey is returned when a scene file sets a key the scene
	// model does not have.
	ErrUnknownKey = errors.New("scene: unknown key")

	// ErrInvalidSize is returned when the scene width or height is not
	// positive.
	ErrInvalidSize = errors.New("scene: invalid size")

	// ErrUnknownKind is returned for an item kind that cannot be drawn.
	ErrUnknownKind = errors.New("scene: unknown item kind")

	// ErrPointCount is returned when an item has the wrong number of points.
	ErrPointCount = errors.New("scene: wrong number of points")

	// ErrUnknownClipOp is returned for an unrecognized clip operation.
	ErrUnknownClipOp = errors.New("scene: unknown clip operation")

	// ErrUnknownOffset is returned for an unrecognized image offset.
	ErrUnknownOffset = errors.New("scene: unknown image offset")
)

// ItemError reports which item of a scene failed.
type ItemError struct {
	Index int
	Kind  Kind
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("scene: item %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// ClipError reports which clip operation of a scene failed.
type ClipError struct {
	Index int
	Op    ClipOpKind
	Err   error
}

func (e *ClipError) Error() string {
	return fmt.Sprintf("scene: clip %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *ClipError) Unwrap() error { return e.Err }
