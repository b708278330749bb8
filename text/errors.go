package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrUnknownFont is returned when a font name is not recognized.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrUnknownWrap is returned when a wrapping strategy name is not recognized.
	ErrUnknownWrap = errors.New("text: unknown wrapping strategy")

	// ErrUnknownPositioning is returned when an anchor name is not recognized.
	ErrUnknownPositioning = errors.New("text: unknown positioning")
)
