package theme

import "errors"

var (
	ErrInvalidFont   = errors.New("invalid font tuple")
	ErrInvalidColour = errors.New("invalid colour")
	ErrEmptyGrid     = errors.New("grid capacity must be at least 1")
	ErrZeroSize      = errors.New("width and height must be positive")
	ErrInvalidRect   = errors.New("zone rectangle must satisfy x1<x2 and y1<y2")
	ErrInvalidRoot   = errors.New("root must be <screen name=\"main\">")
	ErrMissingAssets = errors.New("required theme files missing")
)
