package nav

import (
	"errors"
	"fmt"
)

var ErrScreenNotFound = errors.New("screen not found")

type NavigationError struct {
	Target string
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate to %q: %v", e.Target, ErrScreenNotFound)
}

func (e *NavigationError) Unwrap() error {
	return ErrScreenNotFound
}
