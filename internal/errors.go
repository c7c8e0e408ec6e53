package internal

import (
	"errors"
	"fmt"
)

// ErrConfig matches every *ConfigError through errors.Is.
var ErrConfig = errors.New("configuration error")

type ConfigError struct {
	File    string // Path of the offending file or directory
	Element string // XML element, if applicable
	Attr    string // XML attribute, if applicable
	Err     error  // Underlying error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Attr != "":
		return fmt.Sprintf("config %s [%s@%s]: %v", e.File, e.Element, e.Attr, e.Err)
	case e.Element != "":
		return fmt.Sprintf("config %s [%s]: %v", e.File, e.Element, e.Err)
	default:
		return fmt.Sprintf("config %s: %v", e.File, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func NewConfigError(file, element, attr string, err error) *ConfigError {
	return &ConfigError{
		File:    file,
		Element: element,
		Attr:    attr,
		Err:     err,
	}
}

var (
	ErrMissingElement   = errors.New("required element missing")
	ErrMissingAttribute = errors.New("required attribute missing")
	ErrNotInteger       = errors.New("value is not an integer")
	ErrNegative         = errors.New("value must not be negative")
	ErrMissingFile      = errors.New("required file missing")
)
