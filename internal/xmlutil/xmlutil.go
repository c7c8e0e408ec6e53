// Package xmlutil wraps etree lookups so that every missing or malformed
// element surfaces as an *internal.ConfigError naming the file and element.
package xmlutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gunmenu/internal"

	"github.com/beevik/etree"
)

// LoadDocument reads and parses path. A missing file or a parse failure is a
// ConfigError.
func LoadDocument(path string) (*etree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internal.NewConfigError(path, "", "", internal.ErrMissingFile)
		}
		return nil, internal.NewConfigError(path, "", "", err)
	}
	return ParseDocument(path, data)
}

func ParseDocument(path string, data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, internal.NewConfigError(path, "", "", fmt.Errorf("parsing xml: %w", err))
	}
	if doc.Root() == nil {
		return nil, internal.NewConfigError(path, "", "", fmt.Errorf("document has no root element"))
	}
	return doc, nil
}

func RequireElement(file string, parent *etree.Element, tag string) (*etree.Element, error) {
	el := parent.SelectElement(tag)
	if el == nil {
		return nil, internal.NewConfigError(file, tag, "", internal.ErrMissingElement)
	}
	return el, nil
}

func RequireAttr(file string, el *etree.Element, attr string) (string, error) {
	a := el.SelectAttr(attr)
	if a == nil {
		return "", internal.NewConfigError(file, el.Tag, attr, internal.ErrMissingAttribute)
	}
	return a.Value, nil
}

// IntAttr returns a required non-negative integer attribute.
func IntAttr(file string, el *etree.Element, attr string) (int, error) {
	raw, err := RequireAttr(file, el, attr)
	if err != nil {
		return 0, err
	}
	return parseNonNegative(file, el.Tag, attr, raw)
}

// IntText parses the trimmed text of el as a non-negative integer.
func IntText(file string, el *etree.Element) (int, error) {
	return parseNonNegative(file, el.Tag, "", el.Text())
}

func parseNonNegative(file, element, attr, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, internal.NewConfigError(file, element, attr, fmt.Errorf("%w: %q", internal.ErrNotInteger, raw))
	}
	if v < 0 {
		return 0, internal.NewConfigError(file, element, attr, fmt.Errorf("%w: %d", internal.ErrNegative, v))
	}
	return v, nil
}

// ChildText returns the trimmed text of the first child named tag, or "".
func ChildText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
