package screen

import (
	"errors"
	"fmt"
	"slices"
)

var ErrDuplicateScreen = errors.New("duplicate screen key")

// Table is the immutable set of compiled screens. Screens refer to each
// other by key only.
type Table struct {
	screens map[string]*Screen
	keys    []string
}

// NewTable builds a table from already compiled screens.
func NewTable(screens ...*Screen) (*Table, error) {
	t := &Table{screens: make(map[string]*Screen, len(screens))}
	for _, s := range screens {
		if err := t.add(s); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(s *Screen) error {
	if _, exists := t.screens[s.Key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateScreen, s.Key)
	}
	t.screens[s.Key] = s
	t.keys = append(t.keys, s.Key)
	return nil
}

func (t *Table) Get(key string) (*Screen, bool) {
	s, ok := t.screens[key]
	return s, ok
}

func (t *Table) Has(key string) bool {
	_, ok := t.screens[key]
	return ok
}

// Keys returns screen keys in compilation order.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

func (t *Table) Len() int {
	return len(t.keys)
}

// DanglingTargets lists NavigateTo targets that name no compiled screen.
func (t *Table) DanglingTargets() []string {
	var dangling []string
	seen := make(map[string]bool)

	for _, key := range t.keys {
		for _, z := range t.screens[key].Zones {
			if z.Action.Kind != ActionNavigate || t.Has(z.Action.Target) || seen[z.Action.Target] {
				continue
			}
			seen[z.Action.Target] = true
			dangling = append(dangling, z.Action.Target)
		}
	}
	return dangling
}
