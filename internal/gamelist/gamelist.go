package gamelist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gunmenu/internal/fileutil"

	"github.com/beevik/etree"
)

const (
	NameElement     = "name"
	ImageElement    = "image"
	PathElement     = "path"
	GameListElement = "gameList"
	GameElement     = "game"
)

// Entry is one <game> of a gamelist with its paths resolved against the
// gamelist's directory.
type Entry struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Basename is the ROM filename used for catalog matching.
func (e Entry) Basename() string {
	return filepath.Base(e.Path)
}

type GameList struct {
	document *etree.Document
}

func New() *GameList {
	return &GameList{
		document: emptyGameList(),
	}
}

func emptyGameList() *etree.Document {
	document := etree.NewDocument()
	document.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	document.CreateElement(GameListElement)
	return document
}

func (gl *GameList) Parse(b []byte) error {
	document := etree.NewDocument()
	if err := document.ReadFromBytes(b); err != nil {
		return err
	}
	if document.Root() == nil {
		return fmt.Errorf("gamelist has no root element")
	}

	gl.document = document
	return nil
}

// Load reads and parses the gamelist at path.
func Load(path string) (*GameList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	gl := New()
	if err := gl.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return gl, nil
}

// Entries lists every game with a non-empty path in document order. A path
// starting with "./" is resolved as dir joined with its basename; other paths
// are kept verbatim. Relative images are resolved against dir.
func (gl *GameList) Entries(dir string) []Entry {
	root := gl.document.Root()
	if root == nil {
		return nil
	}

	var entries []Entry
	for _, game := range root.SelectElements(GameElement) {
		path := childText(game, PathElement)
		if path == "" {
			continue
		}

		if strings.HasPrefix(path, "./") {
			path = filepath.Join(dir, filepath.Base(path))
		}

		entries = append(entries, Entry{
			Path:  path,
			Name:  childText(game, NameElement),
			Image: fileutil.ResolveRelative(dir, childText(game, ImageElement)),
		})
	}
	return entries
}

// LoadEntries parses the gamelist at path and returns its entries resolved
// against the gamelist's directory.
func LoadEntries(path string) ([]Entry, error) {
	gl, err := Load(path)
	if err != nil {
		return nil, err
	}
	return gl.Entries(filepath.Dir(path)), nil
}

func childText(game *etree.Element, tag string) string {
	el := game.FindElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
