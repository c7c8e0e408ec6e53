package launcher

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

var (
	ErrRomNotFound  = errors.New("rom file not found")
	ErrEmptyArchive = errors.New("archive contains no files")
)

// Preflight checks that romPath exists and, for zip, 7z and rar archives,
// that the archive opens and holds at least one file.
func Preflight(romPath string) error {
	info, err := os.Stat(romPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRomNotFound, romPath)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrRomNotFound, romPath)
	}

	switch strings.ToLower(filepath.Ext(romPath)) {
	case ".zip":
		return checkZIP(romPath)
	case ".7z":
		return check7z(romPath)
	case ".rar":
		return checkRAR(romPath)
	default:
		return nil
	}
}

func checkZIP(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			return nil
		}
	}
	return ErrEmptyArchive
}

func check7z(path string) error {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open 7z: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			return nil
		}
	}
	return ErrEmptyArchive
}

func checkRAR(path string) error {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open rar: %w", err)
	}
	defer r.Close()

	for {
		header, err := r.Next()
		if err == io.EOF {
			return ErrEmptyArchive
		}
		if err != nil {
			return fmt.Errorf("failed to read rar entry: %w", err)
		}
		if !header.IsDir {
			return nil
		}
	}
}
