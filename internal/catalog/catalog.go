// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog lists the image directory used as the match corpus and
// copies matched images into the export tree.
package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/cboard-builder/pkg/types"
)

// Candidate builds the match entry for a filename: extension stripped,
// underscores replaced by spaces.
func Candidate(file string) types.ImageCandidate {
	name := strings.TrimSuffix(file, filepath.Ext(file))
	return types.ImageCandidate{
		File: file,
		Name: strings.ReplaceAll(name, "_", " "),
	}
}

// Load returns one candidate per regular file in dir, in filename order.
// Subdirectories and dotfiles are ignored.
func Load(dir string) ([]types.ImageCandidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory %s: %w", dir, err)
	}

	candidates := make([]types.ImageCandidate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		candidates = append(candidates, Candidate(entry.Name()))
	}
	return candidates, nil
}

// Copier copies matched images from a source directory into a destination
// directory.
type Copier interface {
	Copy(file string) error
}

// DirCopier copies files between two directories on the local filesystem.
type DirCopier struct {
	SrcDir  string
	DestDir string
}

// Copy copies SrcDir/file to DestDir/file through a temporary file renamed
// into place.
func (c DirCopier) Copy(file string) error {
	src, err := os.Open(filepath.Join(c.SrcDir, file))
	if err != nil {
		return fmt.Errorf("opening %s: %w", file, err)
	}
	defer src.Close()

	if err := os.MkdirAll(c.DestDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", c.DestDir, err)
	}

	tmpFile, err := os.CreateTemp(c.DestDir, ".copy-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, src)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("copying %s: %w", file, copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(c.DestDir, file)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
