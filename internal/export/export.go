// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders the CBoard document to disk.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cboard-builder/pkg/types"
)

const (
	// APIDir is the document directory under the export root.
	APIDir = "src/api"

	// PublicDir holds static assets under the export root.
	PublicDir = "public"

	documentBase = "boards"
)

// DocumentPath returns the path of the rendered document under exportDir.
func DocumentPath(exportDir string, format types.OutputFormat) string {
	ext := ".json"
	if format == types.OutputYAML {
		ext = ".yaml"
	}
	return filepath.Join(exportDir, filepath.FromSlash(APIDir), documentBase+ext)
}

// ImagesDir returns the directory receiving copied symbols.
func ImagesDir(exportDir, symbolsDir string) string {
	return filepath.Join(exportDir, PublicDir, filepath.FromSlash(symbolsDir))
}

// Encode renders doc as JSON (2-space indent, no HTML escaping, trailing
// newline) or YAML.
func Encode(doc types.Document, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.OutputJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return buf.Bytes(), nil
	case types.OutputYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// Write renders doc to path, creating parent directories. The file is
// written to a temporary sibling and renamed into place.
func Write(path string, doc types.Document, format types.OutputFormat) error {
	data, err := Encode(doc, format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".boards-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Read loads a JSON document written by Write.
func Read(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	doc := types.NewDocument()
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}
