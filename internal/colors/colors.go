// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package colors maps grammatical categories to tile colours following the
// modified Fitzgerald key.
package colors

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cboard-builder/pkg/types"
)

const (
	// DefaultFontColor applies when no category matches.
	DefaultFontColor = "#000000"

	// DefaultBackgroundColor applies when no category matches.
	DefaultBackgroundColor = "rgb(255, 255, 255)"

	// FolderBackgroundColor marks tiles that open another board.
	FolderBackgroundColor = "rgb(187, 222, 251)"
)

//go:embed fitzgerald.yaml
var fitzgeraldYAML []byte

// Entry is one row of the colour table.
type Entry struct {
	Category        string `json:"category" yaml:"category"`
	FontColor       string `json:"fontColor" yaml:"fontColor"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
}

// Policy resolves categories against a fixed colour table.
type Policy struct {
	entries []Entry
}

// Default returns the policy built from the embedded Fitzgerald key.
func Default() *Policy {
	p, err := parse(fitzgeraldYAML)
	if err != nil {
		panic(fmt.Sprintf("colors: embedded table: %v", err))
	}
	return p
}

// LoadPolicy reads a colour table from a YAML file. An empty path returns
// the embedded table.
func LoadPolicy(path string) (*Policy, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading colour table: %w", err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing colour table %s: %w", path, err)
	}
	return p, nil
}

// NewPolicy returns a policy over entries, in lookup order.
func NewPolicy(entries []Entry) *Policy {
	return &Policy{entries: append([]Entry(nil), entries...)}
}

func parse(data []byte) (*Policy, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Category) == "" {
			return nil, fmt.Errorf("entry %d has no category", i)
		}
	}
	return NewPolicy(entries), nil
}

// Entries returns a copy of the table in lookup order.
func (p *Policy) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// Resolve returns the colours for category, compared case-insensitively.
// The first matching entry wins. An empty or unknown category yields the
// default pair.
func (p *Policy) Resolve(category string) types.ColorPair {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultColors()
	}
	for _, e := range p.entries {
		if strings.EqualFold(e.Category, category) {
			return types.ColorPair{FontColor: e.FontColor, BackgroundColor: e.BackgroundColor}
		}
	}
	return DefaultColors()
}

// DefaultColors returns the fallback pair.
func DefaultColors() types.ColorPair {
	return types.ColorPair{FontColor: DefaultFontColor, BackgroundColor: DefaultBackgroundColor}
}
