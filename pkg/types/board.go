// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the cboard-builder pipeline:
// the CBoard document model (Document, Board, Tile), the image match corpus
// (ImageCandidate), and stage configuration.
package types

// ImageCandidate is one file of the image directory, prepared for fuzzy
// matching. It is built once per run and never modified.
type ImageCandidate struct {
	// File is the base filename including extension (e.g. "chat_noir.png").
	File string `json:"file" yaml:"file"`

	// Name is File without its extension, underscores replaced by spaces
	// (e.g. "chat noir").
	Name string `json:"name" yaml:"name"`
}

// Board is a named grid of tiles in the CBoard document.
type Board struct {
	// ID is the slug of the grid name, unique within a run. Tiles join on it.
	ID string `json:"id" yaml:"id"`

	// Name is the grid name as written in the boards sheet.
	Name string `json:"name" yaml:"name"`

	// NameKey mirrors Name; CBoard uses it as the translation key.
	NameKey string `json:"nameKey" yaml:"nameKey"`

	Author string `json:"author" yaml:"author"`
	Email  string `json:"email" yaml:"email"`

	IsPublic bool `json:"isPublic" yaml:"isPublic"`
	Hidden   bool `json:"hidden" yaml:"hidden"`

	// Tiles holds the board's tiles in sheet order. Only the hierarchy
	// builder appends to it.
	Tiles []Tile `json:"tiles" yaml:"tiles"`
}

// Tile is a single pictogram on a board, optionally opening another board.
type Tile struct {
	// ID is "<boardSlug>_<labelSlug>". Duplicate labels on one board collide.
	ID string `json:"id" yaml:"id"`

	// Board is the slug of the board this tile belongs to.
	Board string `json:"board" yaml:"board"`

	// LoadBoard is the slug of the board opened on click, or nil.
	LoadBoard *string `json:"loadBoard" yaml:"loadBoard"`

	Row    *string `json:"row" yaml:"row"`
	Column *string `json:"column" yaml:"column"`

	// Label is the text shown under the pictogram.
	Label string `json:"label" yaml:"label"`

	// Image is the public path of the copied symbol (e.g.
	// "/symbols/interpretable/chat.png"), or nil when no image matched.
	Image *string `json:"image" yaml:"image"`

	FontColor       string `json:"fontColor" yaml:"fontColor"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
}

// IsFolder reports whether clicking the tile opens another board.
func (t Tile) IsFolder() bool {
	return t.LoadBoard != nil
}

// Document is the top-level CBoard boards file.
type Document struct {
	// Beginner is always empty in this pipeline.
	Beginner []Board `json:"beginner" yaml:"beginner"`
	Advanced []Board `json:"advanced" yaml:"advanced"`
}

// NewDocument returns a Document whose board lists are empty, not nil, so
// they serialize as [] instead of null.
func NewDocument() Document {
	return Document{
		Beginner: []Board{},
		Advanced: []Board{},
	}
}

// TileCount returns the number of tiles across all advanced boards.
func (d Document) TileCount() int {
	n := 0
	for _, b := range d.Advanced {
		n += len(b.Tiles)
	}
	return n
}

// ColorPair is the styling applied to a tile.
type ColorPair struct {
	FontColor       string `json:"fontColor" yaml:"fontColor"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
