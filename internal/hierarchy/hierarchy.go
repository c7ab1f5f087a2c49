// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hierarchy folds assembled tiles into their boards.
package hierarchy

import (
	"github.com/pdiddy/cboard-builder/internal/slug"
	"github.com/pdiddy/cboard-builder/pkg/types"
)

// Builder accumulates the boards of one run and attaches tiles to them.
// Add every board before attaching any tile: a tile only finds boards that
// already exist.
type Builder struct {
	boards []types.Board
	index  map[string]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// AddBoard appends a board. When two boards share a slug the first keeps
// receiving tiles.
func (b *Builder) AddBoard(board types.Board) {
	if board.Tiles == nil {
		board.Tiles = []types.Tile{}
	}
	key := slug.Slugify(board.Name)
	if _, ok := b.index[key]; !ok {
		b.index[key] = len(b.boards)
	}
	b.boards = append(b.boards, board)
}

// Attach appends tile to the board whose slugged name equals the slugged
// tile board reference. It reports false, and drops the tile, when no
// board matches.
func (b *Builder) Attach(tile types.Tile) bool {
	i, ok := b.index[slug.Slugify(tile.Board)]
	if !ok {
		return false
	}
	b.boards[i].Tiles = append(b.boards[i].Tiles, tile)
	return true
}

// Len returns the number of boards.
func (b *Builder) Len() int {
	return len(b.boards)
}

// Document returns the assembled document. The result shares no slices
// with the builder.
func (b *Builder) Document() types.Document {
	doc := types.NewDocument()
	for _, board := range b.boards {
		board.Tiles = append([]types.Tile{}, board.Tiles...)
		doc.Advanced = append(doc.Advanced, board)
	}
	return doc
}

// Build runs both passes over complete inputs: every board first, then
// every tile. It returns the document and the number of dropped tiles.
func Build(boards []types.Board, tiles []types.Tile) (types.Document, int) {
	b := NewBuilder()
	for _, board := range boards {
		b.AddBoard(board)
	}
	dropped := 0
	for _, tile := range tiles {
		if !b.Attach(tile) {
			dropped++
		}
	}
	return b.Document(), dropped
}
