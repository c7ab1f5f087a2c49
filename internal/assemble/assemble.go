// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble turns sheet rows into CBoard boards and tiles. Board rows
// map one-to-one to boards; tile rows are validated, slugged, styled, and
// matched against the image corpus.
package assemble

import (
	"strings"

	"github.com/pdiddy/cboard-builder/internal/colors"
	"github.com/pdiddy/cboard-builder/internal/match"
	"github.com/pdiddy/cboard-builder/internal/sheet"
	"github.com/pdiddy/cboard-builder/internal/slug"
	"github.com/pdiddy/cboard-builder/pkg/types"
)

// SkipReason explains why a tile row produced no tile.
type SkipReason string

const (
	SkipMissingBoard SkipReason = "missing-board"
	SkipMissingLabel SkipReason = "missing-label"
)

// Outcome is the result of assembling one tile row: either a kept tile or
// a skip with its reason.
type Outcome struct {
	// Reason is empty for kept tiles.
	Reason SkipReason

	Tile types.Tile

	// Image is the matched candidate, or nil. The caller copies the file
	// and then sets Tile.Image with ImagePath.
	Image *types.ImageCandidate

	// Score is the match score of Image.
	Score float64

	// Renamed mirrors the sheet's "renamed in drive" flag. It is
	// informational and never causes a skip.
	Renamed bool
}

// Kept reports whether the row produced a tile.
func (o Outcome) Kept() bool {
	return o.Reason == ""
}

func skipped(reason SkipReason, renamed bool) Outcome {
	return Outcome{Reason: reason, Renamed: renamed}
}

// Assembler holds everything needed to build boards and tiles for one run.
type Assembler struct {
	BoardColumns types.BoardColumns
	TileColumns  types.TileColumns
	Owner        types.BoardOwner
	Policy       *colors.Policy
	Matcher      match.Matcher
	Corpus       *match.Corpus
}

// New returns an Assembler configured from cfg over the given corpus.
func New(cfg types.BuildConfig, policy *colors.Policy, corpus *match.Corpus) *Assembler {
	if policy == nil {
		policy = colors.Default()
	}
	return &Assembler{
		BoardColumns: cfg.BoardColumns,
		TileColumns:  cfg.TileColumns,
		Owner:        cfg.Owner,
		Policy:       policy,
		Matcher:      match.Matcher{Limit: cfg.Match.Limit, MinScore: cfg.Match.MinScore},
		Corpus:       corpus,
	}
}

// Board builds a board from a boards sheet row. A row without a grid name
// yields a board with an empty ID.
func (a *Assembler) Board(row sheet.Row) types.Board {
	name := row.Get(a.BoardColumns.Name)
	return types.Board{
		ID:       slug.Slugify(name),
		Name:     name,
		NameKey:  name,
		Author:   a.Owner.Author,
		Email:    a.Owner.Email,
		IsPublic: true,
		Hidden:   false,
		Tiles:    []types.Tile{},
	}
}

// Tile builds a tile from a tiles sheet row. Rows without a board or a
// label are skipped.
func (a *Assembler) Tile(row sheet.Row) Outcome {
	cols := a.TileColumns
	renamed := strings.EqualFold(row.Get(cols.Renamed), "oui")

	board := row.Get(cols.Board)
	if board == "" {
		return skipped(SkipMissingBoard, renamed)
	}
	label := row.Get(cols.Label)
	if label == "" {
		return skipped(SkipMissingLabel, renamed)
	}

	boardSlug := slug.Slugify(board)
	tile := types.Tile{
		ID:     boardSlug + "_" + slug.Slugify(label),
		Board:  boardSlug,
		Row:    types.StringPtr(row.Get(cols.Row)),
		Column: types.StringPtr(row.Get(cols.Column)),
		Label:  label,
	}
	if load := row.Get(cols.LoadBoard); load != "" {
		loadSlug := slug.Slugify(load)
		tile.LoadBoard = &loadSlug
	}

	pair := a.Policy.Resolve(row.Get(cols.Category))
	tile.FontColor = pair.FontColor
	tile.BackgroundColor = pair.BackgroundColor
	if tile.IsFolder() {
		tile.BackgroundColor = colors.FolderBackgroundColor
	}

	out := Outcome{Tile: tile, Renamed: renamed}
	if res, ok := a.Matcher.Best(NormalizeLabel(label), a.Corpus); ok {
		img := res.Candidate
		out.Image = &img
		out.Score = res.Score
	}
	return out
}

// NormalizeLabel prepares a label for matching: lower-case, hyphens read as
// spaces.
func NormalizeLabel(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), "-", " ")
}

// ImagePath returns the public path of a copied image, e.g.
// "/symbols/interpretable/chat.png".
func ImagePath(symbolsDir, file string) string {
	dir := strings.Trim(symbolsDir, "/")
	if dir == "" {
		return "/" + file
	}
	return "/" + dir + "/" + file
}
