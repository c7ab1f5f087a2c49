// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cboard-builder/internal/colors"
	"github.com/pdiddy/cboard-builder/internal/match"
	"github.com/pdiddy/cboard-builder/internal/sheet"
	"github.com/pdiddy/cboard-builder/pkg/types"
)

func testAssembler(files ...string) *Assembler {
	cfg := types.DefaultBuildConfig()
	cfg.TileColumns.Category = "Catégorie"
	candidates := make([]types.ImageCandidate, len(files))
	for i, f := range files {
		candidates[i] = types.ImageCandidate{File: f, Name: f[:len(f)-4]}
	}
	policy := colors.NewPolicy([]colors.Entry{
		{Category: "verbe", FontColor: "#111111", BackgroundColor: "green"},
	})
	return New(cfg, policy, match.Prepare(candidates))
}

func tileRow(board, label string) sheet.Row {
	cols := types.DefaultTileColumns()
	return sheet.Row{cols.Board: board, cols.Label: label}
}

func TestBoard(t *testing.T) {
	a := testAssembler()
	got := a.Board(sheet.Row{"Grilles": "Les Animaux"})

	assert.Equal(t, types.Board{
		ID:       "les-animaux",
		Name:     "Les Animaux",
		NameKey:  "Les Animaux",
		Author:   "Interpretable",
		Email:    "interpretable@erasme.io",
		IsPublic: true,
		Hidden:   false,
		Tiles:    []types.Tile{},
	}, got)
}

func TestBoardWithoutName(t *testing.T) {
	got := testAssembler().Board(sheet.Row{})
	assert.Equal(t, "", got.ID)
	assert.NotNil(t, got.Tiles)
}

func TestTileSkips(t *testing.T) {
	a := testAssembler("chat.png")
	tests := []struct {
		name string
		row  sheet.Row
		want SkipReason
	}{
		{"missing board", tileRow("", "Chat"), SkipMissingBoard},
		{"blank board", tileRow("   ", "Chat"), SkipMissingBoard},
		{"missing label", tileRow("Animaux", ""), SkipMissingLabel},
		{"missing both reports board first", tileRow("", ""), SkipMissingBoard},
		{"no columns at all", sheet.Row{}, SkipMissingBoard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := a.Tile(tt.row)
			assert.False(t, out.Kept())
			assert.Equal(t, tt.want, out.Reason)
			assert.Nil(t, out.Image)
		})
	}
}

func TestTileKept(t *testing.T) {
	a := testAssembler("chat.png", "chien.png")
	cols := types.DefaultTileColumns()
	row := sheet.Row{
		cols.Board:   "Animaux",
		cols.Label:   "Chat",
		cols.Row:     "2",
		cols.Column:  "",
		cols.Renamed: "OUI",
	}

	out := a.Tile(row)
	require.True(t, out.Kept())
	assert.True(t, out.Renamed)

	tile := out.Tile
	assert.Equal(t, "animaux_chat", tile.ID)
	assert.Equal(t, "animaux", tile.Board)
	assert.Equal(t, "Chat", tile.Label)
	assert.Nil(t, tile.LoadBoard)
	require.NotNil(t, tile.Row)
	assert.Equal(t, "2", *tile.Row)
	assert.Nil(t, tile.Column)
	assert.Nil(t, tile.Image, "image path is set by the caller after copying")
	assert.Equal(t, colors.DefaultFontColor, tile.FontColor)
	assert.Equal(t, colors.DefaultBackgroundColor, tile.BackgroundColor)

	require.NotNil(t, out.Image)
	assert.Equal(t, "chat.png", out.Image.File)
	assert.Greater(t, out.Score, 0.0)
}

func TestTileRenamedFlagDoesNotFilter(t *testing.T) {
	a := testAssembler()
	row := tileRow("Animaux", "Chat")
	row[types.DefaultTileColumns().Renamed] = "non"

	out := a.Tile(row)
	assert.True(t, out.Kept())
	assert.False(t, out.Renamed)
}

func TestTileFolderOverridesCategoryColor(t *testing.T) {
	a := testAssembler()
	cols := types.DefaultTileColumns()
	row := tileRow("Accueil", "Les animaux")
	row[cols.LoadBoard] = "Animaux"
	row["Catégorie"] = "verbe"

	out := a.Tile(row)
	require.True(t, out.Kept())
	require.NotNil(t, out.Tile.LoadBoard)
	assert.Equal(t, "animaux", *out.Tile.LoadBoard)
	assert.Equal(t, colors.FolderBackgroundColor, out.Tile.BackgroundColor)
	assert.Equal(t, "#111111", out.Tile.FontColor)
}

func TestTileCategoryColor(t *testing.T) {
	a := testAssembler()
	row := tileRow("Actions", "Manger")
	row["Catégorie"] = "Verbe"

	out := a.Tile(row)
	assert.Equal(t, "green", out.Tile.BackgroundColor)
	assert.Equal(t, "#111111", out.Tile.FontColor)
}

func TestTileNoImageMatch(t *testing.T) {
	out := testAssembler("chien.png").Tile(tileRow("Animaux", "xyzzy"))
	require.True(t, out.Kept())
	assert.Nil(t, out.Image)
}

func TestTileHyphenatedLabelMatches(t *testing.T) {
	out := testAssembler("arc en ciel.png", "arbre.png").Tile(tileRow("Météo", "Arc-en-ciel"))
	require.NotNil(t, out.Image)
	assert.Equal(t, "arc en ciel.png", out.Image.File)
	assert.Equal(t, "meteo_arc-en-ciel", out.Tile.ID)
}

func TestDuplicateLabelsCollide(t *testing.T) {
	a := testAssembler()
	first := a.Tile(tileRow("Animaux", "Chat"))
	second := a.Tile(tileRow("Animaux", "chat"))
	assert.Equal(t, first.Tile.ID, second.Tile.ID)
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "arc en ciel", NormalizeLabel("Arc-en-Ciel"))
}

func TestImagePath(t *testing.T) {
	assert.Equal(t, "/symbols/interpretable/chat.png", ImagePath("symbols/interpretable/", "chat.png"))
	assert.Equal(t, "/symbols/chat.png", ImagePath("/symbols", "chat.png"))
	assert.Equal(t, "/chat.png", ImagePath("", "chat.png"))
}
