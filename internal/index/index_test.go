// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cboard-builder/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "index")
	store, err := NewStore(types.IndexConfig{IndexDir: dir, MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dir
}

func tile(board, id, label string) types.Tile {
	return types.Tile{
		ID: id, Board: board, Label: label,
		FontColor: "#000000", BackgroundColor: "rgb(255, 255, 255)",
	}
}

func sampleDocument() types.Document {
	img := "/symbols/interpretable/chat_noir.png"
	folder := tile("accueil", "accueil_animaux", "Animaux")
	folder.LoadBoard = types.StringPtr("animaux")

	chat := tile("animaux", "animaux_chat-noir", "Chat noir")
	chat.Image = &img
	chat.Row = types.StringPtr("1")

	doc := types.NewDocument()
	doc.Advanced = append(doc.Advanced,
		types.Board{ID: "accueil", Name: "Accueil", NameKey: "Accueil", IsPublic: true,
			Tiles: []types.Tile{folder}},
		types.Board{ID: "animaux", Name: "Animaux", NameKey: "Animaux", IsPublic: true,
			Tiles: []types.Tile{chat, tile("animaux", "animaux_elephant", "Éléphant")}},
		types.Board{ID: "vide", Name: "Vide", NameKey: "Vide", IsPublic: true,
			Tiles: []types.Tile{}},
	)
	return doc
}

// --- tests ---

func TestNewStoreCreatesDBFile(t *testing.T) {
	_, dir := testStore(t)
	_, err := os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err)
}

func TestIngest(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	run, err := store.Ingest(ctx, sampleDocument(), "export/src/api/boards.json")
	require.NoError(t, err)
	assert.Equal(t, 3, run.Boards)
	assert.Equal(t, 3, run.Tiles)
	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)

	last, err := store.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, run, last)
}

func TestIngestReplacesContent(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	_, err := store.Ingest(ctx, sampleDocument(), "first")
	require.NoError(t, err)

	doc := types.NewDocument()
	doc.Advanced = append(doc.Advanced, types.Board{ID: "seul", Name: "Seul",
		Tiles: []types.Tile{tile("seul", "seul_pain", "Pain")}})
	second, err := store.Ingest(ctx, doc, "second")
	require.NoError(t, err)

	boards, err := store.Boards(ctx)
	require.NoError(t, err)
	assert.Equal(t, []BoardResult{{ID: "seul", Name: "Seul", Tiles: 1}}, boards)

	last, err := store.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
}

func TestLastRunEmpty(t *testing.T) {
	store, _ := testStore(t)
	_, err := store.LastRun(context.Background())
	assert.ErrorContains(t, err, "index is empty")
}

func TestBoards(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()
	_, err := store.Ingest(ctx, sampleDocument(), "src")
	require.NoError(t, err)

	boards, err := store.Boards(ctx)
	require.NoError(t, err)
	assert.Equal(t, []BoardResult{
		{ID: "accueil", Name: "Accueil", Tiles: 1},
		{ID: "animaux", Name: "Animaux", Tiles: 2},
		{ID: "vide", Name: "Vide", Tiles: 0},
	}, boards)
}

func TestLookup(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()
	_, err := store.Ingest(ctx, sampleDocument(), "src")
	require.NoError(t, err)

	tests := []struct {
		name string
		opts LookupOptions
		want []string
	}{
		{"single term", LookupOptions{Query: "chat"}, []string{"animaux_chat-noir"}},
		{"all terms required", LookupOptions{Query: "noir chat"}, []string{"animaux_chat-noir"}},
		{"accent insensitive", LookupOptions{Query: "ELEPHANT"}, []string{"animaux_elephant"}},
		{"label substring across boards", LookupOptions{Query: "a"}, []string{"accueil_animaux", "animaux_chat-noir", "animaux_elephant"}},
		{"board filter", LookupOptions{Board: "Animaux"}, []string{"animaux_chat-noir", "animaux_elephant"}},
		{"query and board", LookupOptions{Query: "animaux", Board: "accueil"}, []string{"accueil_animaux"}},
		{"max results", LookupOptions{Query: "a", MaxResults: 1}, []string{"accueil_animaux"}},
		{"no match", LookupOptions{Query: "xyzzy"}, nil},
		{"like wildcards are literal", LookupOptions{Query: "%"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := store.Lookup(ctx, tt.opts)
			require.NoError(t, err)
			var ids []string
			for _, r := range results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestLookupStoresAllFields(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()
	_, err := store.Ingest(ctx, sampleDocument(), "src")
	require.NoError(t, err)

	results, err := store.Lookup(ctx, LookupOptions{Query: "chat"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "animaux", r.Board)
	assert.Equal(t, "Animaux", r.BoardName)
	assert.Equal(t, "Chat noir", r.Label)
	require.NotNil(t, r.Image)
	assert.Equal(t, "/symbols/interpretable/chat_noir.png", *r.Image)
	require.NotNil(t, r.Row)
	assert.Equal(t, "1", *r.Row)
	assert.Nil(t, r.Column)
	assert.Nil(t, r.LoadBoard)
	assert.Equal(t, "#000000", r.FontColor)

	folder, err := store.Lookup(ctx, LookupOptions{Board: "accueil"})
	require.NoError(t, err)
	require.Len(t, folder, 1)
	require.NotNil(t, folder[0].LoadBoard)
	assert.Equal(t, "animaux", *folder[0].LoadBoard)
}

func TestLookupEmptyQueryError(t *testing.T) {
	store, _ := testStore(t)
	_, err := store.Lookup(context.Background(), LookupOptions{Query: "  "})
	assert.Error(t, err)
}
