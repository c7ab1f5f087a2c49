// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/cboard-builder/internal/slug"
)

// LookupOptions filters a tile lookup. Query terms are folded and must all
// appear in the tile label; Board restricts results to one board.
type LookupOptions struct {
	Query      string
	Board      string
	MaxResults int
}

// IsEmpty reports whether no filter is set.
func (o LookupOptions) IsEmpty() bool {
	return strings.TrimSpace(o.Query) == "" && strings.TrimSpace(o.Board) == ""
}

// TileResult is one indexed tile.
type TileResult struct {
	ID              string  `db:"id" json:"id"`
	Board           string  `db:"board" json:"board"`
	BoardName       string  `db:"board_name" json:"boardName"`
	Label           string  `db:"label" json:"label"`
	LoadBoard       *string `db:"load_board" json:"loadBoard"`
	Row             *string `db:"row_value" json:"row"`
	Column          *string `db:"column_value" json:"column"`
	Image           *string `db:"image" json:"image"`
	FontColor       string  `db:"font_color" json:"fontColor"`
	BackgroundColor string  `db:"background_color" json:"backgroundColor"`
}

// BoardResult summarizes one indexed board.
type BoardResult struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Tiles int    `db:"tiles" json:"tiles"`
}

// Lookup returns tiles matching opts in document order.
func (s *Store) Lookup(ctx context.Context, opts LookupOptions) ([]TileResult, error) {
	if opts.IsEmpty() {
		return nil, fmt.Errorf("lookup needs a query or a board")
	}

	limit := opts.MaxResults
	if limit <= 0 {
		limit = s.maxResults
	}

	var b strings.Builder
	var args []any

	b.WriteString(`SELECT t.id, t.board, b.name AS board_name, t.label, t.load_board,
		t.row_value, t.column_value, t.image, t.font_color, t.background_color
		FROM tiles t JOIN boards b ON b.position = t.board_position WHERE 1=1`)

	for _, term := range strings.Fields(searchKey(opts.Query)) {
		b.WriteString(` AND t.search_key LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(term)+"%")
	}
	if board := strings.TrimSpace(opts.Board); board != "" {
		b.WriteString(` AND t.board = ?`)
		args = append(args, slug.Slugify(board))
	}

	b.WriteString(` ORDER BY t.board_position, t.position LIMIT ?`)
	args = append(args, limit)

	var results []TileResult
	if err := s.db.SelectContext(ctx, &results, b.String(), args...); err != nil {
		return nil, fmt.Errorf("querying tiles: %w", err)
	}
	return results, nil
}

// Boards lists indexed boards with their tile counts in document order.
func (s *Store) Boards(ctx context.Context) ([]BoardResult, error) {
	var results []BoardResult
	err := s.db.SelectContext(ctx, &results,
		`SELECT b.id, b.name, COUNT(t.seq) AS tiles
		 FROM boards b LEFT JOIN tiles t ON t.board_position = b.position
		 GROUP BY b.position ORDER BY b.position`)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}
	return results, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
