// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a full build: read both sheets and the image
// directory, assemble boards then tiles, copy matched images, and write the
// CBoard document.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/cboard-builder/internal/assemble"
	"github.com/pdiddy/cboard-builder/internal/catalog"
	"github.com/pdiddy/cboard-builder/internal/colors"
	"github.com/pdiddy/cboard-builder/internal/export"
	"github.com/pdiddy/cboard-builder/internal/hierarchy"
	"github.com/pdiddy/cboard-builder/internal/match"
	"github.com/pdiddy/cboard-builder/internal/sheet"
	"github.com/pdiddy/cboard-builder/pkg/types"
)

// Summary holds the counters of a build run.
type Summary struct {
	Boards int

	// Tiles counts rows that produced a tile.
	Tiles    int
	Attached int

	SkippedMissingBoard int
	SkippedMissingLabel int

	// Dropped counts tiles whose board reference matched no board.
	Dropped int

	ImagesMatched   int
	ImagesUnmatched int

	// Unmatched lists the IDs of tiles that got no image, in sheet order.
	Unmatched []string

	DocumentPath string
}

// Skipped returns the number of tile rows rejected before assembly.
func (s Summary) Skipped() int {
	return s.SkippedMissingBoard + s.SkippedMissingLabel
}

// Rows returns the number of tile rows processed.
func (s Summary) Rows() int {
	return s.Tiles + s.Skipped()
}

// Pipeline holds the collaborators of a build.
type Pipeline struct {
	Config types.BuildConfig
	Policy *colors.Policy
	Copier catalog.Copier
}

// New returns a Pipeline for cfg that reads the colour table from
// cfg.ColorsFile and copies images from cfg.ImagesDir into the export tree.
func New(cfg types.BuildConfig) (*Pipeline, error) {
	policy, err := colors.LoadPolicy(cfg.ColorsFile)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Config: cfg,
		Policy: policy,
		Copier: catalog.DirCopier{
			SrcDir:  cfg.ImagesDir,
			DestDir: export.ImagesDir(cfg.ExportDir, cfg.SymbolsDir),
		},
	}, nil
}

type inputs struct {
	boards     []sheet.Row
	tiles      []sheet.Row
	candidates []types.ImageCandidate
}

// load reads the three inputs concurrently; they do not depend on each
// other.
func (p *Pipeline) load(ctx context.Context) (inputs, error) {
	var in inputs
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := sheet.Read(p.Config.BoardsSheet, p.Config.SheetName)
		if err != nil {
			return fmt.Errorf("boards sheet: %w", err)
		}
		in.boards = rows
		return nil
	})
	g.Go(func() error {
		rows, err := sheet.Read(p.Config.TilesSheet, p.Config.SheetName)
		if err != nil {
			return fmt.Errorf("tiles sheet: %w", err)
		}
		in.tiles = rows
		return nil
	})
	g.Go(func() error {
		candidates, err := catalog.Load(p.Config.ImagesDir)
		if err != nil {
			return err
		}
		in.candidates = candidates
		return nil
	})
	if err := g.Wait(); err != nil {
		return inputs{}, err
	}
	return in, nil
}

// Build assembles the document without writing it. Matched images are
// copied as each tile is processed; a copy failure aborts the build.
func (p *Pipeline) Build(ctx context.Context, w io.Writer) (types.Document, Summary, error) {
	var summary Summary

	in, err := p.load(ctx)
	if err != nil {
		return types.Document{}, summary, err
	}
	fmt.Fprintf(w, "loaded %d board rows, %d tile rows, %d images\n",
		len(in.boards), len(in.tiles), len(in.candidates))

	asm := assemble.New(p.Config, p.Policy, match.Prepare(in.candidates))
	builder := hierarchy.NewBuilder()

	for _, row := range in.boards {
		builder.AddBoard(asm.Board(row))
		summary.Boards++
	}

	for i, row := range in.tiles {
		select {
		case <-ctx.Done():
			return types.Document{}, summary, ctx.Err()
		default:
		}

		// Row 1 is the header.
		rowNum := i + 2

		out := asm.Tile(row)
		switch out.Reason {
		case assemble.SkipMissingBoard:
			fmt.Fprintf(w, "skipped: row %d (no board)\n", rowNum)
			summary.SkippedMissingBoard++
			continue
		case assemble.SkipMissingLabel:
			fmt.Fprintf(w, "skipped: row %d (no label)\n", rowNum)
			summary.SkippedMissingLabel++
			continue
		}
		summary.Tiles++

		tile := out.Tile
		if out.Image != nil {
			if err := p.Copier.Copy(out.Image.File); err != nil {
				return types.Document{}, summary, fmt.Errorf("copying image for %s: %w", tile.ID, err)
			}
			path := assemble.ImagePath(p.Config.SymbolsDir, out.Image.File)
			tile.Image = &path
			summary.ImagesMatched++
			fmt.Fprintf(w, "matched: %s -> %s (%.2f)\n", tile.ID, out.Image.File, out.Score)
		} else {
			summary.ImagesUnmatched++
			summary.Unmatched = append(summary.Unmatched, tile.ID)
			fmt.Fprintf(w, "no image: %s\n", tile.ID)
		}

		if builder.Attach(tile) {
			summary.Attached++
		} else {
			summary.Dropped++
			fmt.Fprintf(w, "dropped: %s (unknown board %q)\n", tile.ID, tile.Board)
		}
	}

	return builder.Document(), summary, nil
}

// Run builds the document and writes it under the export directory.
func (p *Pipeline) Run(ctx context.Context, w io.Writer) (Summary, error) {
	doc, summary, err := p.Build(ctx, w)
	if err != nil {
		return summary, err
	}

	path := export.DocumentPath(p.Config.ExportDir, p.Config.Format)
	if err := export.Write(path, doc, p.Config.Format); err != nil {
		return summary, fmt.Errorf("writing document: %w", err)
	}
	summary.DocumentPath = path

	fmt.Fprintf(w, "\nBuild summary: %d boards, %d tiles attached, %d dropped (unknown board), %d skipped (%d no board, %d no label)\n",
		summary.Boards, summary.Attached, summary.Dropped, summary.Skipped(),
		summary.SkippedMissingBoard, summary.SkippedMissingLabel)
	fmt.Fprintf(w, "Images: %d matched, %d unmatched\n", summary.ImagesMatched, summary.ImagesUnmatched)
	fmt.Fprintf(w, "Wrote %s\n", path)
	return summary, nil
}

// Run is a convenience wrapper building a Pipeline from cfg and running it.
func Run(ctx context.Context, cfg types.BuildConfig, w io.Writer) (Summary, error) {
	p, err := New(cfg)
	if err != nil {
		return Summary{}, err
	}
	return p.Run(ctx, w)
}
