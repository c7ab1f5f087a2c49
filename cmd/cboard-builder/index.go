// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cboard-builder/internal/export"
	"github.com/pdiddy/cboard-builder/internal/index"
	"github.com/pdiddy/cboard-builder/pkg/types"
)

// --- index command ---

var indexCmd = &cobra.Command{
	Use:   "index [boards.json]",
	Short: "Load a built document into the board index",
	Long: `Index reads a boards.json written by build (default:
<export>/src/api/boards.json) and stores its boards and tiles in a SQLite
database under the index directory. Each run replaces the previous content
and is recorded with a run ID.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	source := export.DocumentPath(viper.GetString("build.export_dir"), types.OutputJSON)
	if len(args) > 0 {
		source = args[0]
	}

	doc, err := export.Read(source)
	if err != nil {
		return err
	}

	store, err := index.NewStore(indexConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Ingest(cmd.Context(), doc, source)
	if err != nil {
		return err
	}
	printSuccess(os.Stdout, "indexed %d boards, %d tiles from %s (run %s)",
		run.Boards, run.Tiles, source, run.ID)
	return nil
}

// --- lookup command ---

var lookupCmd = &cobra.Command{
	Use:   "lookup [query]",
	Short: "Search indexed tiles by label",
	Long: `Lookup searches the board index. Every query term must appear in the
tile label; case and accents are ignored. Use --board to restrict the
search to one board, or --boards to list indexed boards.`,
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	listBoards, _ := cmd.Flags().GetBool("boards")

	store, err := index.NewStore(indexConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	run, err := store.LastRun(ctx)
	if err != nil {
		return err
	}

	if listBoards {
		boards, err := store.Boards(ctx)
		if err != nil {
			return err
		}
		if format != "table" {
			return encode(format, boards)
		}
		printHeading(os.Stdout, "%-30s  %-30s  %s", "ID", "Name", "Tiles")
		for _, b := range boards {
			fmt.Fprintf(os.Stdout, "%-30s  %-30s  %d\n", truncate(b.ID, 30), truncate(b.Name, 30), b.Tiles)
		}
		fmt.Fprintf(os.Stdout, "\n%d boards (run %s, %s)\n", len(boards), run.ID, run.IndexedAt)
		return nil
	}

	board, _ := cmd.Flags().GetString("board")
	limit, _ := cmd.Flags().GetInt("limit")
	opts := index.LookupOptions{
		Query:      strings.Join(args, " "),
		Board:      board,
		MaxResults: limit,
	}
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query or --board")
	}

	results, err := store.Lookup(ctx, opts)
	if err != nil {
		return err
	}
	if format != "table" {
		return encode(format, results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	printHeading(os.Stdout, "%-30s  %-20s  %-40s  %s", "Tile", "Board", "Label", "Image")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for _, r := range results {
		image := "-"
		if r.Image != nil {
			image = *r.Image
		}
		fmt.Fprintf(os.Stdout, "%-30s  %-20s  %-40s  %s\n",
			truncate(r.ID, 30), truncate(r.BoardName, 20), truncate(r.Label, 40), image)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- shared helpers ---

func indexConfig() types.IndexConfig {
	return types.IndexConfig{
		IndexDir:   viper.GetString("index.index_dir"),
		MaxResults: viper.GetInt("index.max_results"),
	}
}

func encode(format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	for _, c := range []*cobra.Command{indexCmd, lookupCmd} {
		c.Flags().String("index-dir", "index", "directory holding the board index")
		c.PreRunE = bindIndexFlags
	}
	indexCmd.Flags().String("export", types.DefaultBuildConfig().ExportDir, "export tree root holding src/api/boards.json")

	lookupCmd.Flags().String("board", "", "restrict results to one board (name or ID)")
	lookupCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	lookupCmd.Flags().Int("max-results", 20, "default maximum number of results")
	lookupCmd.Flags().Bool("boards", false, "list indexed boards instead of tiles")
	lookupCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lookupCmd)
}

// bindIndexFlags binds the flags of the running command only, since index
// and lookup share viper keys.
func bindIndexFlags(cmd *cobra.Command, args []string) error {
	for flag, key := range map[string]string{
		"index-dir":   "index.index_dir",
		"max-results": "index.max_results",
		"export":      "build.export_dir",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", flag, err)
			}
		}
	}
	return nil
}
