// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cboard-builder/internal/pipeline"
	"github.com/pdiddy/cboard-builder/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build boards.json and copy matched pictograms",
	Long: `Build reads the boards sheet and the tiles sheet (.csv or .xlsx), matches
every tile label against the image directory, and writes the CBoard
document to <export>/src/api/boards.json. Matched images are copied to
<export>/public/symbols/interpretable/.

Rows without a board or a label are skipped; tiles whose board is not in
the boards sheet are dropped. Both are reported but do not fail the build.`,
	RunE: runBuild,
}

// buildFlags maps flag names to their viper keys.
var buildFlags = map[string]string{
	"boards":      "build.boards_sheet",
	"tiles":       "build.tiles_sheet",
	"sheet":       "build.sheet_name",
	"images":      "build.images_dir",
	"export":      "build.export_dir",
	"symbols-dir": "build.symbols_dir",
	"colors":      "build.colors_file",
	"format":      "build.format",
	"limit":       "build.match.limit",
	"min-score":   "build.match.min_score",
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	summary, err := pipeline.Run(cmd.Context(), cfg, os.Stdout)
	if err != nil {
		return err
	}

	out := os.Stdout
	if len(summary.Unmatched) > 0 {
		printWarning(out, "%d tile(s) without an image: %s",
			len(summary.Unmatched), strings.Join(summary.Unmatched, ", "))
	}
	if summary.Dropped > 0 {
		printWarning(out, "%d tile(s) dropped: board not in %s", summary.Dropped, cfg.BoardsSheet)
	}
	printSuccess(out, "%d boards, %d tiles written to %s",
		summary.Boards, summary.Attached, summary.DocumentPath)
	return nil
}

// buildConfig layers flags, environment, and config file over the defaults.
func buildConfig() (types.BuildConfig, error) {
	cfg := types.DefaultBuildConfig()
	cfg.BoardsSheet = viper.GetString("build.boards_sheet")
	cfg.TilesSheet = viper.GetString("build.tiles_sheet")
	cfg.SheetName = viper.GetString("build.sheet_name")
	cfg.ImagesDir = viper.GetString("build.images_dir")
	cfg.ExportDir = viper.GetString("build.export_dir")
	cfg.SymbolsDir = viper.GetString("build.symbols_dir")
	cfg.ColorsFile = viper.GetString("build.colors_file")
	cfg.Format = types.OutputFormat(viper.GetString("build.format"))
	cfg.Match.Limit = viper.GetInt("build.match.limit")
	cfg.Match.MinScore = viper.GetFloat64("build.match.min_score")

	for key, target := range map[string]any{
		"build.board_columns": &cfg.BoardColumns,
		"build.tile_columns":  &cfg.TileColumns,
		"build.owner":         &cfg.Owner,
	} {
		if !viper.IsSet(key) {
			continue
		}
		if err := viper.UnmarshalKey(key, target); err != nil {
			return types.BuildConfig{}, fmt.Errorf("reading %s from config: %w", key, err)
		}
	}

	switch cfg.Format {
	case types.OutputJSON, types.OutputYAML:
	default:
		return types.BuildConfig{}, fmt.Errorf("unsupported format %q: use json or yaml", cfg.Format)
	}
	return cfg, nil
}

func init() {
	defaults := types.DefaultBuildConfig()

	buildCmd.Flags().String("boards", defaults.BoardsSheet, "boards sheet (.csv or .xlsx)")
	buildCmd.Flags().String("tiles", defaults.TilesSheet, "tiles sheet (.csv or .xlsx)")
	buildCmd.Flags().String("sheet", "", "worksheet name for .xlsx inputs (default: first sheet)")
	buildCmd.Flags().String("images", defaults.ImagesDir, "directory of pictogram images")
	buildCmd.Flags().String("export", defaults.ExportDir, "export tree root (contains src/api/, public/)")
	buildCmd.Flags().String("symbols-dir", defaults.SymbolsDir, "public path of copied images")
	buildCmd.Flags().String("colors", "", "YAML colour table replacing the built-in one")
	buildCmd.Flags().String("format", string(defaults.Format), "document format: json or yaml")
	buildCmd.Flags().Int("limit", defaults.Match.Limit, "maximum ranked image candidates per tile")
	buildCmd.Flags().Float64("min-score", defaults.Match.MinScore, "discard image candidates scoring at or below this")

	for flag, key := range buildFlags {
		if err := viper.BindPFlag(key, buildCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding --%s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(buildCmd)
}
