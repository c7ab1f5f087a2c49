// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cboard-builder/internal/colors"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the category colour table",
	Long: `Colors prints the table mapping grammatical categories to tile colours.
Without --colors it shows the built-in Fitzgerald key. Categories that are
not listed get the default colours; folder tiles always use the folder
background.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("colors")
		format, _ := cmd.Flags().GetString("format")

		policy, err := colors.LoadPolicy(path)
		if err != nil {
			return err
		}
		if format != "table" {
			return encode(format, policy.Entries())
		}

		printHeading(os.Stdout, "%-20s  %-22s  %s", "Category", "Font", "Background")
		for _, e := range policy.Entries() {
			fmt.Fprintf(os.Stdout, "%-20s  %-22s  %s\n", e.Category, e.FontColor, e.BackgroundColor)
		}
		def := colors.DefaultColors()
		fmt.Fprintf(os.Stdout, "\n%-20s  %-22s  %s\n", "(default)", def.FontColor, def.BackgroundColor)
		fmt.Fprintf(os.Stdout, "%-20s  %-22s  %s\n", "(folder)", def.FontColor, colors.FolderBackgroundColor)
		return nil
	},
}

func init() {
	colorsCmd.Flags().String("colors", "", "YAML colour table replacing the built-in one")
	colorsCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	rootCmd.AddCommand(colorsCmd)
}
