// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cboard-builder CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cboard-builder CLI.
var rootCmd = &cobra.Command{
	Use:   "cboard-builder",
	Short: "Build CBoard communication boards from pictogram spreadsheets",
	Long: `cboard-builder turns two spreadsheets (one listing boards, one listing
tiles) and a directory of pictogram images into the boards.json document
consumed by CBoard.

Each tile is matched to the closest image filename, coloured by its
category, and attached to its board. Use build to produce the export tree,
index and lookup to search a built document, and colors to inspect the
colour table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("loading %s: %w", envFile, err)
			}
		} else {
			fmt.Fprintln(os.Stderr, "Loaded environment from", envFile)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cboard-builder.yaml or ~/.config/cboard-builder/config.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "environment file loaded before running a command")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cboard-builder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cboard-builder"))
		}
	}

	viper.SetEnvPrefix("CBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}
