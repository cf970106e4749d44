// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the toolshed CLI: a catalog of small
// converters, calculators, and generators, one subcommand per tool.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/toolshed/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the effective configuration, loaded before any subcommand runs.
var cfg = types.DefaultConfig()

// rootCmd is the base command for the toolshed CLI.
var rootCmd = &cobra.Command{
	Use:   "toolshed",
	Short: "Everyday converters, calculators, and generators",
	Long: `toolshed bundles small, self-contained utilities: a unit converter,
loan and margin calculators, color tools, text transforms, checksums,
password generation, link helpers, and QR/barcode rendering.

Each tool is a subcommand. Tools are independent; only the color palette
and short links are kept between runs, in a local SQLite database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		loaded, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = loaded
		slog.Debug("configuration loaded", "file", viper.ConfigFileUsed(), "store_dir", cfg.Store.Dir)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./toolshed.yaml or ~/.config/toolshed/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostics to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("toolshed")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "toolshed"))
		}
	}

	viper.SetEnvPrefix("TOOLSHED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig registers every key's default, so environment overrides are
// visible to Unmarshal, and decodes the merged view.
func loadConfig(v *viper.Viper) (types.Config, error) {
	d := types.DefaultConfig()
	defaults := map[string]any{
		"units.precision":        d.Units.Precision,
		"password.length":        d.Password.Length,
		"password.uppercase":     d.Password.Uppercase,
		"password.lowercase":     d.Password.Lowercase,
		"password.numbers":       d.Password.Numbers,
		"password.symbols":       d.Password.Symbols,
		"image.timeout":          d.Image.Timeout,
		"image.user_agent":       d.Image.UserAgent,
		"image.qr_endpoint":      d.Image.QREndpoint,
		"image.barcode_endpoint": d.Image.BarcodeEndpoint,
		"image.qr_size":          d.Image.QRSize,
		"image.max_retries":      d.Image.MaxRetries,
		"store.dir":              d.Store.Dir,
		"shortener.base_url":     d.Shortener.BaseURL,
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	var out types.Config
	if err := v.Unmarshal(&out); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return out, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
