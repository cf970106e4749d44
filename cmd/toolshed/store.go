// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/toolshed/internal/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Export or import the saved palette and short links",
	Long: `Store manages the local SQLite database that holds the color palette
and short links. Export writes <store.dir>/export.yaml or export.json;
import merges such a file back in, skipping entries already present and
rows with a malformed color, alias, or URL.`,
}

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the store to YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return withStore(func(s *store.Store) error {
			path, err := s.Export(cmd.Context(), store.Format(format))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		})
	},
}

var storeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a YAML or JSON export into the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			res, err := s.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d color(s) and %d link(s), skipped %d\n",
				res.Colors, res.Links, res.Skipped)
			return nil
		})
	},
}

// withStore opens the configured store for the duration of fn.
func withStore(fn func(*store.Store) error) error {
	s, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

func init() {
	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeImportCmd)
	rootCmd.AddCommand(storeCmd)
}
