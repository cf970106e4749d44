// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/toolshed/internal/color"
	"github.com/pdiddy/toolshed/internal/store"
	"github.com/pdiddy/toolshed/pkg/types"
)

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Convert colors and manage a saved palette",
}

var colorInfoCmd = &cobra.Command{
	Use:   "info <#RRGGBB>",
	Short: "Show a color in hex, RGB, and HSL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := color.Describe(args[0])
		if err != nil {
			return err
		}
		return printColor(cmd, info)
	},
}

var colorComplementCmd = &cobra.Command{
	Use:   "complement <#RRGGBB>",
	Short: "Show the complementary color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := color.Complementary(args[0])
		if err != nil {
			return err
		}
		return printColor(cmd, info)
	},
}

func printColor(cmd *cobra.Command, info color.Info) error {
	out := cmd.OutOrStdout()
	if jsonFlag(cmd) {
		return writeJSON(out, info)
	}
	fmt.Fprintf(out, "HEX  %s\nRGB  %s\nHSL  %s\n", info.Hex, info.RGB, info.HSL)
	return nil
}

// --- palette subcommands ---

var colorPaletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage the saved color palette",
	Long: `Palette keeps a list of colors between runs in the local store
(see store.dir in the configuration). Colors are kept in the order added;
adding a color twice has no effect.`,
}

var colorPaletteAddCmd = &cobra.Command{
	Use:   "add <#RRGGBB>...",
	Short: "Add colors to the palette",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			for _, a := range args {
				rgb, err := color.ParseHex(a)
				if err != nil {
					return err
				}
				added, err := s.AddColor(cmd.Context(), rgb.Hex())
				if err != nil {
					return err
				}
				if added {
					fmt.Fprintf(cmd.OutOrStdout(), "added:   %s\n", rgb.Hex())
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "skipped: %s (already in palette)\n", rgb.Hex())
				}
			}
			return nil
		})
	},
}

var colorPaletteRemoveCmd = &cobra.Command{
	Use:   "remove <#RRGGBB>",
	Short: "Remove a color from the palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Rows that are not valid colors can still be removed verbatim.
		hex := args[0]
		if rgb, err := color.ParseHex(hex); err == nil {
			hex = rgb.Hex()
		}
		return withStore(func(s *store.Store) error {
			if err := s.RemoveColor(cmd.Context(), hex); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed: %s\n", hex)
			return nil
		})
	},
}

var colorPaletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the palette",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			palette, err := s.Palette(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonFlag(cmd) {
				infos := make([]color.Info, 0, len(palette))
				for _, c := range palette {
					info, err := color.Describe(c.Hex)
					if err != nil {
						continue
					}
					infos = append(infos, info)
				}
				return writeJSON(out, infos)
			}
			printPalette(out, palette)
			return nil
		})
	},
}

func printPalette(out io.Writer, palette []types.PaletteColor) {
	if len(palette) == 0 {
		fmt.Fprintln(out, "Palette is empty.")
		return
	}
	for _, c := range palette {
		info, err := color.Describe(c.Hex)
		if err != nil {
			fmt.Fprintf(out, "%-8s  (not a valid color)\n", c.Hex)
			continue
		}
		fmt.Fprintf(out, "%-8s  %-18s  %s\n", info.Hex, info.RGB, info.HSL)
	}
}

func init() {
	colorInfoCmd.Flags().Bool("json", false, "output as JSON")
	colorComplementCmd.Flags().Bool("json", false, "output as JSON")
	colorPaletteListCmd.Flags().Bool("json", false, "output as JSON")

	colorPaletteCmd.AddCommand(colorPaletteAddCmd)
	colorPaletteCmd.AddCommand(colorPaletteRemoveCmd)
	colorPaletteCmd.AddCommand(colorPaletteListCmd)

	colorCmd.AddCommand(colorInfoCmd)
	colorCmd.AddCommand(colorComplementCmd)
	colorCmd.AddCommand(colorPaletteCmd)
	rootCmd.AddCommand(colorCmd)
}
