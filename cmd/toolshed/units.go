// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/toolshed/internal/units"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Convert length, weight, volume, and temperature units",
	Long: `Units converts values between units of one category. Length, weight,
and volume scale through a base unit (meter, gram, liter); temperature
converts through Celsius.`,
}

// --- convert subcommand ---

var unitsConvertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a value between two units",
	Long: `Convert parses value as a number and converts it. When --from or --to
is omitted, the first two units of the category are used (for length: mm
to cm). Run "toolshed units list" to see unit symbols. Put "--" before a
negative value so it is not read as a flag: units convert -c temperature -- -40`,
	Args: cobra.ExactArgs(1),
	RunE: runUnitsConvert,
}

func runUnitsConvert(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	precision, _ := cmd.Flags().GetInt("precision")
	if precision <= 0 {
		precision = cfg.Units.Precision
	}

	sel, err := units.NewSelection(units.Category(strings.ToLower(category)))
	if err != nil {
		return err
	}
	if from != "" {
		if sel, err = sel.WithFrom(strings.ToLower(from)); err != nil {
			return err
		}
	}
	if to != "" {
		if sel, err = sel.WithTo(strings.ToLower(to)); err != nil {
			return err
		}
	}

	f := units.Formatter{Precision: precision}
	result, err := f.Convert(sel.Category, sel.From, sel.To, args[0])
	if errors.Is(err, units.ErrInvalidInput) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Invalid input. Please provide a valid number.")
		return err
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonFlag(cmd) {
		return writeJSON(out, result)
	}
	fmt.Fprintln(out, result.String())
	if show, _ := cmd.Flags().GetBool("reference"); show {
		fmt.Fprintln(out, result.Reference())
	}
	return nil
}

// --- list subcommand ---

var unitsListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List categories and their units",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUnitsList,
}

// categoryListing is the YAML/JSON shape of "units list".
type categoryListing struct {
	Category units.Category `json:"category" yaml:"category"`
	Units    []units.Unit   `json:"units" yaml:"units"`
}

func runUnitsList(cmd *cobra.Command, args []string) error {
	categories := units.Categories()
	if len(args) == 1 {
		categories = []units.Category{units.Category(strings.ToLower(args[0]))}
	}

	listings := make([]categoryListing, 0, len(categories))
	for _, c := range categories {
		list, err := units.ListUnits(c)
		if err != nil {
			return err
		}
		listings = append(listings, categoryListing{Category: c, Units: list})
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return writeJSON(out, listings)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(listings)
	case "", "table":
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
	}

	for i, l := range listings {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", l.Category)
		for _, u := range l.Units {
			if u.Scale != 0 {
				fmt.Fprintf(out, "  %-5s %-12s %g\n", u.Symbol, u.Label, u.Scale)
			} else {
				fmt.Fprintf(out, "  %-5s %s\n", u.Symbol, u.Label)
			}
		}
	}
	return nil
}

func init() {
	unitsConvertCmd.Flags().StringP("category", "c", string(units.Length), "category: length, weight, volume, or temperature")
	unitsConvertCmd.Flags().StringP("from", "f", "", "source unit symbol (default: first unit of the category)")
	unitsConvertCmd.Flags().StringP("to", "t", "", "destination unit symbol (default: second unit of the category)")
	unitsConvertCmd.Flags().Int("precision", 0, "fractional digits before trailing zeros are stripped (0 = config, default 6)")
	unitsConvertCmd.Flags().Bool("reference", false, "also print how the value was computed")
	unitsConvertCmd.Flags().Bool("json", false, "output the result as JSON")

	unitsListCmd.Flags().String("format", "table", "output format: table, yaml, or json")

	unitsCmd.AddCommand(unitsConvertCmd)
	unitsCmd.AddCommand(unitsListCmd)
	rootCmd.AddCommand(unitsCmd)
}
