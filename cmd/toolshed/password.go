// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/toolshed/internal/password"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate random passwords",
	Long: `Password draws characters uniformly from the selected classes using a
cryptographic random source and rates the result. Defaults come from the
password section of the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := password.Options{
			Length:    cfg.Password.Length,
			Uppercase: cfg.Password.Uppercase,
			Lowercase: cfg.Password.Lowercase,
			Numbers:   cfg.Password.Numbers,
			Symbols:   cfg.Password.Symbols,
		}
		flags := cmd.Flags()
		if flags.Changed("length") {
			opts.Length, _ = flags.GetInt("length")
		}
		for name, dst := range map[string]*bool{
			"upper":   &opts.Uppercase,
			"lower":   &opts.Lowercase,
			"numbers": &opts.Numbers,
			"symbols": &opts.Symbols,
		} {
			if flags.Changed(name) {
				*dst, _ = flags.GetBool(name)
			}
		}
		count, _ := flags.GetInt("count")
		if count < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", count)
		}

		type generated struct {
			Password string            `json:"password"`
			Strength password.Strength `json:"strength"`
		}
		var all []generated
		for i := 0; i < count; i++ {
			pw, err := password.Generate(opts)
			if err != nil {
				return err
			}
			all = append(all, generated{Password: pw, Strength: password.Rate(pw)})
		}

		w := cmd.OutOrStdout()
		if jsonFlag(cmd) {
			return writeJSON(w, all)
		}
		for _, g := range all {
			fmt.Fprintf(w, "%s  (%s)\n", g.Password, g.Strength)
		}
		return nil
	},
}

func init() {
	passwordCmd.Flags().IntP("length", "l", 16, "password length")
	passwordCmd.Flags().Bool("upper", true, "include upper-case letters")
	passwordCmd.Flags().Bool("lower", true, "include lower-case letters")
	passwordCmd.Flags().Bool("numbers", true, "include digits")
	passwordCmd.Flags().Bool("symbols", true, "include symbols")
	passwordCmd.Flags().IntP("count", "n", 1, "number of passwords to generate")
	passwordCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(passwordCmd)
}
