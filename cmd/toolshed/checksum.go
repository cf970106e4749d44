// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/toolshed/internal/checksum"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum [text...]",
	Short: "Compute hex digests of text or a file",
	Long: `Checksum hashes the input with md5 and sha256 by default. Use --algo
to choose others: md5, sha1, sha256, sha512, sha3-256, blake2b-256, or all.
Files are streamed, so large inputs are fine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		algos, _ := cmd.Flags().GetStringSlice("algo")
		path, _ := cmd.Flags().GetString("file")

		var selected []checksum.Algorithm
		for _, a := range algos {
			if strings.EqualFold(a, "all") {
				selected = checksum.All
				break
			}
			selected = append(selected, checksum.Algorithm(strings.ToLower(a)))
		}

		var r io.Reader
		switch {
		case path != "":
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer f.Close()
			r = f
		case len(args) > 0:
			r = strings.NewReader(strings.Join(args, " "))
		default:
			r = cmd.InOrStdin()
		}

		digests, err := checksum.Sum(r, selected...)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if jsonFlag(cmd) {
			return writeJSON(w, digests)
		}
		for _, d := range digests {
			fmt.Fprintf(w, "%-12s %s\n", d.Algorithm, d.Hex)
		}
		return nil
	},
}

func init() {
	checksumCmd.Flags().StringSlice("algo", nil, "algorithms to compute (default md5,sha256; \"all\" for every one)")
	checksumCmd.Flags().String("file", "", "hash this file instead of text")
	checksumCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(checksumCmd)
}
