// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/toolshed/internal/links"
	"github.com/pdiddy/toolshed/internal/store"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Shorten URLs and look up video and profile links",
}

var linkShortenCmd = &cobra.Command{
	Use:   "shorten <url>",
	Short: "Create a short link",
	Long: `Shorten stores the URL in the local store under --alias, or under a
random six-character alias when none is given. The printed short URL uses
shortener.base_url from the configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias, _ := cmd.Flags().GetString("alias")
		return withShortener(func(sh *links.Shortener) error {
			link, err := sh.Shorten(cmd.Context(), args[0], alias)
			if errors.Is(err, store.ErrAliasTaken) {
				return fmt.Errorf("alias %q already taken", alias)
			}
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if jsonFlag(cmd) {
				return writeJSON(w, map[string]string{
					"alias":     link.Alias,
					"short_url": sh.ShortURL(link.Alias),
					"long_url":  link.URL,
				})
			}
			fmt.Fprintln(w, sh.ShortURL(link.Alias))
			return nil
		})
	},
}

var linkResolveCmd = &cobra.Command{
	Use:   "resolve <alias|short-url>",
	Short: "Print the long URL behind a short link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withShortener(func(sh *links.Shortener) error {
			link, err := sh.Resolve(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("short link %q not found", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link.URL)
			return nil
		})
	},
}

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved short links, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			all, err := s.Links(cmd.Context())
			if err != nil {
				return err
			}
			if jsonFlag(cmd) {
				return writeJSON(cmd.OutOrStdout(), all)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALIAS\tURL\tCREATED")
			for _, l := range all {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Alias, l.URL, l.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		})
	},
}

var linkDeleteCmd = &cobra.Command{
	Use:   "delete <alias>",
	Short: "Delete a short link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteLink(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted: %s\n", args[0])
			return nil
		})
	},
}

var linkYouTubeCmd = &cobra.Command{
	Use:   "youtube <url|video-id>",
	Short: "Show watch, thumbnail, and embed URLs for a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := links.LookupVideo(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if jsonFlag(cmd) {
			return writeJSON(w, v)
		}
		fmt.Fprintf(w, "Video ID:   %s\nWatch:      %s\nThumbnail:  %s\nEmbed:      %s\n",
			v.ID, v.WatchURL, v.ThumbnailURL, v.EmbedURL)
		return nil
	},
}

var linkInstagramCmd = &cobra.Command{
	Use:   "instagram <username>",
	Short: "Normalise an Instagram username and print its profile URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := links.LookupProfile(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if jsonFlag(cmd) {
			return writeJSON(w, p)
		}
		fmt.Fprintf(w, "@%s  %s\n", p.Username, p.ProfileURL)
		return nil
	},
}

func withShortener(fn func(*links.Shortener) error) error {
	return withStore(func(s *store.Store) error {
		isTaken := func(err error) bool { return errors.Is(err, store.ErrAliasTaken) }
		return fn(links.NewShortener(s, cfg.Shortener.BaseURL, isTaken))
	})
}

func init() {
	linkShortenCmd.Flags().String("alias", "", "custom alias (3-20 letters, digits, dash, underscore)")
	for _, c := range []*cobra.Command{linkShortenCmd, linkListCmd, linkYouTubeCmd, linkInstagramCmd} {
		c.Flags().Bool("json", false, "output as JSON")
	}

	linkCmd.AddCommand(linkShortenCmd)
	linkCmd.AddCommand(linkResolveCmd)
	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkDeleteCmd)
	linkCmd.AddCommand(linkYouTubeCmd)
	linkCmd.AddCommand(linkInstagramCmd)
	rootCmd.AddCommand(linkCmd)
}
