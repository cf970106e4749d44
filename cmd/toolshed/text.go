// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/toolshed/internal/markdown"
	"github.com/pdiddy/toolshed/internal/resume"
	"github.com/pdiddy/toolshed/internal/text"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Transform and inspect text",
	Long: `Text tools read their input from --file, from the remaining arguments,
or from standard input, in that order of preference.`,
}

var textCaseCmd = &cobra.Command{
	Use:   "case <upper|lower|sentence|title> [text...]",
	Short: "Change the case of text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args[1:])
		if err != nil {
			return err
		}
		out, err := text.ConvertCase(in, text.Case(strings.ToLower(args[0])))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var textCountCmd = &cobra.Command{
	Use:   "count [text...]",
	Short: "Count words, characters, sentences, and paragraphs",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		st := text.Count(in)
		w := cmd.OutOrStdout()
		if jsonFlag(cmd) {
			return writeJSON(w, st)
		}
		fmt.Fprintf(w, "Words:                   %d\n", st.Words)
		fmt.Fprintf(w, "Characters:              %d\n", st.Characters)
		fmt.Fprintf(w, "Characters (no spaces):  %d\n", st.CharactersNoSpaces)
		fmt.Fprintf(w, "Sentences:               %d\n", st.Sentences)
		fmt.Fprintf(w, "Paragraphs:              %d\n", st.Paragraphs)
		fmt.Fprintf(w, "Reading time:            %d min\n", st.ReadingMinutes)
		return nil
	},
}

var textBase64Cmd = &cobra.Command{
	Use:   "base64 <encode|decode> [text...]",
	Short: "Encode or decode base64",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args[1:])
		if err != nil {
			return err
		}
		if strings.TrimSpace(in) == "" {
			return fmt.Errorf("please enter text")
		}
		var out string
		switch args[0] {
		case "encode":
			out = text.EncodeBase64(in)
		case "decode":
			if out, err = text.DecodeBase64(in); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown mode %q: use encode or decode", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var textJSONCmd = &cobra.Command{
	Use:   "json <format|minify> [text...]",
	Short: "Pretty-print or minify JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args[1:])
		if err != nil {
			return err
		}
		var out string
		switch args[0] {
		case "format":
			indent, _ := cmd.Flags().GetInt("indent")
			out, err = text.FormatJSON(in, indent)
		case "minify":
			out, err = text.MinifyJSON(in)
		default:
			return fmt.Errorf("unknown mode %q: use format or minify", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var markdownCmd = &cobra.Command{
	Use:   "markdown [text...]",
	Short: "Render basic Markdown to HTML",
	Long: `Markdown renders headings, emphasis, inline code, links, paragraphs,
and list items with simple pattern rewrites. Input HTML is not escaped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.ToHTML(in))
		return nil
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Match resume keywords against a job description",
	RunE: func(cmd *cobra.Command, args []string) error {
		resumePath, _ := cmd.Flags().GetString("resume")
		jobPath, _ := cmd.Flags().GetString("job")
		resumeText, err := os.ReadFile(resumePath)
		if err != nil {
			return fmt.Errorf("reading resume: %w", err)
		}
		jobText, err := os.ReadFile(jobPath)
		if err != nil {
			return fmt.Errorf("reading job description: %w", err)
		}

		m, err := resume.Compare(string(resumeText), string(jobText))
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if jsonFlag(cmd) {
			return writeJSON(w, m)
		}
		fmt.Fprintf(w, "Match: %d%%\n", m.Percentage)
		fmt.Fprintf(w, "Matched (%d): %s\n", len(m.Matched), strings.Join(m.Matched, ", "))
		fmt.Fprintf(w, "Missing (%d): %s\n", len(m.Missing), strings.Join(m.Missing, ", "))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{textCaseCmd, textCountCmd, textBase64Cmd, textJSONCmd, markdownCmd} {
		c.Flags().String("file", "", "read input from this file")
	}
	textCountCmd.Flags().Bool("json", false, "output as JSON")
	textJSONCmd.Flags().Int("indent", 2, "spaces per indentation level")

	resumeCmd.Flags().String("resume", "", "path to the resume text")
	resumeCmd.Flags().String("job", "", "path to the job description text")
	resumeCmd.Flags().Bool("json", false, "output as JSON")
	resumeCmd.MarkFlagRequired("resume")
	resumeCmd.MarkFlagRequired("job")

	textCmd.AddCommand(textCaseCmd)
	textCmd.AddCommand(textCountCmd)
	textCmd.AddCommand(textBase64Cmd)
	textCmd.AddCommand(textJSONCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(markdownCmd)
	rootCmd.AddCommand(resumeCmd)
}
