// Package main provides the entry point for the dayone2jekyll CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/dayone2jekyll/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// newPrinter builds the printer for a command from its persistent flags.
func newPrinter(cmd *cobra.Command) *output.Printer {
	colorMode, _ := cmd.Flags().GetString("color")
	isTTY := output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the dayone2jekyll CLI.
func newRootCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "dayone2jekyll ARCHIVE",
		Short: "Convert a Day One export into Jekyll posts",
		Long: `dayone2jekyll - Convert a Day One journal export into Jekyll posts.

Reads a Day One export zip (one <Journal>.json document per journal) and
writes one dated markdown post per entry, with title, date, location and
tags in the front matter.

Examples:
  dayone2jekyll export.zip --list                                  # List journals in the export
  dayone2jekyll export.zip --journal "Daily Journal"                # Print entry dates
  dayone2jekyll export.zip --journal "Daily Journal" --jekyll site  # Write site/_posts/*.md`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			opts.archive = args[0]
			return runConvert(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.list, "list", false, "List the journals in the archive")
	cmd.Flags().StringVar(&opts.journal, "journal", "", "Journal to process (name without .json)")
	cmd.Flags().StringVar(&opts.jekyll, "jekyll", "", "Jekyll site root; posts are written to <dir>/_posts")

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	addLogFlags(cmd)

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newServeCmd())

	return cmd
}
