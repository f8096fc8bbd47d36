package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gorewood/dayone2jekyll/internal/output"
)

// addLogFlags registers the diagnostic logging flags.
func addLogFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("verbose", false, "Log each written post to stderr")
	cmd.PersistentFlags().String("log-format", "auto", "Diagnostic log format: auto, human, json")
}

// newLogger builds the stderr diagnostics logger from the command's flags.
// Only warnings are shown unless --verbose is set.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("log-format")

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	errW := cmd.ErrOrStderr()
	isTTY := output.IsTTY(errW)
	human := strings.EqualFold(format, "human") || (!strings.EqualFold(format, "json") && isTTY)

	if human {
		writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = errW
			w.NoColor = !isTTY
		})
		return zerolog.New(writer).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(errW).Level(level).With().Timestamp().Logger()
}

// newServeLogger logs to stderr; stdout carries the MCP protocol.
func newServeLogger(cmd *cobra.Command) zerolog.Logger {
	if cmd.ErrOrStderr() == os.Stdout {
		return zerolog.Nop()
	}
	return newLogger(cmd)
}
