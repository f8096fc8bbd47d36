// Package main provides the entry point for the dayone2jekyll CLI.
package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gorewood/dayone2jekyll/internal/archive"
	"github.com/gorewood/dayone2jekyll/internal/convert"
	"github.com/gorewood/dayone2jekyll/internal/dayone"
	"github.com/gorewood/dayone2jekyll/internal/jekyll"
	"github.com/gorewood/dayone2jekyll/internal/output"
)

// convertOptions holds the root command's flags.
type convertOptions struct {
	archive string
	list    bool
	journal string
	jekyll  string
}

// runConvert executes the root command.
func runConvert(cmd *cobra.Command, opts convertOptions) error {
	printer := newPrinter(cmd)
	logger := newLogger(cmd)

	if err := validateConvertFlags(printer, opts); err != nil {
		return err
	}

	arc, err := archive.Open(opts.archive)
	if err != nil {
		printer.Error(err)
		return err
	}
	defer arc.Close() //nolint:errcheck // read-only archive

	logger.Debug().Str("archive", opts.archive).Msg("opened archive")

	if opts.list {
		if err := listJournals(printer, arc); err != nil {
			return err
		}
	}

	if opts.journal == "" {
		return nil
	}

	journal, err := arc.ReadJournal(opts.journal)
	if err != nil {
		printer.Error(err)
		return err
	}

	if opts.jekyll == "" {
		return listEntries(printer, journal)
	}
	return writePosts(printer, logger, journal, opts.jekyll)
}

// validateConvertFlags checks that the flags describe something to do.
func validateConvertFlags(printer *output.Printer, opts convertOptions) error {
	if opts.jekyll != "" && opts.journal == "" {
		err := output.NewUserError("--jekyll requires --journal")
		printer.Error(err)
		return err
	}
	if !opts.list && opts.journal == "" {
		err := output.NewUserError("specify --list or --journal NAME")
		printer.Error(err)
		return err
	}
	return nil
}

// listJournals prints the journal documents in archive order.
func listJournals(printer *output.Printer, arc *archive.Archive) error {
	journals := arc.Journals()
	if printer.IsJSON() {
		if journals == nil {
			journals = []string{}
		}
		return printer.WriteJSON(map[string]any{"journals": journals})
	}
	for _, name := range journals {
		printer.Println(name)
	}
	return nil
}

// listEntries prints each entry's local creation date-time, oldest first.
func listEntries(printer *output.Printer, journal *dayone.Journal) error {
	dayone.SortEntries(journal.Entries)

	if printer.IsJSON() {
		dates := make([]string, 0, len(journal.Entries))
		for _, entry := range journal.Entries {
			dates = append(dates, entry.CreationDate.Format(jekyll.DateLayout))
		}
		return printer.WriteJSON(map[string]any{"journal": journal.Name, "entries": dates})
	}

	for _, entry := range journal.Entries {
		printer.Println(entry.CreationDate.Format(jekyll.DateLayout))
	}
	return nil
}

// writePosts converts the journal into <siteRoot>/_posts.
func writePosts(printer *output.Printer, logger zerolog.Logger, journal *dayone.Journal, siteRoot string) error {
	reporter := &cliReporter{printer: printer, log: convert.LogReporter{Logger: logger}}

	result, err := convert.Run(journal, convert.PostsDir(siteRoot), reporter)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	return printer.Success(map[string]any{
		"message": formatSummary(len(result.Posts), result.Journal, result.Dir),
	})
}

// cliReporter echoes written posts in human mode and logs every event.
type cliReporter struct {
	printer *output.Printer
	log     convert.LogReporter
}

// Journal implements convert.Reporter.
func (r *cliReporter) Journal(name string, count int) {
	r.log.Journal(name, count)
}

// Wrote implements convert.Reporter.
func (r *cliReporter) Wrote(entry *dayone.Entry, filename string) {
	r.log.Wrote(entry, filename)
	if !r.printer.IsJSON() {
		r.printer.Dim("  %s  %s", filename, entry.Title)
	}
}
