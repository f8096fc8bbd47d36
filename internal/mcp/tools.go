package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gorewood/dayone2jekyll/internal/archive"
	"github.com/gorewood/dayone2jekyll/internal/convert"
	"github.com/gorewood/dayone2jekyll/internal/dayone"
	"github.com/gorewood/dayone2jekyll/internal/jekyll"
)

// --- List journals tool ---

// ListJournalsInput is the input for the list_journals tool.
type ListJournalsInput struct {
	Archive string `json:"archive" jsonschema:"path to the Day One export zip"`
}

// ListJournalsOutput is the output for the list_journals tool.
type ListJournalsOutput struct {
	Journals []string `json:"journals" jsonschema:"journal document names, including the .json suffix"`
}

func handleListJournals(_ context.Context, _ *mcp.CallToolRequest, input ListJournalsInput) (*mcp.CallToolResult, ListJournalsOutput, error) {
	if input.Archive == "" {
		return nil, ListJournalsOutput{}, errors.New("archive is required")
	}

	arc, err := archive.Open(input.Archive)
	if err != nil {
		return nil, ListJournalsOutput{}, err
	}
	defer arc.Close() //nolint:errcheck // read-only archive

	journals := arc.Journals()
	if journals == nil {
		journals = []string{}
	}
	return nil, ListJournalsOutput{Journals: journals}, nil
}

// --- List entries tool ---

// ListEntriesInput is the input for the list_entries tool.
type ListEntriesInput struct {
	Archive string `json:"archive" jsonschema:"path to the Day One export zip"`
	Journal string `json:"journal" jsonschema:"journal name without the .json suffix"`
}

// EntrySummary is a simplified entry for output.
type EntrySummary struct {
	Title string   `json:"title"          jsonschema:"display title derived from the creation date"`
	Date  string   `json:"date"           jsonschema:"creation date in the entry's own time zone"`
	Zone  string   `json:"zone"           jsonschema:"IANA time zone of the entry"`
	Tags  []string `json:"tags,omitempty" jsonschema:"entry tags in original order"`
}

// ListEntriesOutput is the output for the list_entries tool.
type ListEntriesOutput struct {
	Journal string         `json:"journal" jsonschema:"journal name"`
	Entries []EntrySummary `json:"entries" jsonschema:"entries sorted by creation date"`
}

func handleListEntries(_ context.Context, _ *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
	journal, err := loadJournal(input.Archive, input.Journal)
	if err != nil {
		return nil, ListEntriesOutput{}, err
	}

	dayone.SortEntries(journal.Entries)
	out := ListEntriesOutput{Journal: journal.Name, Entries: make([]EntrySummary, 0, len(journal.Entries))}
	for _, entry := range journal.Entries {
		out.Entries = append(out.Entries, EntrySummary{
			Title: entry.Title,
			Date:  entry.CreationDate.Format(jekyll.DateLayout),
			Zone:  entry.TimeZone.String(),
			Tags:  entry.Tags,
		})
	}
	return nil, out, nil
}

// --- Convert journal tool ---

// ConvertJournalInput is the input for the convert_journal tool.
type ConvertJournalInput struct {
	Archive string `json:"archive"  jsonschema:"path to the Day One export zip"`
	Journal string `json:"journal"  jsonschema:"journal name without the .json suffix"`
	SiteDir string `json:"site_dir" jsonschema:"Jekyll site root; posts are written to its _posts directory"`
}

// ConvertJournalOutput is the output for the convert_journal tool.
type ConvertJournalOutput struct {
	Journal string         `json:"journal" jsonschema:"journal name"`
	Dir     string         `json:"dir"     jsonschema:"directory the posts were written to"`
	Posts   []convert.Post `json:"posts"   jsonschema:"written posts in creation order"`
}

func handleConvertJournal(logger zerolog.Logger) mcp.ToolHandlerFor[ConvertJournalInput, ConvertJournalOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ConvertJournalInput) (*mcp.CallToolResult, ConvertJournalOutput, error) {
		if input.SiteDir == "" {
			return nil, ConvertJournalOutput{}, errors.New("site_dir is required")
		}

		journal, err := loadJournal(input.Archive, input.Journal)
		if err != nil {
			return nil, ConvertJournalOutput{}, err
		}

		result, err := convert.Run(journal, convert.PostsDir(input.SiteDir), convert.LogReporter{Logger: logger})
		if err != nil {
			return nil, ConvertJournalOutput{}, fmt.Errorf("converting journal %q: %w", input.Journal, err)
		}

		return nil, ConvertJournalOutput{
			Journal: result.Journal,
			Dir:     result.Dir,
			Posts:   result.Posts,
		}, nil
	}
}

// loadJournal opens the archive and parses the named journal.
func loadJournal(archivePath, name string) (*dayone.Journal, error) {
	if archivePath == "" {
		return nil, errors.New("archive is required")
	}
	if name == "" {
		return nil, errors.New("journal is required")
	}

	arc, err := archive.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer arc.Close() //nolint:errcheck // read-only archive

	return arc.ReadJournal(name)
}
