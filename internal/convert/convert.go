// Package convert writes a parsed Day One journal out as Jekyll posts.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gorewood/dayone2jekyll/internal/dayone"
	"github.com/gorewood/dayone2jekyll/internal/jekyll"
	"github.com/gorewood/dayone2jekyll/internal/output"
)

// PostsSubdir is the directory under a Jekyll site root that holds posts.
const PostsSubdir = "_posts"

// Reporter receives progress while a journal is converted.
type Reporter interface {
	// Journal is called once before any entry is written.
	Journal(name string, count int)
	// Wrote is called after each post file is created.
	Wrote(entry *dayone.Entry, filename string)
}

// Post describes one written post file.
type Post struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Date     string `json:"date"`
}

// Result summarizes a conversion.
type Result struct {
	Journal string `json:"journal"`
	Dir     string `json:"dir"`
	Posts   []Post `json:"posts"`
}

// PostsDir returns the posts directory for a Jekyll site root.
func PostsDir(siteRoot string) string {
	return filepath.Join(siteRoot, PostsSubdir)
}

// Run sorts the journal's entries by creation date and writes each one
// into dir, creating dir if needed. It stops at the first failure; posts
// written before it stay on disk and are listed in the result.
func Run(journal *dayone.Journal, dir string, reporter Reporter) (*Result, error) {
	if reporter == nil {
		reporter = NopReporter{}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("failed to create output directory %s: %v", dir, err), err)
	}

	entries := make([]*dayone.Entry, len(journal.Entries))
	copy(entries, journal.Entries)
	dayone.SortEntries(entries)

	reporter.Journal(journal.Name, len(entries))

	result := &Result{Journal: journal.Name, Dir: dir, Posts: make([]Post, 0, len(entries))}
	for _, entry := range entries {
		name, err := jekyll.WritePost(entry, dir)
		if err != nil {
			return result, err
		}
		reporter.Wrote(entry, name)
		result.Posts = append(result.Posts, Post{
			Filename: name,
			Title:    entry.Title,
			Date:     entry.CreationDate.Format(jekyll.DateLayout),
		})
	}

	return result, nil
}

// NopReporter discards progress.
type NopReporter struct{}

// Journal implements Reporter.
func (NopReporter) Journal(string, int) {}

// Wrote implements Reporter.
func (NopReporter) Wrote(*dayone.Entry, string) {}

// LogReporter reports progress as structured log events.
type LogReporter struct {
	Logger zerolog.Logger
}

// Journal implements Reporter.
func (r LogReporter) Journal(name string, count int) {
	r.Logger.Info().Str("journal", name).Int("entries", count).Msg("converting journal")
}

// Wrote implements Reporter.
func (r LogReporter) Wrote(entry *dayone.Entry, filename string) {
	r.Logger.Debug().
		Str("file", filename).
		Time("created", entry.CreationDate).
		Int("tags", len(entry.Tags)).
		Bool("location", entry.Location != nil).
		Msg("wrote post")
}
