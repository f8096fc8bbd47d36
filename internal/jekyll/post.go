// Package jekyll renders journal entries as Jekyll posts.
package jekyll

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/dayone2jekyll/internal/dayone"
	"github.com/gorewood/dayone2jekyll/internal/output"
)

const (
	// DateLayout is the front matter date format, in the entry's zone.
	DateLayout = "2006-01-02 15:04:05"

	// FilenameLayout names post files: year-month-day-monthname-day.
	FilenameLayout = "2006-01-02-January-02"

	postExt  = ".md"
	postPerm = 0o644
)

// FormatPost renders an entry as front matter followed by its text.
// Title and text are written as-is.
func FormatPost(entry *dayone.Entry) string {
	var builder strings.Builder

	writeFrontmatter(&builder, entry)
	builder.WriteString(entry.Text)

	return builder.String()
}

// writeFrontmatter writes the delimited header block.
func writeFrontmatter(builder *strings.Builder, entry *dayone.Entry) {
	builder.WriteString("---\n")
	fmt.Fprintf(builder, "title: %s\n", entry.Title)
	fmt.Fprintf(builder, "date: %s\n", entry.CreationDate.Format(DateLayout))
	writeExtras(builder, entry)
	builder.WriteString("---\n")
}

// frontmatterExtras holds the optional header keys, in output order.
type frontmatterExtras struct {
	Location *locationBlock `yaml:"location,omitempty"`
	Tags     []string       `yaml:"tags,omitempty"`
}

type locationBlock struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// writeExtras writes the location and tags blocks when the entry has them.
func writeExtras(builder *strings.Builder, entry *dayone.Entry) {
	extras := frontmatterExtras{Tags: entry.Tags}
	if entry.Location != nil {
		extras.Location = &locationBlock{
			Latitude:  entry.Location.Latitude,
			Longitude: entry.Location.Longitude,
		}
	}
	if extras.Location == nil && len(extras.Tags) == 0 {
		return
	}

	enc := yaml.NewEncoder(builder)
	enc.SetIndent(2)
	// Encoding plain strings and floats into a strings.Builder cannot fail.
	_ = enc.Encode(extras)
	_ = enc.Close()
}

// PostFilename returns the base filename for an entry, derived from its
// local creation date.
func PostFilename(entry *dayone.Entry) string {
	return entry.CreationDate.Format(FilenameLayout) + postExt
}

// WritePost writes the rendered entry into dir and returns the filename used.
// When the base filename is taken it tries -2, -3, ... and uses the first
// free name. Existing files are never overwritten.
func WritePost(entry *dayone.Entry, dir string) (string, error) {
	content := []byte(FormatPost(entry))
	stem := strings.TrimSuffix(PostFilename(entry), postExt)

	for n := 1; ; n++ {
		name := candidateName(stem, n)
		path := filepath.Join(dir, name)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, postPerm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", output.NewSystemErrorWithCause(fmt.Sprintf("failed to create post %s", path), err)
		}

		if err := writeAndClose(file, content); err != nil {
			_ = os.Remove(path)
			return "", output.NewSystemErrorWithCause(fmt.Sprintf("failed to write post %s", path), err)
		}
		return name, nil
	}
}

// candidateName returns the nth filename to try: the base name first,
// then the base name with a -n suffix.
func candidateName(stem string, n int) string {
	if n == 1 {
		return stem + postExt
	}
	return fmt.Sprintf("%s-%d%s", stem, n, postExt)
}

func writeAndClose(file *os.File, content []byte) error {
	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}
