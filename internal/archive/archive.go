// Package archive reads Day One export archives.
//
// An export is a zip file holding one "<Journal Name>.json" document per
// journal, optionally alongside media folders that are ignored here.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gorewood/dayone2jekyll/internal/dayone"
	"github.com/gorewood/dayone2jekyll/internal/output"
)

// ErrJournalNotFound is returned when the archive has no document for
// the requested journal.
var ErrJournalNotFound = errors.New("journal not found in archive")

// Archive is an open export archive.
type Archive struct {
	path   string
	reader *zip.ReadCloser
}

// Open opens the export archive at path.
func Open(path string) (*Archive, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("failed to open archive %s: %v", path, err), err)
	}
	return &Archive{path: path, reader: reader}, nil
}

// Close releases the underlying file.
func (a *Archive) Close() error {
	return a.reader.Close()
}

// Path returns the archive's file path.
func (a *Archive) Path() string {
	return a.path
}

// Journals returns the names of the journal documents in archive order,
// including the .json suffix.
func (a *Archive) Journals() []string {
	var names []string
	for _, file := range a.reader.File {
		if strings.HasSuffix(file.Name, dayone.JournalSuffix) {
			names = append(names, file.Name)
		}
	}
	return names
}

// ReadJournal reads and parses the document for the named journal.
// The name is given without the .json suffix.
func (a *Archive) ReadJournal(name string) (*dayone.Journal, error) {
	data, err := a.readMember(name + dayone.JournalSuffix)
	if err != nil {
		return nil, err
	}

	journal, err := dayone.ParseJournal(name, data)
	if err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("journal %q: %v", name, err), err)
	}
	return journal, nil
}

// readMember returns the contents of the archive member with the given name.
func (a *Archive) readMember(member string) ([]byte, error) {
	for _, file := range a.reader.File {
		if file.Name != member {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, output.NewSystemErrorWithCause("failed to open archive member "+member, err)
		}
		defer rc.Close() //nolint:errcheck // read-only member
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, output.NewSystemErrorWithCause("failed to read archive member "+member, err)
		}
		return data, nil
	}

	return nil, output.NewSystemErrorWithCause(
		fmt.Sprintf("journal %q not found in %s", strings.TrimSuffix(member, dayone.JournalSuffix), a.path),
		ErrJournalNotFound,
	)
}
