// Package dayone provides the entry model for Day One journal exports.
package dayone

import (
	"fmt"
	"strings"
	"time"

	// Zone lookups must not depend on the host's zoneinfo database.
	_ "time/tzdata"
)

// TitleLayout formats an entry's creation date as its display title.
const TitleLayout = "Monday January 02, 2006"

// Entry is one journal record with its timestamps localized to TimeZone.
// Entries are built by ParseEntry and are not modified afterwards.
type Entry struct {
	CreationDate time.Time
	ModifiedDate time.Time
	Text         string
	TimeZone     *time.Location
	Tags         []string
	Location     *Location
	Title        string
}

// Location is the optional place an entry was written.
type Location struct {
	Latitude  float64
	Longitude float64
}

// ParseError is returned when a raw record is missing a required field
// or a field has the wrong shape.
type ParseError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseEntry builds an Entry from a loosely-typed record as decoded from
// the export JSON. creationDate, modifiedDate, text and timeZone are
// required; tags and location are optional.
func ParseEntry(raw map[string]any) (*Entry, error) {
	zoneName, err := requireString(raw, "timeZone")
	if err != nil {
		return nil, err
	}
	zone, err := time.LoadLocation(zoneName)
	if err != nil || zoneName == "" {
		return nil, &ParseError{Field: "timeZone", Reason: fmt.Sprintf("unknown time zone %q", zoneName)}
	}

	created, err := requireTime(raw, "creationDate")
	if err != nil {
		return nil, err
	}
	modified, err := requireTime(raw, "modifiedDate")
	if err != nil {
		return nil, err
	}

	text, err := requireString(raw, "text")
	if err != nil {
		return nil, err
	}

	tags, err := optionalTags(raw)
	if err != nil {
		return nil, err
	}
	location, err := optionalLocation(raw)
	if err != nil {
		return nil, err
	}

	created = created.In(zone)
	return &Entry{
		CreationDate: created,
		ModifiedDate: modified.In(zone),
		Text:         RepairText(text),
		TimeZone:     zone,
		Tags:         tags,
		Location:     location,
		Title:        created.Format(TitleLayout),
	}, nil
}

// timestampLayouts are tried in order when parsing entry dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO 8601 timestamp: %q", value)
}

func requireString(raw map[string]any, field string) (string, error) {
	value, ok := raw[field]
	if !ok || value == nil {
		return "", &ParseError{Field: field, Reason: "missing required field"}
	}
	str, ok := value.(string)
	if !ok {
		return "", &ParseError{Field: field, Reason: fmt.Sprintf("expected string, got %T", value)}
	}
	return str, nil
}

func requireTime(raw map[string]any, field string) (time.Time, error) {
	str, err := requireString(raw, field)
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseTimestamp(str)
	if err != nil {
		return time.Time{}, &ParseError{Field: field, Reason: err.Error()}
	}
	return t, nil
}

func optionalTags(raw map[string]any) ([]string, error) {
	value, ok := raw["tags"]
	if !ok || value == nil {
		return []string{}, nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil, &ParseError{Field: "tags", Reason: fmt.Sprintf("expected array, got %T", value)}
	}
	tags := make([]string, 0, len(items))
	for i, item := range items {
		tag, ok := item.(string)
		if !ok {
			return nil, &ParseError{Field: fmt.Sprintf("tags[%d]", i), Reason: fmt.Sprintf("expected string, got %T", item)}
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func optionalLocation(raw map[string]any) (*Location, error) {
	value, ok := raw["location"]
	if !ok || value == nil {
		return nil, nil
	}
	fields, ok := value.(map[string]any)
	if !ok {
		return nil, &ParseError{Field: "location", Reason: fmt.Sprintf("expected object, got %T", value)}
	}
	lat, err := coordinate(fields, "latitude")
	if err != nil {
		return nil, err
	}
	lon, err := coordinate(fields, "longitude")
	if err != nil {
		return nil, err
	}
	return &Location{Latitude: lat, Longitude: lon}, nil
}

func coordinate(fields map[string]any, name string) (float64, error) {
	switch v := fields[name].(type) {
	case float64:
		return v, nil
	case nil:
		return 0, &ParseError{Field: "location." + name, Reason: "missing required field"}
	default:
		return 0, &ParseError{Field: "location." + name, Reason: fmt.Sprintf("expected number, got %T", v)}
	}
}

// replacement is one literal substitution applied by RepairText.
type replacement struct {
	from string
	to   string
}

// repairTable undoes the escaping Day One applies to markdown-significant
// characters. The backslash pair must stay last so a backslash it produces
// is never consumed again by one of the earlier rules.
var repairTable = []replacement{
	{"’", "'"},
	{`\-`, "-"},
	{`\]`, "]"},
	{`\^`, "^"},
	{`\$`, "$"},
	{`\*`, "*"},
	{`\.`, "."},
	{`\\`, `\`},
}

// RepairText applies the escape repair table to text, in order.
func RepairText(text string) string {
	for _, r := range repairTable {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	return text
}

// Compare orders entries by creation instant only. It returns a negative
// number when a was created before b, zero when both share the same
// instant, and a positive number otherwise.
func Compare(a, b *Entry) int {
	return a.CreationDate.Compare(b.CreationDate)
}

// Equal reports whether two entries were created at the same instant.
// Other fields are ignored.
func Equal(a, b *Entry) bool {
	return Compare(a, b) == 0
}
