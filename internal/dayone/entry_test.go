package dayone

import (
	"errors"
	"testing"
	"time"
)

func validRecord() map[string]any {
	return map[string]any{
		"creationDate": "2024-01-05T10:00:00Z",
		"modifiedDate": "2024-01-05T10:00:00Z",
		"text":         "Hello \\*world\\*",
		"timeZone":     "America/New_York",
	}
}

func TestParseEntry_EndToEnd(t *testing.T) {
	entry, err := ParseEntry(validRecord())
	if err != nil {
		t.Fatalf("ParseEntry() error = %v", err)
	}

	if entry.Title != "Friday January 05, 2024" {
		t.Errorf("Title = %q, want %q", entry.Title, "Friday January 05, 2024")
	}
	if entry.Text != "Hello *world*" {
		t.Errorf("Text = %q, want %q", entry.Text, "Hello *world*")
	}
	if got := entry.CreationDate.Format("15:04"); got != "05:00" {
		t.Errorf("local creation time = %s, want 05:00", got)
	}
	if len(entry.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", entry.Tags)
	}
	if entry.Location != nil {
		t.Errorf("Location = %+v, want nil", entry.Location)
	}
}

func TestParseEntry_TimestampsInEntryZone(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		created  string
		modified string
		wantHour int
	}{
		{name: "utc to new york", zone: "America/New_York", created: "2024-07-01T12:00:00Z", modified: "2024-07-02T12:00:00Z", wantHour: 8},
		{name: "offset to tokyo", zone: "Asia/Tokyo", created: "2024-01-05T10:00:00+01:00", modified: "2024-01-05T10:00:00+01:00", wantHour: 18},
		{name: "fractional seconds", zone: "Europe/Paris", created: "2024-01-05T10:00:00.123Z", modified: "2024-01-05T10:00:00Z", wantHour: 11},
		{name: "already utc", zone: "UTC", created: "2024-01-05T10:00:00Z", modified: "2024-01-05T10:00:00Z", wantHour: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRecord()
			raw["timeZone"] = tt.zone
			raw["creationDate"] = tt.created
			raw["modifiedDate"] = tt.modified

			entry, err := ParseEntry(raw)
			if err != nil {
				t.Fatalf("ParseEntry() error = %v", err)
			}
			if got := entry.CreationDate.Location().String(); got != tt.zone {
				t.Errorf("CreationDate zone = %s, want %s", got, tt.zone)
			}
			if got := entry.ModifiedDate.Location().String(); got != tt.zone {
				t.Errorf("ModifiedDate zone = %s, want %s", got, tt.zone)
			}
			if entry.TimeZone.String() != tt.zone {
				t.Errorf("TimeZone = %s, want %s", entry.TimeZone, tt.zone)
			}
			if entry.CreationDate.Hour() != tt.wantHour {
				t.Errorf("CreationDate hour = %d, want %d", entry.CreationDate.Hour(), tt.wantHour)
			}
		})
	}
}

func TestParseEntry_Errors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(raw map[string]any)
		wantField string
	}{
		{name: "missing creationDate", mutate: func(raw map[string]any) { delete(raw, "creationDate") }, wantField: "creationDate"},
		{name: "missing modifiedDate", mutate: func(raw map[string]any) { delete(raw, "modifiedDate") }, wantField: "modifiedDate"},
		{name: "missing text", mutate: func(raw map[string]any) { delete(raw, "text") }, wantField: "text"},
		{name: "missing timeZone", mutate: func(raw map[string]any) { delete(raw, "timeZone") }, wantField: "timeZone"},
		{name: "unknown timeZone", mutate: func(raw map[string]any) { raw["timeZone"] = "Mars/Olympus_Mons" }, wantField: "timeZone"},
		{name: "empty timeZone", mutate: func(raw map[string]any) { raw["timeZone"] = "" }, wantField: "timeZone"},
		{name: "bad creationDate", mutate: func(raw map[string]any) { raw["creationDate"] = "yesterday" }, wantField: "creationDate"},
		{name: "numeric text", mutate: func(raw map[string]any) { raw["text"] = 42.0 }, wantField: "text"},
		{name: "tags not array", mutate: func(raw map[string]any) { raw["tags"] = "travel" }, wantField: "tags"},
		{name: "tag not string", mutate: func(raw map[string]any) { raw["tags"] = []any{"ok", 3.0} }, wantField: "tags[1]"},
		{name: "location not object", mutate: func(raw map[string]any) { raw["location"] = "home" }, wantField: "location"},
		{name: "location missing longitude", mutate: func(raw map[string]any) {
			raw["location"] = map[string]any{"latitude": 1.0}
		}, wantField: "location.longitude"},
		{name: "location latitude string", mutate: func(raw map[string]any) {
			raw["location"] = map[string]any{"latitude": "1", "longitude": 2.0}
		}, wantField: "location.latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRecord()
			tt.mutate(raw)

			entry, err := ParseEntry(raw)
			if err == nil {
				t.Fatalf("ParseEntry() = %+v, want error", entry)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if parseErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", parseErr.Field, tt.wantField)
			}
		})
	}
}

func TestParseEntry_OptionalFields(t *testing.T) {
	raw := validRecord()
	raw["tags"] = []any{"travel", "food", "travel"}
	raw["location"] = map[string]any{
		"latitude":  40.7128,
		"longitude": -74.006,
		"placeName": "New York",
	}

	entry, err := ParseEntry(raw)
	if err != nil {
		t.Fatalf("ParseEntry() error = %v", err)
	}

	wantTags := []string{"travel", "food", "travel"}
	if len(entry.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", entry.Tags, wantTags)
	}
	for i := range wantTags {
		if entry.Tags[i] != wantTags[i] {
			t.Errorf("Tags[%d] = %q, want %q", i, entry.Tags[i], wantTags[i])
		}
	}
	if entry.Location == nil {
		t.Fatal("Location = nil, want value")
	}
	if entry.Location.Latitude != 40.7128 || entry.Location.Longitude != -74.006 {
		t.Errorf("Location = %+v", *entry.Location)
	}
}

func TestParseEntry_NullOptionalFields(t *testing.T) {
	raw := validRecord()
	raw["tags"] = nil
	raw["location"] = nil

	entry, err := ParseEntry(raw)
	if err != nil {
		t.Fatalf("ParseEntry() error = %v", err)
	}
	if entry.Tags == nil || len(entry.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty non-nil slice", entry.Tags)
	}
	if entry.Location != nil {
		t.Errorf("Location = %+v, want nil", entry.Location)
	}
}

func TestRepairText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "curly apostrophe", in: "It’s fine", want: "It's fine"},
		{name: "hyphen", in: `well\-known`, want: "well-known"},
		{name: "bracket", in: `[link\]`, want: "[link]"},
		{name: "caret", in: `2\^10`, want: "2^10"},
		{name: "dollar", in: `\$5`, want: "$5"},
		{name: "star", in: `\*bold\*`, want: "*bold*"},
		{name: "dot", in: `1\. First`, want: "1. First"},
		{name: "backslash", in: `C:\\Users`, want: `C:\Users`},
		{name: "escaped backslash before star", in: `\\*`, want: `\*`},
		{name: "plain text untouched", in: "nothing to do here", want: "nothing to do here"},
		{name: "unknown escape kept", in: `\#tag`, want: `\#tag`},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepairText(tt.in); got != tt.want {
				t.Errorf("RepairText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRepairText_SecondPass(t *testing.T) {
	// A second pass changes nothing unless the first pass left a backslash
	// pair or an escape sequence behind.
	stable := []string{
		"It’s a \\*test\\* of 1\\. things",
		"[done\\] for \\$3",
		"no escapes at all",
	}
	for _, in := range stable {
		once := RepairText(in)
		if twice := RepairText(once); twice != once {
			t.Errorf("RepairText not stable for %q: once %q, twice %q", in, once, twice)
		}
	}

	// A literal backslash pair is consumed once per pass.
	once := RepairText(`a\\\\b`)
	if once != `a\\b` {
		t.Fatalf("first pass = %q, want %q", once, `a\\b`)
	}
	if twice := RepairText(once); twice != `a\b` {
		t.Errorf("second pass = %q, want %q", twice, `a\b`)
	}
}

func TestCompareAndEqual(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	instant := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

	a := &Entry{CreationDate: instant, Text: "a"}
	b := &Entry{CreationDate: instant.In(ny), Text: "different text"}
	later := &Entry{CreationDate: instant.Add(time.Minute)}

	if !Equal(a, b) {
		t.Error("entries created at the same instant should be equal")
	}
	if Compare(a, later) >= 0 {
		t.Error("Compare(a, later) should be negative")
	}
	if Compare(later, a) <= 0 {
		t.Error("Compare(later, a) should be positive")
	}
	if Equal(a, later) {
		t.Error("entries at different instants should not be equal")
	}
}
