package kvstore

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

type codecRecord struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
	History   []codecResult `json:"history,omitempty"`
}

type codecResult struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

func TestMarshalTagged_TagsTimestamps(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	rec := codecRecord{ID: "u1", Name: "Ana", CreatedAt: created}

	data, err := MarshalTagged(rec)
	if err != nil {
		t.Fatalf("MarshalTagged() error = %v", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("stored document is not valid JSON: %v", err)
	}

	tagged, ok := tree["created_at"].(map[string]any)
	if !ok {
		t.Fatalf("created_at = %v, want tagged date object", tree["created_at"])
	}
	if tagged["__type"] != "Date" {
		t.Errorf("created_at __type = %v, want Date", tagged["__type"])
	}
	if !strings.HasPrefix(tagged["iso"].(string), "2024-01-15T10:30:00") {
		t.Errorf("created_at iso = %v", tagged["iso"])
	}
}

func TestRoundTrip_PreservesDates(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)
	rec := codecRecord{
		ID:        "u1",
		Name:      "Ana",
		CreatedAt: created,
		UpdatedAt: &updated,
	}

	data, err := MarshalTagged(rec)
	if err != nil {
		t.Fatalf("MarshalTagged() error = %v", err)
	}

	var got codecRecord
	if err := UnmarshalTagged(data, &got); err != nil {
		t.Fatalf("UnmarshalTagged() error = %v", err)
	}

	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, updated)
	}
}

// Dates nested inside embedded collections must round-trip too, not just the
// top-level fields.
func TestRoundTrip_NestedCollectionDates(t *testing.T) {
	first := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)
	second := time.Date(2023, 9, 1, 8, 0, 0, 0, time.UTC)
	rec := codecRecord{
		ID:        "u2",
		CreatedAt: first,
		History: []codecResult{
			{Date: first, Score: 7.5},
			{Date: second, Score: 8.0},
		},
	}

	data, err := MarshalTagged(rec)
	if err != nil {
		t.Fatalf("MarshalTagged() error = %v", err)
	}

	var got codecRecord
	if err := UnmarshalTagged(data, &got); err != nil {
		t.Fatalf("UnmarshalTagged() error = %v", err)
	}

	if len(got.History) != 2 {
		t.Fatalf("History length = %d, want 2", len(got.History))
	}
	if !got.History[0].Date.Equal(first) || !got.History[1].Date.Equal(second) {
		t.Errorf("History dates = %v / %v, want %v / %v",
			got.History[0].Date, got.History[1].Date, first, second)
	}
}

func TestRoundTrip_EmptyCollection(t *testing.T) {
	data, err := MarshalTagged([]codecRecord{})
	if err != nil {
		t.Fatalf("MarshalTagged() error = %v", err)
	}

	var got []codecRecord
	if err := UnmarshalTagged(data, &got); err != nil {
		t.Fatalf("UnmarshalTagged() error = %v", err)
	}

	if got == nil {
		t.Fatal("round trip of an empty collection returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("round trip of an empty collection has %d items", len(got))
	}
}

func TestIsTimestamp(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2024-01-15T10:30:00Z", true},
		{"2024-01-15T10:30:00.123456789Z", true},
		{"2024-01-15T10:30:00+07:00", true},
		{"2024-01-15", false},
		{"not a date", false},
		{"", false},
		{"2024-13-40T99:99:99Z", false},
	}
	for _, c := range cases {
		if got := isTimestamp(c.input); got != c.want {
			t.Errorf("isTimestamp(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestUnmarshalTagged_MalformedInput(t *testing.T) {
	var got []codecRecord
	if err := UnmarshalTagged([]byte("{not json"), &got); err == nil {
		t.Fatal("UnmarshalTagged() on malformed input returned nil error")
	}
}
