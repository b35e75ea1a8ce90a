package utils

import "testing"

func TestFormatEpoch(t *testing.T) {
	if got := FormatEpoch(0); got != "1970-01-01T00:00:00Z" {
		t.Errorf("FormatEpoch(0) = %q", got)
	}
	if got := FormatEpoch(1748772000000); got != "2025-06-01T10:00:00Z" {
		t.Errorf("FormatEpoch(1748772000000) = %q", got)
	}
}

func TestSanitizeTrimsStrings(t *testing.T) {
	type form struct {
		Name  string
		Tags  []string
		Count int
	}

	f := &form{Name: "  Jane Doe \n", Tags: []string{" a ", "b"}, Count: 3}
	Sanitize(f)

	if f.Name != "Jane Doe" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Tags[0] != "a" || f.Tags[1] != "b" {
		t.Errorf("Tags = %v", f.Tags)
	}
	if f.Count != 3 {
		t.Errorf("Count changed: %d", f.Count)
	}
}
