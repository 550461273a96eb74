package utils

import (
	"testing"
	"time"
)

func TestParseDateAcceptedLayouts(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15T10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"  2024-03-15  ", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, ok := ParseDate(tc.input)
		if !ok {
			t.Fatalf("ParseDate(%q) failed", tc.input)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "15-03-2024", "next tuesday", "2024/03/15"} {
		if _, ok := ParseDate(input); ok {
			t.Fatalf("ParseDate(%q) unexpectedly succeeded", input)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("unexpected result: %q", got)
	}
}
