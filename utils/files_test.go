package utils

import (
	"strings"
	"testing"
)

func TestUploadFolder(t *testing.T) {
	cases := map[string]string{
		"profile_photo":   "profiles",
		"thesis_file":     "thesis",
		"approval_letter": "letters",
		"anything_else":   "others",
	}
	for field, want := range cases {
		if got := UploadFolder(field); got != want {
			t.Fatalf("UploadFolder(%q) = %q, want %q", field, got, want)
		}
	}
}

func TestStoredFilenameKeepsExtension(t *testing.T) {
	name := StoredFilename("Proposal Final.PDF")
	if !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("expected .pdf suffix, got %q", name)
	}
	if strings.Contains(name, " ") {
		t.Fatalf("expected generated name without spaces, got %q", name)
	}
	if name == StoredFilename("Proposal Final.PDF") {
		t.Fatal("expected unique names for repeated uploads")
	}
}

func TestSanitizeRelativePathStripsTraversal(t *testing.T) {
	cases := map[string]string{
		"thesis/report.pdf":          "thesis/report.pdf",
		"../../etc/passwd":           "etc/passwd",
		"thesis/../letters/x.pdf":    "letters/x.pdf",
		"..\\..\\windows\\calc.exe":  "windows/calc.exe",
		"./thesis//double//slash.md": "thesis/double/slash.md",
	}
	for input, want := range cases {
		if got := SanitizeRelativePath(input); got != want {
			t.Fatalf("SanitizeRelativePath(%q) = %q, want %q", input, got, want)
		}
	}
}
