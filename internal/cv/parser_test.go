package cv

import (
	"os"
	"strings"
	"testing"
)

func TestSupportedType(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.doc", true},
		{"resume.rtf", true},
		{"resume.odt", true},
		{"resume.txt", true},
		{"resume.exe", false},
		{"resume.png", false},
		{"resume", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := SupportedType(tt.filename); got != tt.want {
			t.Errorf("SupportedType(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestParseFileTxt(t *testing.T) {
	dir := t.TempDir()
	p := NewParser(dir)

	body := "John Doe\n\nWork Experience\n\nAcme Corp - Remote\nEngineer (Jan 2020 - Present)\n"
	parsed, err := p.ParseFile("resume.txt", strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	if parsed.Filename != "resume.txt" {
		t.Errorf("Filename = %q, want %q", parsed.Filename, "resume.txt")
	}
	if parsed.FileType != ".txt" {
		t.Errorf("FileType = %q, want %q", parsed.FileType, ".txt")
	}
	if parsed.FullText != body {
		t.Errorf("FullText = %q, want original body", parsed.FullText)
	}
	if parsed.FileSize != int64(len(body)) {
		t.Errorf("FileSize = %d, want %d", parsed.FileSize, len(body))
	}

	// Stored name must keep the original basename but not collide with it.
	if parsed.StoredAs == "resume.txt" || !strings.HasSuffix(parsed.StoredAs, "_resume.txt") {
		t.Errorf("StoredAs = %q, want uuid-prefixed name", parsed.StoredAs)
	}
	if _, err := os.Stat(dir + "/" + parsed.StoredAs); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestParseFileUnsupported(t *testing.T) {
	p := NewParser(t.TempDir())
	if _, err := p.ParseFile("malware.exe", strings.NewReader("x")); err == nil {
		t.Error("expected error for unsupported file type")
	}
}

func TestParseFileCollisionSafe(t *testing.T) {
	dir := t.TempDir()
	p := NewParser(dir)

	a, err := p.ParseFile("resume.txt", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	b, err := p.ParseFile("resume.txt", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if a.StoredAs == b.StoredAs {
		t.Errorf("two uploads of %q stored under the same name %q", "resume.txt", a.StoredAs)
	}
}
