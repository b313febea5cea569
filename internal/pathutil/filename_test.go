package pathutil

import (
	"errors"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"photo.jpg", "photo.jpg"},
		{"  spaced name.pdf  ", "spaced name.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\evil.exe`, "evil.exe"},
		{"what?.txt", "what_.txt"},
		{"a<b>c.txt", "a_b_c.txt"},
		{"zero\u200Bwidth.txt", "zerowidth.txt"},
		{"trailing dots...", "trailing dots"},
		{"tab\tname.txt", "tabname.txt"},
	}

	for _, tt := range tests {
		got, err := SanitizeFilename(tt.input)
		if err != nil {
			t.Errorf("SanitizeFilename(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeFilenameRejectsEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", ".", "..", "dir/", "\u200B", "..."} {
		if _, err := SanitizeFilename(input); !errors.Is(err, ErrEmptyFilename) {
			t.Errorf("SanitizeFilename(%q) error = %v, want ErrEmptyFilename", input, err)
		}
	}
}
