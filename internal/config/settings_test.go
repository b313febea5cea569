package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	for _, def := range []AppSettings{{RunInBackground: true}, {RunInBackground: false}} {
		result := store.Load(def)
		if result.Settings != def {
			t.Errorf("Load(%+v) = %+v, want default", def, result.Settings)
		}
		if result.Source != SourceDefaultMissing {
			t.Errorf("expected SourceDefaultMissing, got %s", result.Source)
		}
		if result.Err != nil {
			t.Errorf("missing file should not carry an error, got %v", result.Err)
		}
	}
}

func TestLoadCorruptFileReturnsDefault(t *testing.T) {
	tests := []string{
		"",
		"{",
		"not json at all",
		`{"run_in_background": "yes"}`,
		`[true]`,
	}

	for _, content := range tests {
		path := filepath.Join(t.TempDir(), "settings.json")
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		def := AppSettings{RunInBackground: true}
		result := NewStore(path).Load(def)
		if result.Settings != def {
			t.Errorf("content %q: got %+v, want default %+v", content, result.Settings, def)
		}
		if result.Source != SourceDefaultCorrupt {
			t.Errorf("content %q: expected SourceDefaultCorrupt, got %s", content, result.Source)
		}
		if !result.UsedDefault() {
			t.Errorf("content %q: UsedDefault() should be true", content)
		}
	}
}

func TestLoadUnreadableFileReturnsDefault(t *testing.T) {
	// A directory in place of the file cannot be read as a file on any platform.
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.Mkdir(path, 0700); err != nil {
		t.Fatal(err)
	}

	result := NewStore(path).Load(AppSettings{RunInBackground: true})
	if !result.Settings.RunInBackground {
		t.Error("expected default settings")
	}
	if result.Source != SourceDefaultUnreadable {
		t.Errorf("expected SourceDefaultUnreadable, got %s", result.Source)
	}
	if result.Err == nil {
		t.Error("expected the read error to be reported")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	store := NewStore(path)

	for _, saved := range []AppSettings{{RunInBackground: true}, {RunInBackground: false}} {
		if err := store.Save(saved); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		for _, def := range []AppSettings{{RunInBackground: true}, {RunInBackground: false}} {
			result := store.Load(def)
			if result.Settings != saved {
				t.Errorf("round trip with default %+v: got %+v, want %+v", def, result.Settings, saved)
			}
			if result.Source != SourceFile {
				t.Errorf("expected SourceFile, got %s", result.Source)
			}
		}
	}
}

func TestSaveWritesPrettyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := NewStore(path).Save(AppSettings{RunInBackground: true}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"run_in_background\": true\n}"
	if strings.TrimSpace(string(data)) != want {
		t.Errorf("settings file = %q, want %q", data, want)
	}
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{"run_in_background": true, "theme": "dark"}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	result := NewStore(path).Load(AppSettings{})
	if result.Source != SourceFile || !result.Settings.RunInBackground {
		t.Errorf("expected file settings, got %+v from %s", result.Settings, result.Source)
	}
}
