package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBarCountsWrites(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(10, "file.bin", &out)

	n, err := bar.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write = (%d, %v), want (5, nil)", n, err)
	}
	if _, err := bar.Write([]byte("world")); err != nil {
		t.Fatal(err)
	}
	bar.Finish()

	if !strings.Contains(out.String(), "file.bin") {
		t.Errorf("bar output should include the description, got %q", out.String())
	}
}

func TestBarUnknownTotal(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(-1, "stream", &out)

	if _, err := bar.Write(make([]byte, 1024)); err != nil {
		t.Fatal(err)
	}
	bar.Finish()
}

func TestBarFail(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(100, "x", &out)
	bar.Fail(errors.New("connection reset"))

	if !strings.Contains(out.String(), "Error: connection reset") {
		t.Errorf("failure not printed: %q", out.String())
	}
}

func TestLogWriterPassesLinesThrough(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(100, "x", &out)

	if _, err := bar.LogWriter().Write([]byte("saved a.txt\n")); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "saved a.txt\n") {
		t.Errorf("log line not written after the bar: %q", out.String())
	}
}
