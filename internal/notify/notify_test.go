package notify

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

type captured struct {
	title, body, icon string
}

func capture(n *Notifier) *[]captured {
	var got []captured
	n.WithSendFunc(func(title, body, icon string) error {
		got = append(got, captured{title, body, icon})
		return nil
	})
	return &got
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10c", 10, "exactly10c"},
		{"this is a long string", 10, "this is..."},
		{"", 10, ""},
		{"abc", 3, "abc"},
		{"abcd", 3, "..."},
		{"新消息新消息新消息", 5, "新消..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestSend(t *testing.T) {
	n := NewNotifier(nil)
	got := capture(n)

	if err := n.Send("Alice", "hi there", "/tmp/a.png"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(*got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(*got))
	}
	if (*got)[0] != (captured{"Alice", "hi there", "/tmp/a.png"}) {
		t.Errorf("unexpected notification: %+v", (*got)[0])
	}
}

func TestSendEmptyTitle(t *testing.T) {
	n := NewNotifier(nil)
	got := capture(n)

	if err := n.Send("   ", "body", ""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if len(*got) != 0 {
		t.Error("nothing should be sent without a title")
	}
}

func TestSendTruncatesLongBody(t *testing.T) {
	n := NewNotifier(nil)
	got := capture(n)

	if err := n.Send("t", strings.Repeat("x", 1000), ""); err != nil {
		t.Fatal(err)
	}
	if l := len((*got)[0].body); l != 256 {
		t.Errorf("body length = %d, want 256", l)
	}
}

func TestSendPropagatesOSError(t *testing.T) {
	osErr := errors.New("dbus unavailable")
	n := NewNotifier(nil).WithSendFunc(func(string, string, string) error { return osErr })

	if err := n.Send("t", "b", ""); !errors.Is(err, osErr) {
		t.Errorf("expected wrapped OS error, got %v", err)
	}
}

func TestIconCacheLocalPathsPassThrough(t *testing.T) {
	c := NewIconCache(t.TempDir(), nil)

	for _, icon := range []string{"", "/usr/share/icons/a.png", `C:\icons\a.png`} {
		got, err := c.Resolve(context.Background(), icon)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", icon, err)
		}
		if got != icon {
			t.Errorf("Resolve(%q) = %q", icon, got)
		}
	}
}

func TestIconCacheFetchesOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("\x89PNG fake"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewIconCache(dir, nil)
	url := srv.URL + "/avatar.jpg?size=64"

	first, err := c.Resolve(context.Background(), url)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Dir(first) != dir || filepath.Ext(first) != ".jpg" {
		t.Errorf("unexpected cache path %q", first)
	}
	data, err := os.ReadFile(first)
	if err != nil || string(data) != "\x89PNG fake" {
		t.Errorf("cached content = %q, err = %v", data, err)
	}

	second, err := c.Resolve(context.Background(), url)
	if err != nil || second != first {
		t.Errorf("second Resolve = %q, %v", second, err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1", hits.Load())
	}
}

func TestIconCacheFetchFailure(t *testing.T) {
	srv := httptest.NewServer(nethttp.NotFoundHandler())
	defer srv.Close()

	c := NewIconCache(t.TempDir(), nil)
	if _, err := c.Resolve(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Error("expected error for 404 icon")
	}
}
