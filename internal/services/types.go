// Package services provides frontend-agnostic business logic for the
// Messenger shell. The window bindings and the CLI both call into this layer;
// progress and status changes are published via the EventBus.
package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// DownloadFileParams is the payload of a URL download request.
type DownloadFileParams struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Language string `json:"language,omitempty"`
}

// BinaryDownloadParams is the payload of a download whose bytes come from
// the page itself.
type BinaryDownloadParams struct {
	Filename string    `json:"filename"`
	Binary   ByteArray `json:"binary"`
	Language string    `json:"language,omitempty"`
}

// NotificationParams is the payload of send_notification.
type NotificationParams struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
}

// ByteArray decodes from either a JSON array of numbers (what
// Array.from(new Uint8Array(...)) produces) or a base64 string.
type ByteArray []byte

// UnmarshalJSON implements json.Unmarshaler.
func (b *ByteArray) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = nil
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("binary: invalid base64: %w", err)
		}
		*b = decoded
		return nil

	case '[':
		var values []int
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("binary: %w", err)
		}
		out := make([]byte, len(values))
		for i, v := range values {
			if v < 0 || v > 255 {
				return fmt.Errorf("binary: value %d at index %d is not a byte", v, i)
			}
			out[i] = byte(v)
		}
		*b = out
		return nil
	}

	return fmt.Errorf("binary: expected array or base64 string, got %q", truncateJSON(data))
}

func truncateJSON(data []byte) string {
	if len(data) > 32 {
		return string(data[:32]) + "..."
	}
	return string(data)
}
