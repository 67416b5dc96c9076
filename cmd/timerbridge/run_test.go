package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestReadPayload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "event.json")
	if err := os.WriteFile(path, []byte(`{"action":"closed"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		wantOK bool
	}{
		{"existing file", path, true},
		{"empty path", "", false},
		{"missing file", filepath.Join(dir, "missing.json"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, ok := readPayload(context.Background(), tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && string(payload) != `{"action":"closed"}` {
				t.Fatalf("unexpected payload %q", payload)
			}
		})
	}
}
