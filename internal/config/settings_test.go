package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "comets.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestDefaultMatchesRecognizedOptions(t *testing.T) {
	s := Default()
	if s.DurationMs != 4000 || s.PostExitDelayMs != 3000 || s.HeadingOffsetDeg != 90 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.ImagePath != DefaultImagePath {
		t.Fatalf("image path = %q, want %q", s.ImagePath, DefaultImagePath)
	}
	if s.SpawnPeriod() != 7*time.Second {
		t.Fatalf("spawn period = %v, want 7s", s.SpawnPeriod())
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Default() {
		t.Fatalf("got %+v, want defaults", s)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeSettings(t, `{"duration_ms": 2500, "heading_offset_deg": 0, "image_path": ""}`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.DurationMs != 2500 {
		t.Fatalf("duration = %d, want 2500", s.DurationMs)
	}
	if s.HeadingOffsetDeg != 0 {
		t.Fatalf("heading offset = %v, want 0", s.HeadingOffsetDeg)
	}
	if s.PostExitDelayMs != 3000 {
		t.Fatalf("delay = %d, want default 3000", s.PostExitDelayMs)
	}
	if s.ImagePath != DefaultImagePath {
		t.Fatalf("empty image path must fall back, got %q", s.ImagePath)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero duration", `{"duration_ms": 0}`},
		{"negative delay", `{"post_exit_delay_ms": -1}`},
		{"zero sprite", `{"sprite_size_px": 0}`},
		{"zero poll", `{"ready_poll_ms": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, tt.body))
			if !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("err = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(writeSettings(t, `{"duration_ms": `))
	if err == nil {
		t.Fatal("expected error for malformed json")
	}
	if errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("malformed json is a decode error, not a validation error: %v", err)
	}
}
