package ui

import (
	"image/color"
	"reflect"
	"testing"
	"time"
)

func TestOverlayLines(t *testing.T) {
	o := NewOverlay(0, 0, false, color.RGBA{255, 255, 255, 255})
	got := o.Lines(OverlayStats{State: "waiting", Live: 1, Spawned: 3, NextSpawnIn: 2500 * time.Millisecond})
	want := []string{"state: waiting", "live: 1  spawned: 3", "next in: 2.5s"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}

	got = o.Lines(OverlayStats{Paused: true})
	if got[len(got)-1] != "PAUSED" {
		t.Fatalf("paused overlay must say so, got %q", got)
	}
}

func TestOverlayToggle(t *testing.T) {
	o := NewOverlay(0, 0, false, color.RGBA{})
	o.Toggle()
	if !o.Visible {
		t.Fatal("toggle must show the overlay")
	}
	o.Toggle()
	if o.Visible {
		t.Fatal("second toggle must hide it")
	}
}
