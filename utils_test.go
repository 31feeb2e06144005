package main

import (
	"testing"
	"time"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Wall", []string{"Wall"}},
		{"Wall,Floor", []string{"Wall", "Floor"}},
		{" Wall , Floor ,", []string{"Wall", "Floor"}},
		{"", nil},
		{",,", nil},
	}
	for _, tt := range tests {
		got := splitCSV(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitCSV(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitCSV(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSuffixedPath(t *testing.T) {
	tests := []struct {
		path, suffix, want string
	}{
		{"mesh.obj", "_stripped", "mesh_stripped.obj"},
		{"/a/b/mesh.obj", "_clean", "/a/b/mesh_clean.obj"},
		{"noext", "_stripped", "noext_stripped"},
	}
	for _, tt := range tests {
		if got := suffixedPath(tt.path, tt.suffix); got != tt.want {
			t.Errorf("suffixedPath(%q, %q) = %q, want %q", tt.path, tt.suffix, got, tt.want)
		}
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{1234567, "1 234 567"},
	}
	for _, tt := range tests {
		if got := formatInt(tt.in); got != tt.want {
			t.Errorf("formatInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	if got := formatBytes(512); got != "512 B" {
		t.Errorf("formatBytes(512) = %q", got)
	}
	if got := formatBytes(2048); got != "2.00 kB" {
		t.Errorf("formatBytes(2048) = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(1500 * time.Millisecond); got != "1.50s" {
		t.Errorf("formatDuration(1.5s) = %q", got)
	}
	if got := formatDuration(90 * time.Second); got != "1m 30.00s" {
		t.Errorf("formatDuration(90s) = %q", got)
	}
}

func TestFileExtension(t *testing.T) {
	if got := fileExtension("/tmp/Mesh.OBJ"); got != ".obj" {
		t.Errorf("fileExtension = %q, want .obj", got)
	}
	if got := fileExtension("noext"); got != "" {
		t.Errorf("fileExtension = %q, want empty", got)
	}
}
