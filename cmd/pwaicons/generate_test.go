package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateWritesIconSet(t *testing.T) {
	outDir := t.TempDir()

	rootCmd.SetArgs([]string{"generate", "--out", outDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != len(iconSet) {
		t.Errorf("wrote %d files, want %d", len(entries), len(iconSet))
	}

	for _, icon := range iconSet {
		path := filepath.Join(outDir, icon.name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("missing %s: %v", icon.name, err)
			continue
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Errorf("%s: not a decodable PNG: %v", icon.name, err)
			continue
		}
		if cfg.Width != icon.width || cfg.Height != icon.height {
			t.Errorf("%s: %dx%d, want %dx%d", icon.name, cfg.Width, cfg.Height, icon.width, icon.height)
		}
	}
}

func TestGenerateRejectsBadColor(t *testing.T) {
	rootCmd.SetArgs([]string{"generate", "--out", t.TempDir(), "--color", "indigo"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}
