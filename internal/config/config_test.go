package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cutline.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
default_fps = 60
snap_threshold_px = 8.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultFPS != 60 {
		t.Errorf("DefaultFPS = %d, want 60", cfg.DefaultFPS)
	}
	if cfg.SnapThresholdPx != 8.5 {
		t.Errorf("SnapThresholdPx = %g, want 8.5", cfg.SnapThresholdPx)
	}
	// Untouched fields keep defaults.
	if cfg.PixelsPerSecond != DefaultPixelsPerSecond {
		t.Errorf("PixelsPerSecond = %g, want default", cfg.PixelsPerSecond)
	}
	if cfg.MaxUndoEntries != DefaultMaxUndoEntries {
		t.Errorf("MaxUndoEntries = %d, want default", cfg.MaxUndoEntries)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, `default_fps = [not toml`)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zero fps", `default_fps = 0`},
		{"negative scale", `pixels_per_second = -1.0`},
		{"negative snap", `snap_threshold_px = -2.0`},
		{"zero undo", `max_undo_entries = 0`},
		{"zero autosave", `autosave_ms = 0`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAutosaveDebounce(t *testing.T) {
	cfg := Default()
	if got := cfg.AutosaveDebounce(); got != 100*time.Millisecond {
		t.Errorf("AutosaveDebounce = %v, want 100ms", got)
	}
}
