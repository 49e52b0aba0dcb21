package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var parsed RunnerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &parsed); err != nil {
		t.Fatalf("embedded yaml failed to parse: %v", err)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("embedded yaml failed validation: %v", err)
	}

	want := DefaultRunnerConfig()
	if parsed.Physics != want.Physics {
		t.Errorf("physics: embedded %+v, hardcoded %+v", parsed.Physics, want.Physics)
	}
	if parsed.Player != want.Player {
		t.Errorf("player: embedded %+v, hardcoded %+v", parsed.Player, want.Player)
	}
	if parsed.Markers != want.Markers {
		t.Errorf("markers: embedded %+v, hardcoded %+v", parsed.Markers, want.Markers)
	}
	if parsed.Overlay != want.Overlay {
		t.Errorf("overlay: embedded %+v, hardcoded %+v", parsed.Overlay, want.Overlay)
	}
	if parsed.Viewport != want.Viewport {
		t.Errorf("viewport: embedded %+v, hardcoded %+v", parsed.Viewport, want.Viewport)
	}

	for name, wv := range want.Variants {
		pv, ok := parsed.Variants[name]
		if !ok {
			t.Errorf("variant %q missing from embedded yaml", name)
			continue
		}
		if len(pv.Phases) != len(wv.Phases) {
			t.Errorf("variant %q: %d phases, want %d", name, len(pv.Phases), len(wv.Phases))
			continue
		}
		for i := range wv.Phases {
			p, w := pv.Phases[i], wv.Phases[i]
			if p.Background != w.Background || p.Window != w.Window || p.Advance != w.Advance {
				t.Errorf("variant %q phase %d: got %+v, want %+v", name, i+1, p, w)
			}
			if len(p.Markers) != len(w.Markers) {
				t.Errorf("variant %q phase %d: %d markers, want %d", name, i+1, len(p.Markers), len(w.Markers))
				continue
			}
			for j := range w.Markers {
				if p.Markers[j] != w.Markers[j] {
					t.Errorf("variant %q phase %d marker %d: got %+v, want %+v", name, i+1, j, p.Markers[j], w.Markers[j])
				}
			}
		}
	}

	if len(parsed.Topics) != len(want.Topics) {
		t.Fatalf("topics: got %d, want %d", len(parsed.Topics), len(want.Topics))
	}
	for i := range want.Topics {
		if parsed.Topics[i].ID != want.Topics[i].ID {
			t.Errorf("topic %d: got id %q, want %q", i, parsed.Topics[i].ID, want.Topics[i].ID)
		}
		if len(parsed.Topics[i].Links) != len(want.Topics[i].Links) {
			t.Errorf("topic %q: got %d links, want %d", want.Topics[i].ID, len(parsed.Topics[i].Links), len(want.Topics[i].Links))
		}
	}
}

func TestDefaultPhysicsConstants(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("gravity: got %v, want 0.7", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity != -15 {
		t.Errorf("jump velocity: got %v, want -15", cfg.Physics.JumpVelocity)
	}
	if cfg.Physics.RunSpeed != 5 {
		t.Errorf("run speed: got %v, want 5", cfg.Physics.RunSpeed)
	}
	if cfg.Overlay.Tick != 30*time.Millisecond {
		t.Errorf("overlay tick: got %v, want 30ms", cfg.Overlay.Tick)
	}
	if cfg.Overlay.DismissAfter != 8*time.Second {
		t.Errorf("dismiss: got %v, want 8s", cfg.Overlay.DismissAfter)
	}
}

func TestLoadRunnerCustomPathOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	body := `
physics:
  gravity: 1.2
overlay:
  tick: 10ms
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("gravity: got %v, want 1.2", cfg.Physics.Gravity)
	}
	// Keys left out keep their defaults
	if cfg.Physics.JumpVelocity != -15 {
		t.Errorf("jump velocity: got %v, want -15", cfg.Physics.JumpVelocity)
	}
	if cfg.Overlay.Tick != 10*time.Millisecond {
		t.Errorf("tick: got %v, want 10ms", cfg.Overlay.Tick)
	}
	if cfg.Overlay.DismissAfter != 8*time.Second {
		t.Errorf("dismiss: got %v, want 8s", cfg.Overlay.DismissAfter)
	}
	if _, err := cfg.Variant("phased"); err != nil {
		t.Errorf("phased variant lost after overlay: %v", err)
	}
}

func TestLoadRunnerTopicsReplaced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	body := `
variants:
  solo:
    title: Solo
    phases:
      - background: bg.png
        markers:
          - { x: 100, topic: hello }
topics:
  - id: hello
    title: Hello
    message: Hi there.
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRunner(path)
	if err == nil {
		t.Fatal("expected validation error: default variants reference topics that were replaced")
	}
	if !strings.Contains(err.Error(), "not in the topic table") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestLoadRunnerBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("physics: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunnerConfig)
		wantErr string
	}{
		{"defaults", func(*RunnerConfig) {}, ""},
		{"zero tick", func(c *RunnerConfig) { c.Overlay.Tick = 0 }, "overlay.tick"},
		{"zero dismiss", func(c *RunnerConfig) { c.Overlay.DismissAfter = 0 }, "dismiss_after"},
		{"no variants", func(c *RunnerConfig) { c.Variants = nil }, "no variants"},
		{"unknown advance", func(c *RunnerConfig) {
			v := c.Variants["flat"]
			v.Phases[0].Advance.When = "later"
			c.Variants["flat"] = v
		}, "unknown advance rule"},
		{"negative window", func(c *RunnerConfig) {
			v := c.Variants["flat"]
			v.Phases[0].Window = -1
			c.Variants["flat"] = v
		}, "negative window"},
		{"empty topic id", func(c *RunnerConfig) {
			c.Topics = append(c.Topics, TopicConfig{})
		}, "empty id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestVariantUnknown(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if _, err := cfg.Variant("nope"); err == nil {
		t.Error("expected error for unknown variant")
	}
}
