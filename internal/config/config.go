// Package config provides YAML-based configuration loading for the runner:
// physics constants, viewport sizing rules, overlay timing, asset names,
// the variant/phase layout and the topic table.
package config

import (
	"fmt"
	"time"
)

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Viewport ViewportConfig           `yaml:"viewport"`
	Physics  PhysicsConfig            `yaml:"physics"`
	Player   PlayerConfig             `yaml:"player"`
	Markers  MarkerConfig             `yaml:"markers"`
	Ground   GroundConfig             `yaml:"ground"`
	Overlay  OverlayConfig            `yaml:"overlay"`
	Assets   AssetConfig              `yaml:"assets"`
	TUI      TUIConfig                `yaml:"tui"`
	Variants map[string]VariantConfig `yaml:"variants"`
	Topics   []TopicConfig            `yaml:"topics"`
}

// ViewportConfig defines how the drawing surface is sized from the window.
type ViewportConfig struct {
	ReferenceWidth       float64 `yaml:"reference_width"`        // Logical width marker positions are authored in
	MobileBreakpoint     float64 `yaml:"mobile_breakpoint"`      // Window widths at or below this are mobile
	WidthFraction        float64 `yaml:"width_fraction"`         // Share of the window width the surface takes
	MinWidth             float64 `yaml:"min_width"`              // Floor for the surface width
	MaxWidth             float64 `yaml:"max_width"`              // Desktop ceiling for the surface width
	MinHeight            float64 `yaml:"min_height"`             // Desktop floor for the surface height
	MobileMinHeight      float64 `yaml:"mobile_min_height"`      // Mobile floor for the surface height
	MobileHeightFraction float64 `yaml:"mobile_height_fraction"` // Mobile share of the window height
	AspectRatio          float64 `yaml:"aspect_ratio"`           // Height/width ratio, 9/16
}

// PhysicsConfig defines per-frame physics constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity every frame
	JumpVelocity float64 `yaml:"jump_velocity"` // Vertical velocity set by a jump (negative = up)
	RunSpeed     float64 `yaml:"run_speed"`     // Horizontal advance per frame
}

// PlayerConfig defines the player sprite box.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	Size         float64 `yaml:"size"`
	GroundMargin float64 `yaml:"ground_margin"` // Gap between the sprite's feet and the surface bottom
}

// MarkerConfig defines the collectible marker box.
type MarkerConfig struct {
	Size         float64 `yaml:"size"`
	BottomOffset float64 `yaml:"bottom_offset"` // Marker top edge sits this far above the surface bottom
}

// GroundConfig defines the translucent ground strip.
type GroundConfig struct {
	Height  float64 `yaml:"height"`
	Color   string  `yaml:"color"` // "#rrggbb"
	Opacity float64 `yaml:"opacity"`
}

// OverlayConfig defines typewriter and dismissal timing.
type OverlayConfig struct {
	Tick         time.Duration `yaml:"tick"`          // One more character per tick
	DismissAfter time.Duration `yaml:"dismiss_after"` // Measured from when the topic became active
}

// AssetConfig names the assets shared by every phase.
type AssetConfig struct {
	Dir       string `yaml:"dir"` // Empty = embedded defaults
	Player    string `yaml:"player"`
	Marker    string `yaml:"marker"`
	JumpSound string `yaml:"jump_sound"`
}

// TUIConfig maps terminal cells to device-independent pixels.
type TUIConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// VariantConfig is one playable layout of phases.
type VariantConfig struct {
	Title  string        `yaml:"title"`
	Phases []PhaseConfig `yaml:"phases"`
}

// PhaseConfig describes one stage: its background, markers and exit rule.
type PhaseConfig struct {
	Background string        `yaml:"background"`
	Window     int           `yaml:"window"` // Markers eligible at once; 0 = all
	Markers    []MarkerSpec  `yaml:"markers"`
	Advance    AdvanceConfig `yaml:"advance"`
}

// MarkerSpec places a marker in reference space.
type MarkerSpec struct {
	X     float64 `yaml:"x"`
	Topic string  `yaml:"topic"`
}

// Advance rules for leaving a phase.
const (
	AdvanceNone    = "none"    // Terminal phase
	AdvanceCollect = "collect" // After every marker is collected, wait Delay
	AdvanceWrap    = "wrap"    // On horizontal wraparound
)

// AdvanceConfig describes when a phase hands over to the next one.
type AdvanceConfig struct {
	When  string        `yaml:"when"`
	Delay time.Duration `yaml:"delay"`
}

// TopicConfig is one entry of the topic table.
type TopicConfig struct {
	ID      string       `yaml:"id"`
	Title   string       `yaml:"title"`
	Message string       `yaml:"message"`
	Note    string       `yaml:"note"`
	Links   []LinkConfig `yaml:"links"`
}

// LinkConfig is an outbound link shown under a topic.
type LinkConfig struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Variant returns the named variant.
func (c RunnerConfig) Variant(name string) (VariantConfig, error) {
	v, ok := c.Variants[name]
	if !ok {
		return VariantConfig{}, fmt.Errorf("config: unknown variant %q", name)
	}
	return v, nil
}

// Validate checks cross-field consistency.
func (c RunnerConfig) Validate() error {
	if c.Overlay.Tick <= 0 {
		return fmt.Errorf("config: overlay.tick must be positive, got %v", c.Overlay.Tick)
	}
	if c.Overlay.DismissAfter <= 0 {
		return fmt.Errorf("config: overlay.dismiss_after must be positive, got %v", c.Overlay.DismissAfter)
	}
	if c.Viewport.ReferenceWidth <= 0 {
		return fmt.Errorf("config: viewport.reference_width must be positive")
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("config: no variants defined")
	}

	topics := make(map[string]bool, len(c.Topics))
	for _, t := range c.Topics {
		if t.ID == "" {
			return fmt.Errorf("config: topic with empty id")
		}
		topics[t.ID] = true
	}

	for name, v := range c.Variants {
		if len(v.Phases) == 0 {
			return fmt.Errorf("config: variant %q has no phases", name)
		}
		for i, p := range v.Phases {
			if p.Window < 0 {
				return fmt.Errorf("config: variant %q phase %d: negative window", name, i+1)
			}
			switch p.Advance.When {
			case "", AdvanceNone, AdvanceCollect, AdvanceWrap:
			default:
				return fmt.Errorf("config: variant %q phase %d: unknown advance rule %q", name, i+1, p.Advance.When)
			}
			for _, m := range p.Markers {
				if !topics[m.Topic] {
					return fmt.Errorf("config: variant %q phase %d: marker topic %q is not in the topic table", name, i+1, m.Topic)
				}
			}
		}
	}
	return nil
}
