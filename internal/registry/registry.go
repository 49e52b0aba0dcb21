// Package registry tracks the runner variants the CLI and the frontends can
// start. Built-in variants register from init; variants that only exist in a
// config file are added once the config is loaded.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/portfolio-runner/internal/core"
)

// Game is one playable session of a variant.
// Games contain pure logic with no frontend dependencies (no Bubble Tea, no Ebitengine).
// The platform handles input mapping, timing, and drawing.
type Game interface {
	// ID returns the variant ID (e.g., "flat", "phased").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset mounts a fresh session.
	// The RuntimeConfig provides the host window size and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Resize reports a new host window size in device-independent pixels.
	Resize(windowW, windowH int)

	// Step advances the simulation by one display frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided cell buffer.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState
}

// Origin says where a variant was defined.
type Origin int

const (
	Builtin    Origin = iota // Compiled in
	Configured               // Declared only in a config file
)

func (o Origin) String() string {
	if o == Configured {
		return "config"
	}
	return "builtin"
}

// Info describes a registered variant without creating a session.
type Info struct {
	ID     string
	Title  string
	Stages int
	Origin Origin
}

// Factory creates a session of a variant.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]*entry)
	mu      sync.RWMutex
)

// Register adds a variant. IDs must be non-empty and unique.
func Register(info Info, f Factory) error {
	if info.ID == "" {
		return fmt.Errorf("registry: empty variant ID")
	}
	if f == nil {
		return fmt.Errorf("registry: variant %q has no factory", info.ID)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		return fmt.Errorf("registry: variant %q already registered", info.ID)
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	entries[info.ID] = &entry{info: info, factory: f}
	return nil
}

// MustRegister is Register for init functions; it panics on error.
func MustRegister(info Info, f Factory) {
	if err := Register(info, f); err != nil {
		panic(err)
	}
}

// Describe updates the title and stage count of a registered variant, for
// a loaded config that retitles or reshapes it. An empty title keeps the
// current one.
func Describe(id, title string, stages int) error {
	mu.Lock()
	defer mu.Unlock()

	e, ok := entries[id]
	if !ok {
		return fmt.Errorf("registry: unknown variant %q", id)
	}
	if title != "" {
		e.info.Title = title
	}
	e.info.Stages = stages
	return nil
}

// List returns every variant, built-ins first, each group sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Origin != result[j].Origin {
			return result[i].Origin < result[j].Origin
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the description of id.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return Info{}, false
	}
	return e.info, true
}

// Create starts a new session of the variant.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
