package runner

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/portfolio-runner/internal/config"
	"github.com/vovakirdan/portfolio-runner/internal/core"
)

// AdvanceRule says when a phase hands over to the next one.
type AdvanceRule int

const (
	AdvanceNone    AdvanceRule = iota // Terminal phase
	AdvanceCollect                    // Every marker collected, then Delay
	AdvanceWrap                       // Horizontal wraparound
)

// String returns the rule's config name.
func (r AdvanceRule) String() string {
	switch r {
	case AdvanceCollect:
		return config.AdvanceCollect
	case AdvanceWrap:
		return config.AdvanceWrap
	default:
		return config.AdvanceNone
	}
}

func parseAdvance(s string) AdvanceRule {
	switch s {
	case config.AdvanceCollect:
		return AdvanceCollect
	case config.AdvanceWrap:
		return AdvanceWrap
	default:
		return AdvanceNone
	}
}

// Marker is a collectible placed in reference space.
type Marker struct {
	LogicalX float64
	Topic    TopicID
}

// Phase is one stage of a variant.
type Phase struct {
	Background string
	Window     int // Markers eligible at once; 0 = all
	Markers    []Marker
	Advance    AdvanceRule
	Delay      time.Duration
}

// PhasesFromConfig converts a variant's phase list.
func PhasesFromConfig(v config.VariantConfig) []Phase {
	phases := make([]Phase, 0, len(v.Phases))
	for _, pc := range v.Phases {
		p := Phase{
			Background: pc.Background,
			Window:     pc.Window,
			Advance:    parseAdvance(pc.Advance.When),
			Delay:      pc.Advance.Delay,
		}
		for _, m := range pc.Markers {
			p.Markers = append(p.Markers, Marker{LogicalX: m.X, Topic: TopicID(m.Topic)})
		}
		phases = append(phases, p)
	}
	return phases
}

// Track is the marker and phase state machine.
//
// Within a phase, markers are eligible through a sliding window that starts
// at the cursor; each collection moves the cursor forward by one, never past
// the point where the window would run off the end of the list. A collected
// marker stays out of play until the phase changes.
type Track struct {
	phases    []Phase
	index     int
	collected mapset.Set[int]
	cursor    int
	pending   core.Token
}

// NewTrack creates a track positioned on the first phase.
func NewTrack(phases []Phase) *Track {
	if len(phases) == 0 {
		phases = []Phase{{}}
	}
	return &Track{
		phases:    phases,
		collected: mapset.New[int](),
	}
}

// Phase returns the current phase.
func (t *Track) Phase() Phase {
	return t.phases[t.index]
}

// Index returns the 0-based index of the current phase.
func (t *Track) Index() int {
	return t.index
}

// Len returns the number of phases.
func (t *Track) Len() int {
	return len(t.phases)
}

// Last reports whether the current phase is the final one.
func (t *Track) Last() bool {
	return t.index == len(t.phases)-1
}

// Marker returns marker i of the current phase.
func (t *Track) Marker(i int) Marker {
	return t.phases[t.index].Markers[i]
}

// Cursor returns the first index of the eligible window.
func (t *Track) Cursor() int {
	return t.cursor
}

func (t *Track) windowEnd() int {
	n := len(t.Phase().Markers)
	w := t.Phase().Window
	if w <= 0 || t.cursor+w > n {
		return n
	}
	return t.cursor + w
}

// Eligible returns the indices of uncollected markers inside the window,
// in list order.
func (t *Track) Eligible() []int {
	var out []int
	for i := t.cursor; i < t.windowEnd(); i++ {
		if !t.collected.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// Collected reports whether marker i of the current phase was collected.
func (t *Track) Collected(i int) bool {
	return t.collected.Has(i)
}

// Collect marks marker i collected and moves the window.
// It reports false if i was already collected or is out of range.
func (t *Track) Collect(i int) bool {
	if i < 0 || i >= len(t.Phase().Markers) || t.collected.Has(i) {
		return false
	}
	t.collected.Put(i)

	limit := len(t.Phase().Markers) - t.Phase().Window
	if t.Phase().Window <= 0 || limit < 0 {
		limit = 0
	}
	t.cursor = core.Min(t.cursor+1, limit)
	return true
}

// Complete reports whether every marker of the current phase is collected.
func (t *Track) Complete() bool {
	return t.collected.Size() == len(t.Phase().Markers)
}

// Pending returns the token of a scheduled delayed advance, or 0.
func (t *Track) Pending() core.Token {
	return t.pending
}

// SetPending records the token of a scheduled delayed advance.
func (t *Track) SetPending(tok core.Token) {
	t.pending = tok
}

// Advance moves to the next phase and clears the per-phase bundle.
// It reports false on the last phase.
func (t *Track) Advance() bool {
	if t.Last() {
		return false
	}
	t.index++
	t.clear()
	return true
}

// Rewind returns to the first phase.
func (t *Track) Rewind() {
	t.index = 0
	t.clear()
}

func (t *Track) clear() {
	t.collected = mapset.New[int]()
	t.cursor = 0
	t.pending = 0
}
