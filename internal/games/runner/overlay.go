package runner

import (
	"time"

	"github.com/vovakirdan/portfolio-runner/internal/core"
)

// OverlayState is what the overlay panel shows right now.
type OverlayState struct {
	Topic    TopicID
	Title    string
	Message  string // Full text, for layout
	Revealed string // Typed-out prefix of Message
	Links    []Link
	Note     string
	Visible  bool
}

// Overlay presents one topic at a time with a typewriter reveal and an
// automatic dismissal. All of its timing runs on the game's scheduler.
type Overlay struct {
	sched        *core.Scheduler
	tick         time.Duration
	dismissAfter time.Duration

	topic   Topic
	text    []rune
	shown   int
	visible bool

	typing  core.Token
	dismiss core.Token
}

// NewOverlay creates a hidden overlay.
func NewOverlay(sched *core.Scheduler, tick, dismissAfter time.Duration) *Overlay {
	return &Overlay{sched: sched, tick: tick, dismissAfter: dismissAfter}
}

// Show replaces whatever is on screen with topic and restarts both timers.
func (o *Overlay) Show(topic Topic) {
	o.cancel()

	o.topic = topic
	o.text = []rune(topic.Message)
	o.shown = 0
	o.visible = true

	if len(o.text) > 0 {
		o.typing = o.sched.Every(o.tick, o.typeNext)
	}
	o.dismiss = o.sched.After(o.dismissAfter, o.Dismiss)
}

func (o *Overlay) typeNext() {
	if o.shown < len(o.text) {
		o.shown++
	}
	if o.shown >= len(o.text) {
		o.sched.Cancel(o.typing)
		o.typing = 0
	}
}

// Dismiss hides the overlay and clears its topic, finished or not.
func (o *Overlay) Dismiss() {
	o.cancel()
	o.topic = Topic{}
	o.text = nil
	o.shown = 0
	o.visible = false
}

func (o *Overlay) cancel() {
	if o.typing != 0 {
		o.sched.Cancel(o.typing)
		o.typing = 0
	}
	if o.dismiss != 0 {
		o.sched.Cancel(o.dismiss)
		o.dismiss = 0
	}
}

// Active returns the topic on screen, or NoTopic.
func (o *Overlay) Active() TopicID {
	if !o.visible {
		return NoTopic
	}
	return o.topic.ID
}

// Typing reports whether characters are still being revealed.
func (o *Overlay) Typing() bool {
	return o.visible && o.shown < len(o.text)
}

// State returns a copy of the overlay for drawing.
func (o *Overlay) State() OverlayState {
	if !o.visible {
		return OverlayState{}
	}
	return OverlayState{
		Topic:    o.topic.ID,
		Title:    o.topic.Title,
		Message:  o.topic.Message,
		Revealed: string(o.text[:o.shown]),
		Links:    o.topic.Links,
		Note:     o.topic.Note,
		Visible:  true,
	}
}
