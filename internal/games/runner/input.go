package runner

import "github.com/vovakirdan/portfolio-runner/internal/core"

// handleInput applies the frame's intents in a fixed order: start, tap,
// jump, pause.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionStart) {
		g.start()
	}
	if in.Has(core.ActionTap) {
		if g.started {
			g.jump()
		} else {
			g.start()
		}
	}
	if in.Has(core.ActionJump) {
		g.jump()
	}
	if in.Has(core.ActionPause) {
		g.togglePause()
	}
}

// start begins the session and loads the current phase's assets.
// Later calls do nothing.
func (g *Game) start() {
	if g.started {
		return
	}
	g.started = true
	g.beginAssets()
	g.log.Info("game started", "variant", g.id)
}

func (g *Game) jump() {
	if !g.started || g.paused {
		return
	}
	if g.player.Jump(g.cfg.Physics.JumpVelocity) {
		g.events = append(g.events, core.EventJump)
	}
}

func (g *Game) togglePause() {
	if !g.started {
		return
	}
	g.paused = !g.paused
	g.log.Debug("pause toggled", "paused", g.paused)
}
