package runner

import "github.com/vovakirdan/portfolio-runner/internal/core"

// Player is the runner's kinematic state. Y is the sprite's top edge and
// grows downward; the sprite rests on the ground when Y equals the ground line.
type Player struct {
	X         float64
	Y         float64
	VelocityY float64
	Jumping   bool
}

// Jump applies an upward impulse. It reports false while already airborne.
func (p *Player) Jump(velocity float64) bool {
	if p.Jumping {
		return false
	}
	p.VelocityY = velocity
	p.Jumping = true
	return true
}

// Fall integrates gravity for one frame and lands on groundY.
func (p *Player) Fall(gravity, groundY float64) {
	p.VelocityY += gravity
	p.Y += p.VelocityY

	if p.Y > groundY {
		p.Y = groundY
		p.VelocityY = 0
		p.Jumping = false
	}
}

// Run moves right by speed and wraps to the left edge past width.
// It reports whether the player wrapped.
func (p *Player) Run(speed, width float64) bool {
	p.X += speed
	if p.X > width {
		p.X = 0
		return true
	}
	return false
}

// Refit keeps the player inside a resized surface. A grounded player
// follows the ground line; an airborne one keeps its height and velocity
// unless that would leave it below the new ground line.
func (p *Player) Refit(groundY, width float64) {
	if !p.Jumping || p.Y > groundY {
		p.Y = groundY
	}
	p.X = core.ClampF(p.X, 0, width)
}

// Box returns the player's hit box.
func (p Player) Box(size float64) core.RectF {
	return core.NewRectF(p.X, p.Y, size, size)
}
