package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Frame runs one complete frame: simulation update, drawing onto dst, then
// the win check. A nil dst skips drawing. It reports whether the win
// message was shown during this frame.
func (w *World) Frame(in Input, dst core.Surface, overlay Overlay) bool {
	w.Update(in)
	if dst != nil {
		w.Draw(dst)
	}
	return w.CheckWin(overlay)
}

// Update advances the simulation by one frame.
//
// The grounded flag read by settle is the one left by the previous frame's
// platform pass. The border clamp may set it, but it is cleared again before
// the platform pass, so only platform contact decides the next frame's value.
func (w *World) Update(in Input) {
	w.applyInput(in)
	w.integrate()
	w.settle()
	w.clampToBorder()
	w.Player.Grounded = false
	w.resolvePlatforms()
}

// applyInput sets horizontal velocity and starts a jump.
// Right is applied after left, so it wins when both are held.
func (w *World) applyInput(in Input) {
	p := &w.Player
	if in.Left {
		p.VX = -p.Speed
	}
	if in.Right {
		p.VX = p.Speed
	}
	if in.Jump && !p.Jumping && p.Grounded {
		p.Jumping = true
		p.Grounded = false
		p.VY = -p.Speed * 2
	}
}

// integrate applies gravity, moves the player and damps horizontal velocity.
func (w *World) integrate() {
	p := &w.Player
	p.VY += w.Env.Gravity
	p.X += p.VX
	p.Y += p.VY
	p.VX *= w.Env.Friction
}

// settle stops vertical motion while standing on something.
func (w *World) settle() {
	p := &w.Player
	if p.Grounded {
		p.VY = 0
		p.Jumping = false
	}
}

// clampToBorder keeps the player inside the canvas, zeroing the velocity
// component of every clamped side. The bottom edge zeroes vy as well as
// grounding the player; grounding alone would let vy grow every frame the
// player rests there. Only configs whose floor leaves the bottom edge open
// reach that branch.
func (w *World) clampToBorder() {
	p := &w.Player
	if p.X < 0 {
		p.X = 0
		p.VX = 0
	}
	if p.X+p.Width > w.Env.Width {
		p.X = w.Env.Width - p.Width
		p.VX = 0
	}
	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
	}
	if p.Y+p.Height > w.Env.Height {
		p.Y = w.Env.Height - p.Height
		p.VY = 0
		p.Jumping = false
		p.Grounded = true
	}
}

// resolvePlatforms collides the player with each platform in order and
// advances that platform's patrol right after its own test.
func (w *World) resolvePlatforms() {
	p := &w.Player
	for i := range w.Platforms {
		pl := &w.Platforms[i]

		switch ResolveCollision(p, pl.Box()) {
		case CollisionLeft, CollisionRight:
			p.VX = 0
		case CollisionBottom:
			p.Grounded = true
			p.Jumping = false
		case CollisionTop:
			p.VY = -p.VY
		}

		pl.patrol(w.Env.Width)
	}
}

// CheckWin shows the win message the first time the player overlaps the target.
func (w *World) CheckWin(overlay Overlay) bool {
	if w.messageShown || !w.Player.Box().Overlaps(w.Target) {
		return false
	}
	w.messageShown = true
	if overlay != nil {
		overlay.ShowMessage(w.Message)
	}
	return true
}

// Draw issues the frame's drawing calls: clear, border, player, target, platforms.
func (w *World) Draw(dst core.Surface) {
	bounds := w.Env.Bounds()
	dst.ClearRect(bounds)
	dst.StrokeRect(bounds, w.Palette.Border, w.BorderWidth)
	dst.FillRect(w.Player.Box(), w.Palette.Player)
	dst.StrokeRect(w.Target, w.Palette.Target, w.TargetLineWidth)
	for _, pl := range w.Platforms {
		dst.FillRect(pl.Box(), w.Palette.Platform)
	}
}
