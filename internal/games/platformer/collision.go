package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// CollisionSide tells where the obstacle sits relative to the player.
type CollisionSide int

const (
	CollisionNone   CollisionSide = iota
	CollisionLeft                 // Obstacle to the player's left; player pushed right
	CollisionRight                // Obstacle to the player's right; player pushed left
	CollisionTop                  // Obstacle above; player pushed down
	CollisionBottom               // Obstacle below; player pushed up
)

// String returns the side name.
func (s CollisionSide) String() string {
	switch s {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// ResolveCollision separates the player from an obstacle along the axis of
// least penetration and reports the side that was hit.
// Equal penetration on both axes resolves vertically.
func ResolveCollision(p *Player, obstacle core.Box) CollisionSide {
	pcx, pcy := p.Box().Center()
	ocx, ocy := obstacle.Center()
	dx := pcx - ocx
	dy := pcy - ocy

	halfWidths := p.Width/2 + obstacle.W/2
	halfHeights := p.Height/2 + obstacle.H/2

	if math.Abs(dx) >= halfWidths || math.Abs(dy) >= halfHeights {
		return CollisionNone
	}

	ox := halfWidths - math.Abs(dx)
	oy := halfHeights - math.Abs(dy)

	if ox < oy {
		if dx > 0 {
			p.X += ox
			return CollisionLeft
		}
		p.X -= ox
		return CollisionRight
	}

	if dy > 0 {
		p.Y += oy
		return CollisionTop
	}
	p.Y -= oy
	return CollisionBottom
}
