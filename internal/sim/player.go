package sim

import "github.com/skyhop-game/skyhop/internal/core"

// World holds the playfield geometry and the simulation constants that do
// not vary with difficulty. All lengths are in world units.
type World struct {
	Width  float64 // Playfield width
	Height float64 // Playfield height

	PlayerWidth  float64
	PlayerHeight float64
	PlayerStartX float64
	PlayerStartY float64

	MoveSpeed         float64 // Horizontal player displacement per tick while a key is held
	ForgivenessMargin float64 // Inward hitbox shrink applied before collision tests
	ObstacleWidth     float64
	GapMargin         float64 // Minimum distance of a gap from the top and bottom edges
	DespawnMargin     float64 // How far past the left edge an obstacle lives before removal

	TickRate int // Ticks per second, used to convert spawn intervals to ticks
}

// DefaultWorld returns the standard playfield.
func DefaultWorld() World {
	return World{
		Width:             800,
		Height:            600,
		PlayerWidth:       60,
		PlayerHeight:      45,
		PlayerStartX:      120,
		PlayerStartY:      250,
		MoveSpeed:         3.0,
		ForgivenessMargin: 12,
		ObstacleWidth:     52,
		GapMargin:         50,
		DespawnMargin:     50,
		TickRate:          60,
	}
}

// tickMs is the simulated duration of one tick in milliseconds.
func (w World) tickMs() float64 {
	rate := w.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000.0 / float64(rate)
}

// Player is the player-controlled sprite. It is owned exclusively by the
// match and mutated only inside Tick and Flap.
type Player struct {
	X, Y   float64
	Width  float64
	Height float64
	VY     float64 // Vertical velocity, positive = down
	Angle  float64 // Visual tilt in radians, cosmetic only
}

// Rect returns the player's full bounding box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Hitbox returns the bounding box shrunk by the forgiveness margin,
// making collisions more permissive than the sprite bounds.
func (p Player) Hitbox(margin float64) core.RectF {
	return p.Rect().Inset(margin)
}

// CenterX returns the horizontal center of the player.
func (p Player) CenterX() float64 {
	return p.X + p.Width/2
}

// CenterY returns the vertical center of the player.
func (p Player) CenterY() float64 {
	return p.Y + p.Height/2
}
