package crossing

import "math"

// Enemy is a bug crossing its lane left to right.
type Enemy struct {
	sprite       string
	x, y         float64
	speed        float64 // pixels per second
	spriteWidth  float64
	spriteHeight float64
}

// NewEnemy places an enemy with its top at lane y, shifted down by half a
// sprite so it sits in the middle of the lane.
func NewEnemy(g *Game, x, y float64) *Enemy {
	e := &Enemy{
		sprite:       SpriteEnemy,
		spriteWidth:  g.TileWidth / 2,
		spriteHeight: g.TileHeight,
	}
	e.x = x
	e.y = y + e.spriteHeight/2
	e.SetSpeed(g)
	return e
}

// SetSpeed draws a speed in [tileWidth, tileWidth + difficulty*tileWidth).
func (e *Enemy) SetSpeed(g *Game) {
	e.speed = math.Floor(g.rng.Float64()*float64(g.Difficulty)*g.TileWidth) + g.TileWidth
}

// Update moves the enemy by dt seconds while the game is running and
// recycles it once it leaves the canvas on the right.
func (e *Enemy) Update(g *Game, dt float64) {
	if !g.IsRunning() {
		return
	}
	e.x += dt * e.speed
	if e.x > g.CanvasWidth {
		e.Reset(g)
	}
}

// Reset moves the enemy to a random x in [-ResetSpan, 0) and draws a new
// speed, so recycled enemies re-enter out of step with each other.
func (e *Enemy) Reset(g *Game) {
	e.x = -(1 - g.rng.Float64()) * g.ResetSpan
	e.SetSpeed(g)
}

// X returns the left edge in pixels.
func (e *Enemy) X() float64 { return e.x }

// Y returns the top edge in pixels.
func (e *Enemy) Y() float64 { return e.y }

// Speed returns the speed in pixels per second.
func (e *Enemy) Speed() float64 { return e.speed }

// Width returns the sprite width in pixels.
func (e *Enemy) Width() float64 { return e.spriteWidth }
