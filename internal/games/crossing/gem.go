package crossing

// Gem is a collectible placed on a random tile.
//
// TODO: award points and play SoundCoin when the player reaches the gem,
// once the scoring rule for collection is decided.
type Gem struct {
	sprite       string
	x, y         float64
	spriteWidth  float64
	spriteHeight float64
}

// NewGem places a gem on a random tile of the upper rows, inset so the
// half-width sprite sits in the middle of its tile.
func NewGem(g *Game) *Gem {
	gm := &Gem{
		sprite:       SpriteGem,
		spriteWidth:  g.TileWidth / 2,
		spriteHeight: g.TileHeight,
	}
	gm.x = float64(g.rng.Intn(g.Columns)+1)*g.TileWidth - (gm.spriteWidth + gm.spriteWidth/2)
	gm.y = float64(g.rng.Intn(g.Rows-1)+1)*g.TileHeight + g.TileHeight/2
	return gm
}

// Reset replaces the game's gem with a new one while the game is running.
func (gm *Gem) Reset(g *Game) {
	if g.IsRunning() {
		g.gem = NewGem(g)
	}
}

// X returns the left edge in pixels.
func (gm *Gem) X() float64 { return gm.x }

// Y returns the top edge in pixels.
func (gm *Gem) Y() float64 { return gm.y }

// Width returns the sprite width in pixels.
func (gm *Gem) Width() float64 { return gm.spriteWidth }
