package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Sprite ids.
const (
	SpriteEnemy  = "enemy-bug"
	SpritePlayer = "char-horn-girl"
	SpriteGem    = "gem-orange"
	SpriteWater  = "water-block"
	SpriteStone  = "stone-block"
	SpriteGrass  = "grass-block"
)

// Sprite is a terminal drawable: Body fills the sprite, Head marks its
// leading edge.
type Sprite struct {
	Body  rune
	Head  rune
	Color core.Color
}

var sprites = map[string]Sprite{
	SpriteEnemy:  {Body: '▓', Head: '▶', Color: core.ColorBrightRed},
	SpritePlayer: {Body: '☻', Head: '☻', Color: core.ColorBrightMagenta},
	SpriteGem:    {Body: '◆', Head: '◆', Color: core.ColorOrange},
	SpriteWater:  {Body: '≈', Head: '≈', Color: core.ColorBlue},
	SpriteStone:  {Body: '░', Head: '░', Color: core.ColorGray},
	SpriteGrass:  {Body: '"', Head: '"', Color: core.ColorGreen},
}

var missingSprite = Sprite{Body: '?', Head: '?', Color: core.ColorDefault}

// LookupSprite resolves a sprite by id. Unknown ids resolve to a visible
// placeholder rather than failing.
func LookupSprite(id string) Sprite {
	if s, ok := sprites[id]; ok {
		return s
	}
	return missingSprite
}
