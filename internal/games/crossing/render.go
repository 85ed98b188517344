package crossing

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

const (
	hudHeight   = 2 // scoreboard line plus a spacer
	minCellW    = 3
	maxCellW    = 10
	minCellH    = 1
	maxCellH    = 4
	tooSmallMsg = "Terminal too small"
)

// layout maps canvas pixels onto screen cells.
type layout struct {
	g      *Game
	board  core.Rect
	cellW  int
	cellH  int
	scaleX float64 // cells per pixel
	scaleY float64
}

func (g *Game) layoutFor(w, h int) (layout, bool) {
	cols := int(math.Ceil(g.CanvasWidth / g.TileWidth))
	rows := int(math.Ceil(g.CanvasHeight / g.TileHeight))

	cellW := min(w/cols, maxCellW)
	cellH := min((h-hudHeight)/rows, maxCellH)
	if cellW < minCellW || cellH < minCellH {
		return layout{}, false
	}

	boardW := cols * cellW
	boardH := rows * cellH
	return layout{
		g:      g,
		board:  core.NewRect(0, hudHeight, w, boardH).Center(boardW, boardH),
		cellW:  cellW,
		cellH:  cellH,
		scaleX: float64(cellW) / g.TileWidth,
		scaleY: float64(cellH) / g.TileHeight,
	}, true
}

// toCell converts a canvas position to a screen cell.
func (l layout) toCell(x, y float64) (int, int) {
	return l.board.X + int(math.Floor(x*l.scaleX)), l.board.Y + int(math.Floor(y*l.scaleY))
}

// span returns how many cells a pixel width covers, at least one.
func (l layout) span(w float64) int {
	return max(1, int(math.Round(w*l.scaleX)))
}

// put draws a sprite cell only inside the board, so enemies waiting left of
// the canvas stay hidden.
func (l layout) put(dst *core.Screen, x, y int, r rune, c core.Color) {
	if l.board.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// Render draws the board, the entities and the scoreboard. The screen is
// expected to be cleared by the caller.
func (g *Game) Render(dst *core.Screen) {
	l, ok := g.layoutFor(dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, tooSmallMsg)
		return
	}

	g.renderBoard(dst, l)
	for _, e := range g.enemies {
		e.render(dst, l)
	}
	g.player.render(dst, l)
	g.gem.render(dst, l)
	g.renderHUD(dst, l)

	switch g.Phase() {
	case PhasePaused:
		drawCenteredMessage(dst, l.board, "PAUSED", "Press SPACE to resume")
	case PhaseWon:
		drawCenteredMessage(dst, l.board, "YOU WIN", "Press SPACE to restart")
	case PhaseLost:
		drawCenteredMessage(dst, l.board, "YOU LOSE", "Press SPACE to restart")
	}
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	rows := l.board.H / l.cellH
	for row := 0; row < rows; row++ {
		tile := LookupSprite(tileFor(row, rows))
		dst.DrawRect(core.NewRect(l.board.X, l.board.Y+row*l.cellH, l.board.W, l.cellH), tile.Body, tile.Color)
	}
}

// tileFor picks the terrain of a row: water on top, grass on the two
// bottom rows, stone lanes between.
func tileFor(row, rows int) string {
	switch {
	case row == 0:
		return SpriteWater
	case row >= rows-2:
		return SpriteGrass
	default:
		return SpriteStone
	}
}

func (g *Game) renderHUD(dst *core.Screen, l layout) {
	board := g.player.Scoreboard()
	dst.DrawTextColored(l.board.X, 0, board.Text, board.Color)

	sound := "on"
	if g.muted {
		sound = "off"
	}
	status := fmt.Sprintf("%s | sound %s", g.Difficulty, sound)
	dst.DrawTextColored(l.board.Right()-len(status), 0, status, core.ColorGray)
}

func (e *Enemy) render(dst *core.Screen, l layout) {
	s := LookupSprite(e.sprite)
	cx, cy := l.toCell(e.x, e.y)
	w := l.span(e.spriteWidth)
	for i := 0; i < w; i++ {
		r := s.Body
		if i == w-1 {
			r = s.Head
		}
		l.put(dst, cx+i, cy, r, s.Color)
	}
}

func (p *Player) render(dst *core.Screen, l layout) {
	s := LookupSprite(p.sprite)
	cx, cy := l.toCell(p.x, p.y)
	l.put(dst, cx+l.cellW/2, cy+l.cellH/2, s.Body, s.Color)
}

func (gm *Gem) render(dst *core.Screen, l layout) {
	s := LookupSprite(gm.sprite)
	cx, cy := l.toCell(gm.x, gm.y)
	// Centered on the sprite, not stretched across it.
	l.put(dst, cx+l.span(gm.spriteWidth)/2, cy, s.Body, s.Color)
}

// drawCenteredMessage draws a message box in the middle of the area.
func drawCenteredMessage(dst *core.Screen, area core.Rect, title, subtitle string) {
	box := area.Center(max(len(title), len(subtitle))+4, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(box.X+(box.W-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle)
}
