package crossing

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-crossing/internal/audio"
)

// Player is the controlled character. Its score counts down every running
// tick.
type Player struct {
	sprite       string
	x, y         float64
	homeX, homeY float64
	score        int
	outcome      ScoreState // StateWin or StateLose once the game is over
	board        Scoreboard
}

// NewPlayer puts the player on its home tile: the middle column of the
// bottom row.
func NewPlayer(g *Game) *Player {
	p := &Player{
		sprite: SpritePlayer,
		homeX:  float64(g.Columns/2) * g.TileWidth,
		homeY:  float64(g.Rows-1) * g.TileHeight,
		score:  g.ScoreInitial,
	}
	p.x = p.homeX
	p.y = p.homeY
	p.DrawScore(g, g.scores.Classify(p.score))
	return p
}

// Update runs one tick of the score state machine.
func (p *Player) Update(g *Game) {
	if !g.IsRunning() {
		return
	}

	switch {
	case p.HasWon(g):
		g.over = true
		p.outcome = StateWin
		p.DrawScore(g, StateWin)
	case p.HasLost():
		g.over = true
		p.outcome = StateLose
		p.DrawScore(g, StateLose)
	default:
		p.score--
		p.DrawScore(g, g.scores.Classify(p.score))
	}
}

// HasWon reports whether the score reached the winning score.
func (p *Player) HasWon(g *Game) bool {
	return p.score >= g.ScoreWinning
}

// HasLost reports whether the score ran out.
func (p *Player) HasLost() bool {
	return p.score <= 0
}

// DrawScore updates the status line for the given state.
func (p *Player) DrawScore(g *Game, state ScoreState) {
	var text string
	if state == StateWin || state == StateLose {
		text = fmt.Sprintf("You %s. Press SPACE to restart", strings.ToUpper(string(state)))
	} else {
		text = fmt.Sprintf("SCORE %d of %d.", p.score, g.ScoreWinning)
	}
	p.board = Scoreboard{State: state, Text: text, Color: g.scores.Color(state)}
}

// HandleInput applies a key. Space restarts a finished game (reported by
// the return value) or toggles pause; M toggles mute; movement only works
// while running.
func (p *Player) HandleInput(g *Game, k Key) (restart bool) {
	switch k {
	case KeySpacebar:
		if g.over {
			return true
		}
		g.paused = !g.paused
		return false
	case KeyMute:
		g.muted = !g.muted
		return false
	}

	if !g.IsRunning() {
		return false
	}

	switch k {
	case KeyUp:
		// The top row is water: stepping into it sends the player home.
		if p.y-g.TileHeight >= g.TileHeight {
			p.y -= g.TileHeight
		} else {
			g.PlaySFX(audio.SoundSplash)
			g.logger.Debug("splash", "x", p.x, "score", p.score)
			p.Reset()
		}
	case KeyDown:
		if p.y+2*g.TileHeight <= g.CanvasHeight {
			p.y += g.TileHeight
		}
	case KeyRight:
		if p.x+g.TileWidth < g.CanvasWidth {
			p.x += g.TileWidth
		}
	case KeyLeft:
		if p.x-g.TileWidth >= 0 {
			p.x -= g.TileWidth
		}
	}
	return false
}

// Reset returns the player to the home tile.
func (p *Player) Reset() {
	p.x = p.homeX
	p.y = p.homeY
}

// X returns the left edge in pixels.
func (p *Player) X() float64 { return p.x }

// Y returns the top edge in pixels.
func (p *Player) Y() float64 { return p.y }

// Score returns the current score.
func (p *Player) Score() int { return p.score }

// Scoreboard returns the last drawn status line.
func (p *Player) Scoreboard() Scoreboard { return p.board }
