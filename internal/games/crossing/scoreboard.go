package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// ScoreState selects the scoreboard text and color.
type ScoreState string

const (
	StateNormal   ScoreState = "normal"
	StateWarning  ScoreState = "warning"
	StateCritical ScoreState = "critical"
	StateWin      ScoreState = "win"
	StateLose     ScoreState = "lose"
)

// Scoreboard is the status line last drawn by the player.
type Scoreboard struct {
	State ScoreState
	Text  string
	Color core.Color
}

type scoreRule struct {
	state ScoreState
	color core.Color
	// match is nil for terminal states, which are chosen explicitly.
	match func(score float64) bool
}

// ScoreTable classifies running scores into color buckets. Rules are
// evaluated in order and the first match wins.
type ScoreTable struct {
	rules []scoreRule
}

// NewScoreTable builds the table for the given thresholds.
func NewScoreTable(warning, critical float64) ScoreTable {
	return ScoreTable{rules: []scoreRule{
		{StateCritical, core.ColorRed, func(s float64) bool { return s <= critical }},
		{StateWarning, core.ColorOrange, func(s float64) bool { return s <= warning && s > critical }},
		{StateNormal, core.ColorBlue, func(float64) bool { return true }},
		{StateWin, core.ColorGreen, nil},
		{StateLose, core.ColorRed, nil},
	}}
}

// Classify returns the running state for a score.
func (t ScoreTable) Classify(score int) ScoreState {
	for _, r := range t.rules {
		if r.match != nil && r.match(float64(score)) {
			return r.state
		}
	}
	return StateNormal
}

// Color returns the display color of a state.
func (t ScoreTable) Color(state ScoreState) core.Color {
	for _, r := range t.rules {
		if r.state == state {
			return r.color
		}
	}
	return core.ColorDefault
}
