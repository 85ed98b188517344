package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty scales the enemy speed ceiling and the winning score.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyNormal Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// Difficulties lists every valid level in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// String returns the preset name for the level.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return strconv.Itoa(int(d))
	}
}

// ParseDifficulty accepts a preset name (easy, normal, hard) or a level 1-3.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return DifficultyEasy, nil
	case "normal", "2":
		return DifficultyNormal, nil
	case "hard", "3":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or 1-3)", ErrInvalid, s)
}
