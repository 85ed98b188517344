// Package audio synthesizes and plays the game's sound effects.
package audio

// Sound names a sound effect.
type Sound string

const (
	SoundCoin    Sound = "coin"
	SoundCollide Sound = "collide"
	SoundSplash  Sound = "splash"
)

// Sounds lists every known effect.
func Sounds() []Sound {
	return []Sound{SoundCoin, SoundCollide, SoundSplash}
}

// Known reports whether s names a known effect.
func (s Sound) Known() bool {
	switch s {
	case SoundCoin, SoundCollide, SoundSplash:
		return true
	}
	return false
}

// Player triggers sound effects. Play must not block the caller.
type Player interface {
	Play(s Sound)
}

// Silent is a Player that discards every effect.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Sound) {}
