// Package sound names the cues the game can ask for. Playback lives in
// internal/audio; logic packages only depend on this leaf.
package sound

type Cue int

const (
	Startup Cue = iota
	Select
	Reject
	Blip
	CountdownBeep
	Go
	Explode
	Fire
	BulletFizzle
	BulletHit
	AppleSpawn
	Apple
	Boost
	Teleport
	cueCount
)

// Count is the number of defined cues.
const Count = int(cueCount)

var names = [...]string{
	Startup:       "startup",
	Select:        "select",
	Reject:        "reject",
	Blip:          "blip",
	CountdownBeep: "countdown",
	Go:            "go",
	Explode:       "explode",
	Fire:          "fire",
	BulletFizzle:  "bullet-fizzle",
	BulletHit:     "bullet-hit",
	AppleSpawn:    "apple-spawn",
	Apple:         "apple",
	Boost:         "boost",
	Teleport:      "teleport",
}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(names) {
		return "unknown"
	}
	return names[c]
}

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(c Cue)
}

// Nop drops every cue.
type Nop struct{}

func (Nop) Play(Cue) {}
