// Package arena runs a single round of the game: the snakes, the shared
// trail bitmap, the round variants and the running scoreboard.
package arena

import (
	"github.com/rs/zerolog"

	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

// Services is what a round needs from the outside world.
type Services struct {
	Cfg     *config.Settings
	Sound   sound.Player
	Log     zerolog.Logger
	Rand    *geom.Rand
	Palette *playfield.Palette
	// Screen is the playfield size in pixels.
	Screen geom.RectF
}

