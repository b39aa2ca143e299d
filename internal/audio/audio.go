// Package audio plays synthesized cues through oto.
package audio

import (
	"bytes"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"

	"arcarena/internal/audio/synth"
	"arcarena/internal/config"
	"arcarena/internal/sound"
)

// maxExplosions caps overlapping explosions; more than two clip the speakers.
const maxExplosions = 2

// Player implements sound.Player. Every cue except the explosion is
// rendered once up front; explosions get a fresh seed each time.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	cfg    config.SoundSettings
	log    zerolog.Logger
	cache  [sound.Count][]byte
	booms  atomic.Int32
	boomNo atomic.Uint64
}

// New opens the audio device. A failure here is not fatal to the game;
// callers fall back to sound.Nop.
func New(cfg config.SoundSettings, log zerolog.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	p := &Player{ctx: ctx, ready: ready, cfg: cfg, log: log}
	for c := sound.Cue(0); int(c) < sound.Count; c++ {
		if c != sound.Explode {
			p.cache[c] = synth.Cue(c, 0)
		}
	}
	log.Info().Int("rate", synth.SampleRate).Bool("sfx", cfg.EnableSFX).Float64("volume", cfg.Volume).Msg("audio ready")
	return p, nil
}

// Play starts c without blocking. Cues asked for before the device is
// ready, or while effects are disabled, are dropped.
func (p *Player) Play(c sound.Cue) {
	if !p.cfg.EnableSFX || c < 0 || int(c) >= sound.Count {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}

	buf := p.cache[c]
	if c == sound.Explode {
		if p.booms.Load() >= maxExplosions {
			return
		}
		p.booms.Add(1)
		buf = synth.Cue(c, p.boomNo.Add(1)^uint64(time.Now().UnixNano()))
	}
	p.log.Debug().Stringer("cue", c).Msg("play")
	go func() {
		if c == sound.Explode {
			defer p.booms.Add(-1)
		}
		pl := p.ctx.NewPlayer(bytes.NewReader(buf))
		pl.SetVolume(p.cfg.Volume)
		pl.Play()
		for pl.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := pl.Close(); err != nil {
			p.log.Warn().Err(err).Stringer("cue", c).Msg("closing player")
		}
	}()
}
