// Package game is the desktop driver: it owns the window, the GL renderer,
// audio and input capture, and runs a session.Session in the frame loop.
package game

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"arcarena/internal/audio"
	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/player"
	"arcarena/internal/session"
	"arcarena/internal/sound"
)

const maxFrameDt = 0.1

type Options struct {
	Settings *config.Settings
	Log      zerolog.Logger
	Rand     *geom.Rand
	// Roster, when set, restores the last match's players and saves the
	// new ones when a match starts.
	Roster *player.RosterStore
}

// RunDesktop opens the window and plays until ESC or the window closes.
// A failing round set is returned; GL failures panic.
func RunDesktop(opts Options) error {
	runtime.LockOSThread()
	cfg := opts.Settings
	log := opts.Log

	window, err := initWindow(cfg.Win)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	var snd sound.Player = sound.Nop{}
	if cfg.Sound.EnableSFX {
		p, err := audio.New(cfg.Sound, log)
		if err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		} else {
			snd = p
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1.0)

	rend, err := NewRenderer(cfg.Win.ResolutionX, cfg.Win.ResolutionY, cfg.Win.BackgroundColorIdx)
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	input := NewInput(window, cfg.Input.JoyCountMax, cfg.Input.JoyDeadzone)
	players := loadRoster(opts.Roster, input, log)

	sess, err := session.New(session.Options{
		Settings: cfg,
		Sound:    snd,
		Log:      log,
		Rand:     opts.Rand,
		Joys:     input,
		Roster:   opts.Roster,
		Players:  players,
	})
	if err != nil {
		return err
	}

	last := glfw.GetTime()
	for !window.ShouldClose() && !sess.Done() {
		now := glfw.GetTime()
		dt := min(now-last, maxFrameDt)
		last = now

		glfw.PollEvents()
		sess.Update(dt, input.Events(), input)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.BeginFrame(fbW, fbH)
		rend.DrawFrame(sess.Frame())
		window.SwapBuffers()
	}
	log.Info().Msg("bye")
	return nil
}

// loadRoster restores the saved players. Any failure, a missing pad
// included, starts the lobby empty.
func loadRoster(store *player.RosterStore, joys player.JoyNamer, log zerolog.Logger) []*player.Controller {
	if store == nil {
		return nil
	}
	players, err := store.Load(joys)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err == nil:
		log.Info().Int("players", len(players)).Str("path", store.Path).Msg("players restored")
		return players
	case errors.Is(err, player.ErrJoystickMissing):
		log.Info().Err(err).Msg("saved players need a gamepad that is gone, starting fresh")
	default:
		log.Warn().Err(err).Str("path", store.Path).Msg("could not load saved players")
	}
	return nil
}
