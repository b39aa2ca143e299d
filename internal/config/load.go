package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load returns the defaults overridden by the environment. When path names
// an existing .env file its variables are loaded first; a missing file is
// not an error. Variables already set in the process environment win over
// the file.
func Load(path string) (*Settings, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	s := Default()
	if err := s.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return s, nil
}

type lookupFunc func(key string) (string, bool)

func (s *Settings) applyEnv(lookup lookupFunc) error {
	if v, ok := lookup("ARC_ROUND_SET"); ok && v != "" {
		s.Round.RoundSet = v
	}
	if v, ok := lookup("ARC_ROSTER_FILE"); ok && v != "" {
		s.Player.RosterFile = v
	}
	if v, ok := lookup("ARC_RESOLUTION"); ok && v != "" {
		w, h, err := parseResolution(v)
		if err != nil {
			return fmt.Errorf("ARC_RESOLUTION: %w", err)
		}
		s.Win.ResolutionX, s.Win.ResolutionY = w, h
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"ARC_RANDOM_ROUNDS", &s.Round.RandomRoundSelection},
		{"ARC_SHUFFLE_STARTS", &s.Round.ShuffleStartLocations},
		{"ARC_FULLSCREEN", &s.Win.Fullscreen},
		{"ARC_SFX", &s.Sound.EnableSFX},
		{"ARC_DEBUG", &s.Debug.On},
		{"ARC_FAST_START", &s.Debug.FastStart},
		{"ARC_BACKGROUNDS", &s.Background.Visible},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = parsed
	}

	if v, ok := lookup("ARC_SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ARC_SEED: %w", err)
		}
		s.Seed = seed
	}
	if v, ok := lookup("ARC_ROBOTS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ARC_ROBOTS: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("ARC_ROBOTS: negative count %d", n)
		}
		s.Robots = n
	}
	return nil
}

func parseResolution(v string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(v), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", v)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("non-positive size %dx%d", w, h)
	}
	return w, h, nil
}
