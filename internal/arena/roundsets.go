package arena

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"arcarena/internal/config"
	"arcarena/internal/geom"
)

var ErrUnknownRoundSet = errors.New("unknown round set")

// EverythingSet plays every variant once per cycle.
const EverythingSet = "everything"

var roundSets = map[string][]string{
	"all": {
		Basic, Scatter, Apple, NoGap, TurboArc, Dizzy, Indigestion, ReadyAim, Squeeze, TurboArc,
		ColorBlind, AppleRush, RightTurnOnly, Boost, TurboArc, Follower, AlternateTurns, ReadyAim,
		TreasureChamber,
	},
	"basic_only": {Basic},
	"simple":     {Basic, Basic, Apple, Scatter, TurboArc},
	"custom": {
		Basic, Basic, Scatter, Basic, Apple, Scatter, NoGap, Basic, TurboArc, Dizzy, Scatter,
		Indigestion, Basic, ColorBlind, AppleRush, RightTurnOnly, Squeeze, Scatter, Boost, Follower,
		ReadyAim, Scatter, TreasureChamber, AlternateTurns, ColorBlind,
	},
	"favorite": {Scatter, Indigestion, AppleRush, Boost, Squeeze, Follower, ReadyAim},
}

// RoundSets lists the known set names, sorted.
func RoundSets() []string {
	names := []string{EverythingSet}
	for n := range roundSets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sequencer picks the variant for each round from a round set.
type Sequencer struct {
	set    []Variant
	random bool
	debug  bool
	boost  Variant
	rng    *geom.Rand

	// RoundIdx counts finished rounds.
	RoundIdx int
}

// NewSequencer resolves cfg.Round.RoundSet against the catalogue.
func NewSequencer(cfg *config.Settings, rng *geom.Rand) (*Sequencer, error) {
	all := Variants(cfg)
	byName := make(map[string]Variant, len(all))
	for _, v := range all {
		byName[v.Name] = v
	}

	var set []Variant
	if cfg.Round.RoundSet == EverythingSet {
		set = slices.Clone(all)
	} else {
		names, ok := roundSets[cfg.Round.RoundSet]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRoundSet, cfg.Round.RoundSet)
		}
		for _, n := range names {
			set = append(set, byName[n])
		}
	}
	return &Sequencer{
		set:    set,
		random: cfg.Round.RandomRoundSelection,
		debug:  cfg.Debug.On,
		boost:  byName[Boost],
		rng:    rng,
	}, nil
}

// Next returns the variant for the upcoming round. Debug builds always
// play Boost.
func (s *Sequencer) Next() Variant {
	if s.debug {
		return s.boost
	}
	if s.random {
		return s.set[s.rng.Intn(len(s.set))]
	}
	return s.set[s.RoundIdx%len(s.set)]
}

// Advance is called when a round ends.
func (s *Sequencer) Advance() { s.RoundIdx++ }

// Set returns the variants in play order.
func (s *Sequencer) Set() []Variant { return s.set }
