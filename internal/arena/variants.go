package arena

import (
	"fmt"

	"arcarena/internal/config"
	"arcarena/internal/playfield"
)

// Variant names used by round sets.
const (
	Basic                  = "basic"
	Apple                  = "apple"
	AppleRush              = "apple_rush"
	TurboArc               = "turbo_arc"
	ColorBlind             = "color_blind"
	Dizzy                  = "dizzy"
	OneTooMany             = "one_too_many"
	WayTooMany             = "way_too_many"
	Juke                   = "juke"
	Indigestion            = "indigestion"
	Goliath                = "goliath"
	SpeedCycles            = "speed_cycles"
	LeadFoot               = "lead_foot"
	ReadyAim               = "ready_aim"
	Squeeze                = "squeeze"
	TreasureChamber        = "treasure_chamber"
	ToInfinity             = "to_infinity"
	Scatter                = "scatter"
	ScatterThroughInfinity = "scatter_through_infinity"
	NoGap                  = "no_gap"
	Follower               = "follower"
	RightTurnOnly          = "right_turn_only"
	LeftTurnOnly           = "left_turn_only"
	AlternateTurns         = "alternate_turns"
	Boost                  = "boost"
	BeamMeUp               = "beam_me_up"
	SqueezeReadyAim        = "squeeze_ready_aim"
)

func mods(ms ...Modifier) func(*config.Settings) []Modifier {
	return func(*config.Settings) []Modifier { return ms }
}

// Variants returns the full catalogue in display order. Modifiers are
// built fresh for every round since most of them carry state.
func Variants(cfg *config.Settings) []Variant {
	return []Variant{
		{
			Name:  Basic,
			Label: "Classic",
		},
		{
			Name:     Apple,
			Label:    "The Apple",
			SubLabel: fmt.Sprintf("%+d Points", cfg.Apple.PointsPerApple),
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&appleDrop{cfg: c.Apple}}
			},
		},
		{
			Name:     AppleRush,
			Label:    "Apple Rush",
			SubLabel: fmt.Sprintf("%+d Point(s) Each", cfg.AppleRush.PointsPerApple),
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&appleRush{cfg: c.AppleRush}}
			},
		},
		{
			Name:  TurboArc,
			Label: "Turbo Arc",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{speedAndGap(c.TurboArc.Speed, c.TurboArc.GapSize)}
			},
		},
		{
			Name:  ColorBlind,
			Label: "Color Blind",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{recolor(playfield.Color{Idx: c.ColorBlind.ColorIdx, RGB: c.ColorBlind.ColorRGB})}
			},
		},
		{
			Name:  Dizzy,
			Label: "Dizzy",
			Mods:  mods(swapTurns()),
		},
		{
			Name:  OneTooMany,
			Label: "One Too Many?",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&jitter{cfg: c.OneTooMany}}
			},
		},
		{
			Name:  WayTooMany,
			Label: "Way Too Many!",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&jitter{cfg: c.WayTooMany}}
			},
		},
		{
			Name:  Juke,
			Label: "Juke",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{sharperTurns(c.Juke.Speed, c.Juke.IncreasedTurnRate)}
			},
		},
		{
			Name:  Indigestion,
			Label: "Indigestion",
			Mods: func(c *config.Settings) []Modifier {
				ig := c.Indigestion
				return []Modifier{gapOnly(ig.GapSize), indigestion(ig.CycleInSeconds, ig.MinSize, ig.MaxSize)}
			},
		},
		{
			Name:  Goliath,
			Label: "Goliath",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{speedAndGap(c.Goliath.Speed, c.Goliath.GapSize), goliath()}
			},
		},
		{
			Name:  SpeedCycles,
			Label: "Speed Cycles",
			Mods: func(c *config.Settings) []Modifier {
				sc := c.SpeedCycles
				return []Modifier{
					speedAndGap(sc.Speed, sc.GapSize),
					speedCycles(sc.Speed, sc.CycleInSeconds, sc.MinMultiplier, sc.MaxMultiplier),
				}
			},
		},
		{
			Name:  LeadFoot,
			Label: "Lead Foot",
			Mods: func(c *config.Settings) []Modifier {
				lf := c.LeadFoot
				return []Modifier{speedAndGap(lf.Speed, lf.GapSize), leadFoot(lf.Speed, lf.SpeedPerSecond)}
			},
		},
		{
			Name:     ReadyAim,
			Label:    "Ready, Aim... Fire!",
			SubLabel: "Press both buttons to fire!",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&readyAim{cfg: c.ReadyAim}}
			},
		},
		{
			Name:  Squeeze,
			Label: "Squeeze",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&squeeze{cfg: c.Squeeze}}
			},
		},
		{
			Name:     TreasureChamber,
			Label:    "Treasure Chamber",
			SubLabel: fmt.Sprintf("%+d Points Each", cfg.TreasureChamber.PointsPerApple),
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&treasureChamber{cfg: c.TreasureChamber}}
			},
		},
		{
			Name:     ToInfinity,
			Label:    "To Infinity...",
			SubLabel: "...and beyond!",
			Mods:     mods(wrapAround{}),
		},
		{
			Name:  Scatter,
			Label: "Scatter",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&scatter{cfg: c.Scatter}}
			},
		},
		{
			Name:     ScatterThroughInfinity,
			Label:    "Scatter",
			SubLabel: "Through Infinity",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&scatter{cfg: c.Scatter}, wrapAround{}}
			},
		},
		{
			Name:  NoGap,
			Label: "No Gap",
			Mods:  mods(gapOnly(0)),
		},
		{
			Name:     Follower,
			Label:    "Followers",
			SubLabel: "Harmless but hungry...",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&followers{cfg: c.Follower}}
			},
		},
		{
			Name:  RightTurnOnly,
			Label: "Right Turn Only",
			Mods:  mods(noLeftTurns()),
		},
		{
			Name:  LeftTurnOnly,
			Label: "Left Turn Only",
			Mods:  mods(noRightTurns()),
		},
		{
			Name:     AlternateTurns,
			Label:    "Alternate Directions",
			SubLabel: "Left, then right... left, right...",
			Mods:     mods(alternateTurns{}),
		},
		{
			Name:     Boost,
			Label:    "Boost",
			SubLabel: "Press both buttons to boost!",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&boost{cfg: c.Boost}}
			},
		},
		{
			Name:     BeamMeUp,
			Label:    "Beam me up",
			SubLabel: "Press both buttons to teleport",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&beamMeUp{cfg: c.BeamMeUp}}
			},
		},
		{
			Name:     SqueezeReadyAim,
			Label:    "Ready, Aim... Squeeze!",
			SubLabel: "Press both buttons to fire!",
			Mods: func(c *config.Settings) []Modifier {
				return []Modifier{&squeeze{cfg: c.SqueezeReadyAim.Squeeze}, &readyAim{cfg: c.SqueezeReadyAim.ReadyAim}}
			},
		},
	}
}
