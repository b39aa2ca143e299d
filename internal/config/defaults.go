package config

import "arcarena/internal/playfield"

var playerNames = []string{
	"Aladdin", "Aragorn", "Ariel", "Athena", "Bard", "Burt", "Batgirl", "Batman",
	"Belle", "Bouregard", "Catwoman", "Copland", "daVinci", "Elmo", "Elsa", "Ender",
	"Eowyn", "Ernie", "Gandalf", "Guinevere", "Hermes", "Jedi", "Joker", "Katniss",
	"Kennedy", "Lincoln", "Mr. Big", "Mufasa", "Olaf", "Picasso", "Princess", "Satchmo",
	"Snuffles", "Sparkles", "Spiderman", "Superman", "Tinkerbell", "Van Gogh",
	"Wonder Woman", "Yoda", "Zeus",
}

var playerColors = []playfield.RGB{
	{R: 255, G: 91, B: 173},  // pink
	{R: 228, G: 0, B: 19},    // red
	{R: 255, G: 127, B: 0},   // orange
	{R: 252, G: 246, B: 81},  // yellow
	{R: 0, G: 188, B: 56},    // green
	{R: 0, G: 255, B: 255},   // cyan
	{R: 0, G: 157, B: 248},   // blue
	{R: 0, G: 0, B: 210},     // dark blue
	{R: 148, G: 0, B: 211},   // violet
	{R: 75, G: 0, B: 130},    // indigo
	{R: 139, G: 69, B: 19},   // brown
	{R: 80, G: 80, B: 80},    // dark gray
	{R: 170, G: 170, B: 170}, // light gray
	{R: 255, G: 255, B: 255}, // white
}

// Default returns a fresh settings tree. Slices are copied so callers may
// mutate the result freely.
func Default() *Settings {
	s := &Settings{
		Player: PlayerSettings{
			Names:               append([]string(nil), playerNames...),
			Colors:              append([]playfield.RGB(nil), playerColors...),
			RequireUniqueColors: true,
			RosterFile:          "ArcArena.lastPlayers",
		},
		Score: ScoreSettings{PointsForSurviving: 10},
		Snake: SnakeSettings{
			Speed:             70,
			TurnRateDegPerSec: 180,
			WallSize:          60,
			GapSize:           25,
			DrawSize:          3,
			HeadColorIdx:      playfield.IdxHead,
		},
		Win: WinSettings{
			ResolutionX:        1280,
			ResolutionY:        720,
			BackgroundColorIdx: playfield.IdxBackground,
			BorderColorIdx:     playfield.IdxBorder,
			FirstColorIdx:      playfield.IdxFirstPlayer,
			BorderWidth:        15,
			WrapInset:          16,
		},
		Background: BackgroundSettings{
			Visible:                      true,
			RandomizeOrder:               true,
			GridColor:                    playfield.RGB{R: 4, G: 0, B: 4},
			GridAccentColor:              playfield.RGB{R: 4, G: 4, B: 0},
			CirclesAlpha:                 3,
			BlueCirclesAlpha:             6,
			ConcentricArcsBaseColor:      playfield.RGB{R: 0, G: 0, B: 13},
			ConcentricArcsHighlightColor: playfield.RGB{R: 13, G: 2, B: 6},
			GeometricSceneAlpha:          3,
			RandomPolysAlpha:             3,
			PlayerNamesAlpha:             3,
			SoftCirclesAlpha:             2,
			WaveCirclesIntensity:         7,
			WaveCirclesDarken:            0.04,
			HorizLinesColor1:             playfield.RGB{R: 0, G: 8, B: 0},
			HorizLinesColor2:             playfield.RGB{R: 0, G: 4, B: 0},
			HorizLinesColor3:             playfield.RGB{R: 4, G: 8, B: 4},
		},
		Input: InputSettings{
			JoyCountMax:     8,
			JoyDeadzone:     0.6,
			OnePlayerPerJoy: true,
			HoldSeconds:     1.0,
			AxisPress:       0.8,
			AxisRelease:     0.5,
			CycleRepeat:     8,
		},
		Sound: SoundSettings{EnableSFX: true, Volume: 0.3},
		Round: RoundSettings{
			RoundSet:              "all",
			ShuffleStartLocations: true,
			LabelVisibilityTime:   4.0,
			StartDelta:            1.4,
		},

		Apple: AppleSettings{
			PointsPerApple: 10,
			SpawnStartTime: 9,
			SpawnEndTime:   15,
			AppleRadius:    10,
			AppleColor:     playfield.Green,
		},
		AppleRush: AppleRushSettings{
			MaxApples:      50,
			PointsPerApple: 1,
			AppleRadius:    10,
			AppleColor:     playfield.Green,
			FirstSpawn:     3,
			SpawnInterval:  0.5,
		},
		TurboArc: SpeedGapSettings{Speed: 120, GapSize: 50},
		Boost:    BoostSettings{Speed: 300, BoostDuration: 0.25, BoostCooldown: 8},
		ColorBlind: ColorBlindSettings{
			ColorIdx: playfield.IdxColorBlind,
			ColorRGB: playfield.ColorBlindRGB,
		},
		Indigestion: IndigestionSettings{GapSize: 50, CycleInSeconds: 40, MinSize: 2, MaxSize: 8},
		Goliath:     SpeedGapSettings{Speed: 60, GapSize: 50},
		SpeedCycles: SpeedCyclesSettings{
			Speed:          20,
			GapSize:        50,
			CycleInSeconds: 20,
			MinMultiplier:  2,
			MaxMultiplier:  8,
		},
		LeadFoot:   LeadFootSettings{Speed: 50, GapSize: 50, SpeedPerSecond: 5},
		Juke:       JukeSettings{Speed: 90, IncreasedTurnRate: 1.5},
		OneTooMany: JitterSettings{JitterInterval: 1.0, JitterIntensity: 0.25},
		WayTooMany: JitterSettings{JitterInterval: 0.35, JitterIntensity: 0.35},
		ReadyAim:   readyAim(),
		Squeeze:    squeeze(),
		SqueezeReadyAim: SqueezeReadyAimSettings{
			Squeeze:  squeeze(),
			ReadyAim: readyAim(),
		},
		TreasureChamber: TreasureChamberSettings{
			ChamberOuterRadius: 120,
			ChamberInnerRadius: 80,
			PointsPerApple:     5,
			AppleCount:         5,
			AppleRadius:        6,
			AppleColor:         playfield.Gold,
		},
		Follower: FollowerSettings{
			FollowerSpeed:                 45,
			FollowerRadius:                6,
			FollowerClearRadius:           15,
			FollowerSpawnRadiusPercentage: 0.7,
			SnakeWallSize:                 300,
			RecoverySpeed:                 200,
			BoundaryInset:                 50,
		},
		BeamMeUp: BeamMeUpSettings{TeleportCooldown: 4},
		Scatter:  ScatterSettings{GridSpacing: 140, Jitter: 15},
	}
	return s
}

func squeeze() SqueezeSettings {
	return SqueezeSettings{
		StartDelayMultiplier: 1.15,
		SqueezeDuration:      45,
		MinCircleRadius:      150,
		RingWidth:            3,
	}
}

func readyAim() ReadyAimSettings {
	return ReadyAimSettings{
		FiringCooldown:   2.0,
		ExplosionRadius:  20,
		WallSize:         200,
		HeadColorDimIdx:  playfield.IdxHeadDim,
		HeadColorDimRGB:  playfield.HeadDimRGB,
		BulletSpeedScale: 2,
		BulletRadius:     3,
		ClipInset:        20,
	}
}

// CountdownDelta is the interval between countdown beats, shortened when
// starting fast or debugging.
func (s *Settings) CountdownDelta() float64 {
	if s.Debug.FastStart || s.Debug.On {
		return 0.1
	}
	return s.Round.StartDelta
}
