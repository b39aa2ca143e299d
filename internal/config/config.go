// Package config holds every gameplay tunable. Defaults come from Default;
// Load layers an optional .env file and ARC_* environment variables on top.
package config

import (
	"math"

	"arcarena/internal/playfield"
)

type Settings struct {
	Player     PlayerSettings
	Score      ScoreSettings
	Snake      SnakeSettings
	Win        WinSettings
	Background BackgroundSettings
	Input      InputSettings
	Sound      SoundSettings
	Debug      DebugSettings
	Round      RoundSettings

	// Seed for the game RNG; 0 means seed from the clock.
	Seed uint64
	// Robots is how many computer players join the lobby.
	Robots int

	Apple           AppleSettings
	AppleRush       AppleRushSettings
	TurboArc        SpeedGapSettings
	Boost           BoostSettings
	ColorBlind      ColorBlindSettings
	Indigestion     IndigestionSettings
	Goliath         SpeedGapSettings
	SpeedCycles     SpeedCyclesSettings
	LeadFoot        LeadFootSettings
	Juke            JukeSettings
	OneTooMany      JitterSettings
	WayTooMany      JitterSettings
	ReadyAim        ReadyAimSettings
	Squeeze         SqueezeSettings
	SqueezeReadyAim SqueezeReadyAimSettings
	TreasureChamber TreasureChamberSettings
	Follower        FollowerSettings
	BeamMeUp        BeamMeUpSettings
	Scatter         ScatterSettings
}

type PlayerSettings struct {
	Names               []string
	Colors              []playfield.RGB
	RequireUniqueColors bool
	RosterFile          string
}

type ScoreSettings struct {
	PointsForSurviving int
}

type SnakeSettings struct {
	Speed             float64
	TurnRateDegPerSec float64
	WallSize          float64
	GapSize           float64
	DrawSize          int
	HeadColorIdx      playfield.Index
}

// TurnRate is the configured turn rate in radians per second.
func (s SnakeSettings) TurnRate() float64 {
	return s.TurnRateDegPerSec * math.Pi / 180
}

type WinSettings struct {
	ResolutionX, ResolutionY int
	Fullscreen               bool
	BackgroundColorIdx       playfield.Index
	BorderColorIdx           playfield.Index
	FirstColorIdx            playfield.Index
	BorderWidth              int
	WrapInset                float64
}

type BackgroundSettings struct {
	Visible        bool
	RandomizeOrder bool

	GridColor                    playfield.RGB
	GridAccentColor              playfield.RGB
	CirclesAlpha                 uint8
	BlueCirclesAlpha             uint8
	ConcentricArcsBaseColor      playfield.RGB
	ConcentricArcsHighlightColor playfield.RGB
	GeometricSceneAlpha          uint8
	RandomPolysAlpha             uint8
	PlayerNamesAlpha             uint8
	SoftCirclesAlpha             uint8
	WaveCirclesIntensity         uint8
	WaveCirclesDarken            float64
	HorizLinesColor1             playfield.RGB
	HorizLinesColor2             playfield.RGB
	HorizLinesColor3             playfield.RGB
}

type InputSettings struct {
	JoyCountMax     int
	JoyDeadzone     float64
	OnePlayerPerJoy bool
	HoldSeconds     float64
	AxisPress       float64
	AxisRelease     float64
	// CycleRepeat throttles name/colour cycling per player, in presses per second.
	CycleRepeat float64
}

type SoundSettings struct {
	EnableSFX bool
	Volume    float64
}

type DebugSettings struct {
	On        bool
	FastStart bool
}

type RoundSettings struct {
	RoundSet              string
	RandomRoundSelection  bool
	ShuffleStartLocations bool
	LabelVisibilityTime   float64
	StartDelta            float64
}

type AppleSettings struct {
	PointsPerApple int
	SpawnStartTime float64
	SpawnEndTime   float64
	AppleRadius    int
	AppleColor     playfield.RGB
}

type AppleRushSettings struct {
	MaxApples      int
	PointsPerApple int
	AppleRadius    int
	AppleColor     playfield.RGB
	FirstSpawn     float64
	SpawnInterval  float64
}

type SpeedGapSettings struct {
	Speed   float64
	GapSize float64
}

type BoostSettings struct {
	Speed         float64
	BoostDuration float64
	BoostCooldown float64
}

type ColorBlindSettings struct {
	ColorIdx playfield.Index
	ColorRGB playfield.RGB
}

type IndigestionSettings struct {
	GapSize        float64
	CycleInSeconds float64
	MinSize        float64
	MaxSize        float64
}

type SpeedCyclesSettings struct {
	Speed          float64
	GapSize        float64
	CycleInSeconds float64
	MinMultiplier  float64
	MaxMultiplier  float64
}

type LeadFootSettings struct {
	Speed          float64
	GapSize        float64
	SpeedPerSecond float64
}

type JukeSettings struct {
	Speed             float64
	IncreasedTurnRate float64
}

type JitterSettings struct {
	JitterInterval  float64
	JitterIntensity float64
}

type ReadyAimSettings struct {
	FiringCooldown   float64
	ExplosionRadius  int
	WallSize         float64
	HeadColorDimIdx  playfield.Index
	HeadColorDimRGB  playfield.RGB
	BulletSpeedScale float64
	BulletRadius     float64
	ClipInset        float64
}

type SqueezeSettings struct {
	StartDelayMultiplier float64
	SqueezeDuration      float64
	MinCircleRadius      float64
	RingWidth            int
}

// SqueezeReadyAimSettings tunes the combined round apart from the plain
// Squeeze and Ready Aim rounds.
type SqueezeReadyAimSettings struct {
	Squeeze  SqueezeSettings
	ReadyAim ReadyAimSettings
}

type TreasureChamberSettings struct {
	ChamberOuterRadius int
	ChamberInnerRadius int
	PointsPerApple     int
	AppleCount         int
	AppleRadius        int
	AppleColor         playfield.RGB
}

type FollowerSettings struct {
	FollowerSpeed                 float64
	FollowerRadius                float64
	FollowerClearRadius           int
	FollowerSpawnRadiusPercentage float64
	SnakeWallSize                 float64
	RecoverySpeed                 float64
	BoundaryInset                 float64
}

type BeamMeUpSettings struct {
	TeleportCooldown float64
}

type ScatterSettings struct {
	GridSpacing float64
	Jitter      int
}
