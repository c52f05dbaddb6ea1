package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single layer every arena entity lives on.
const Default ecs.LayerID = 0

// SimConfig contains the simulation clock and arena defaults
type SimConfig struct {
	TPS        int    // fixed ticks per second
	Seed       uint64 // RNG seed for patrol sampling and loot rolls
	MapPath    string // TMX arena inside the asset FS
	CellSize   int    // resolv cell size in world units
	StartLevel int    // loot level used by item sources without one
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health        int     // quarter hearts
	MoveSpeed     float64 // units per second
	Radius        float64
	InteractRange float64
}

// EnemyKind selects which state machine drives an enemy type.
type EnemyKind int

const (
	EnemyGround EnemyKind = iota
	EnemyFlying
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyFlying:
		return "flying"
	default:
		return "ground"
	}
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string
	Kind   EnemyKind
	Health int

	// Movement, units per second
	MoveSpeed    float64
	TurnSpeed    float64 // radians per second
	PatrolRadius float64

	// Awareness
	SightRange  float64
	AttackRange float64

	// Combat
	Damage            int
	AttackCooldown    int // frames
	InvulnFrames      int
	HitReactionFrames int // aggro memory after taking damage

	// Melee hurtbox size
	HurtboxWidth  float64
	HurtboxHeight float64

	// Dimensions
	Radius float64

	// Debug viewer
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig
	DefaultType string

	PatrolArrival    float64 // distance at which a patrol point counts as reached
	PatrolProbeDepth float64 // max drop below a sample that still counts as walkable
}

// FlyingConfig contains flyer-specific behavior values
type FlyingConfig struct {
	FlightHeight  float64
	HoverRadius   float64
	HoverSpeed    float64 // radians per second
	StrikeHeight  float64 // altitude the dive reaches during the active window
	WanderArrival float64
	WanderRepick  float64 // per-tick chance of choosing a new wander point

	MaxStartDelay   int // frames
	TelegraphFrames int
	ActiveFrames    int
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Invulnerability
	PlayerInvulnFrames int

	// Death
	EnemyDeathFrames  int
	PlayerDeathFrames int

	// Player melee hurtboxes by weight
	LightHurtboxWidth  float64
	LightHurtboxHeight float64
	HeavyHurtboxWidth  float64
	HeavyHurtboxHeight float64
	HurtboxLifetime    int // frames

	// Projectiles
	ProjectileSize     float64
	ProjectileLifetime int // frames
	ProjectilePiercing bool
}

// InventoryConfig contains slot and durability rules
type InventoryConfig struct {
	Slots            int
	DurabilityPerHit int
	DropOffset       float64
}

// WaveConfig contains spawn coordinator defaults
type WaveConfig struct {
	Delay          time.Duration
	FollowerCount  int
	FollowerRadius float64
	LeaderType     string
	FollowerType   string
	SpawnChance    float64
}

// ViewerConfig contains the debug viewer window settings
type ViewerConfig struct {
	Width         int
	Height        int
	PixelsPerUnit float64
	Headless      bool
	Ticks         int // headless run length, 0 runs until stopped
}

// CameraConfig contains the debug viewer camera settings
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the gap closed per tick
	ShakeIntensity  float64 // pixels
	ShakeFrames     int
}

var Sim SimConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Flying FlyingConfig
var Combat CombatConfig
var Inventory InventoryConfig
var Waves WaveConfig
var Viewer ViewerConfig
var Camera CameraConfig

var (
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue    = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple  = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Orange  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Floor   = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Dt is the length of one fixed tick in seconds.
func Dt() float64 {
	return 1.0 / float64(Sim.TPS)
}

// Frames converts seconds to fixed ticks.
func Frames(seconds float64) int {
	return int(seconds*float64(Sim.TPS) + 0.5)
}

// SetTPS changes the tick rate and rescales every tunable stored in frames
// so its length in seconds stays the same.
func SetTPS(tps int) {
	if tps <= 0 || tps == Sim.TPS {
		return
	}
	scale := func(frames *int) {
		*frames = int(float64(*frames)*float64(tps)/float64(Sim.TPS) + 0.5)
	}

	scale(&Combat.PlayerInvulnFrames)
	scale(&Combat.EnemyDeathFrames)
	scale(&Combat.PlayerDeathFrames)
	scale(&Combat.HurtboxLifetime)
	scale(&Combat.ProjectileLifetime)

	scale(&Flying.MaxStartDelay)
	scale(&Flying.TelegraphFrames)
	scale(&Flying.ActiveFrames)

	scale(&Camera.ShakeFrames)

	for name, t := range Enemy.Types {
		scale(&t.AttackCooldown)
		scale(&t.InvulnFrames)
		scale(&t.HitReactionFrames)
		Enemy.Types[name] = t
	}

	Sim.TPS = tps
}

func init() {
	Sim = SimConfig{
		TPS:        60,
		Seed:       1,
		MapPath:    "levels/arena.tmx",
		CellSize:   2,
		StartLevel: 1,
	}

	Player = PlayerConfig{
		Health:        12,
		MoveSpeed:     5.0,
		Radius:        0.4,
		InteractRange: 1.5,
	}

	Combat = CombatConfig{
		PlayerInvulnFrames: 60,
		EnemyDeathFrames:   150, // cue delay plus 2s corpse
		PlayerDeathFrames:  60,

		LightHurtboxWidth:  1.0,
		LightHurtboxHeight: 1.0,
		HeavyHurtboxWidth:  1.6,
		HeavyHurtboxHeight: 1.4,
		HurtboxLifetime:    30, // 0.5s

		ProjectileSize:     0.3,
		ProjectileLifetime: 90,
	}

	// Enemy Config
	demonType := EnemyTypeConfig{
		Name:              "Demon",
		Kind:              EnemyGround,
		Health:            10,
		MoveSpeed:         3.5,
		TurnSpeed:         5.0,
		PatrolRadius:      10.0,
		SightRange:        8.0,
		AttackRange:       1.5,
		Damage:            1,
		AttackCooldown:    90,
		InvulnFrames:      20,
		HitReactionFrames: 60,
		HurtboxWidth:      1.0,
		HurtboxHeight:     1.0,
		Radius:            0.5,
		TintColor:         Red,
	}

	impType := demonType
	impType.Name = "Imp"
	impType.Health = 4
	impType.MoveSpeed = 4.5
	impType.PatrolRadius = 6.0
	impType.SightRange = 7.0
	impType.AttackRange = 1.2
	impType.AttackCooldown = 75
	impType.Radius = 0.35
	impType.TintColor = Orange

	flyerType := EnemyTypeConfig{
		Name:              "Flyer",
		Kind:              EnemyFlying,
		Health:            5,
		MoveSpeed:         4.0,
		TurnSpeed:         5.0,
		SightRange:        6.0,
		AttackRange:       1.5,
		Damage:            1,
		AttackCooldown:    90,
		InvulnFrames:      30,
		HitReactionFrames: 30,
		HurtboxWidth:      1.0,
		HurtboxHeight:     1.0,
		Radius:            0.4,
		TintColor:         Purple,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Demon": demonType,
			"Imp":   impType,
			"Flyer": flyerType,
		},
		DefaultType:      "Demon",
		PatrolArrival:    1.0,
		PatrolProbeDepth: 2.0,
	}

	Flying = FlyingConfig{
		FlightHeight:    2.5,
		HoverRadius:     3.0,
		HoverSpeed:      2.0,
		StrikeHeight:    0.5,
		WanderArrival:   0.5,
		WanderRepick:    0.01,
		MaxStartDelay:   30,
		TelegraphFrames: 24,
		ActiveFrames:    12,
	}

	Inventory = InventoryConfig{
		Slots:            3,
		DurabilityPerHit: 1,
		DropOffset:       1.0,
	}

	Waves = WaveConfig{
		Delay:          5 * time.Second,
		FollowerCount:  3,
		FollowerRadius: 5.0,
		LeaderType:     "Demon",
		FollowerType:   "Imp",
		SpawnChance:    1.0,
	}

	Viewer = ViewerConfig{
		Width:         960,
		Height:        640,
		PixelsPerUnit: 16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		ShakeIntensity:  4,
		ShakeFrames:     12,
	}
}
