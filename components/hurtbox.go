package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Faction keeps attacks from landing on allies.
type Faction int

const (
	FactionNone Faction = iota
	FactionPlayers
	FactionEnemies
)

type HurtboxKind int

const (
	HurtboxMelee HurtboxKind = iota
	HurtboxProjectile
)

type HurtboxData struct {
	Owner   donburi.Entity // attacker; never damaged by its own box
	Faction Faction
	Kind    HurtboxKind
	Damage  int

	Direction math.Vec2 // facing for melee, travel for projectiles
	Speed     float64   // units per second, projectiles only
	Reach     float64   // melee distance from owner center to box center
	Width     float64
	Height    float64
	Piercing  bool

	LifeTime    int // frames
	HitEntities map[donburi.Entity]bool

	// Item is the inventory item that produced this attack; its durability
	// is consumed when the attack lands. Zero for unarmed and enemy attacks.
	Item   uint64
	Landed bool
}

var Hurtbox = donburi.NewComponentType[HurtboxData]()
