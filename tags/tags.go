package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	GroundEnemy = donburi.NewTag().SetName("GroundEnemy")
	FlyingEnemy = donburi.NewTag().SetName("FlyingEnemy")
	Hurtbox     = donburi.NewTag().SetName("Hurtbox")
	Pickup      = donburi.NewTag().SetName("Pickup")
	Floor       = donburi.NewTag().SetName("Floor")
)

// Resolv tags for spatial queries
const (
	ResolvHittable    = "hittable"
	ResolvPlayer      = "player"
	ResolvEnemy       = "enemy"
	ResolvGroundEnemy = "ground_enemy"
	ResolvFlyingEnemy = "flying_enemy"
	ResolvHurtbox     = "hurtbox"
	ResolvPickup      = "pickup"
	ResolvWalkable    = "walkable"
)
