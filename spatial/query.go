// Package spatial is the overlap, ray, walkable-ground and movement
// capability the behavior systems consume. Systems depend on Query and
// Navigator; Space is the resolv-backed implementation.
package spatial

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Query answers read-only questions about where things are. OverlapCircle
// and Raycast are served to outside collaborators; the systems here use the rest.
type Query interface {
	// Position returns the plane center of a registered entity.
	Position(e donburi.Entity) (math.Vec2, bool)
	OverlapCircle(center math.Vec2, radius float64, tags ...string) []donburi.Entity
	OverlapRect(min, max math.Vec2, tags ...string) []donburi.Entity
	// Raycast returns the closest tagged entity along dir within maxDist.
	Raycast(origin, dir math.Vec2, maxDist float64, tags ...string) (donburi.Entity, float64, bool)
	// SampleWalkablePoint picks a random point within radius of center that
	// lies over walkable ground.
	SampleWalkablePoint(center math.Vec2, radius float64) (math.Vec2, bool)
	// GroundHeight is the floor height beneath p.
	GroundHeight(p math.Vec2) (float64, bool)
	// Nearest finds the closest entity carrying tag for which accept
	// returns true. A nil accept takes every candidate.
	Nearest(from math.Vec2, tag string, accept func(donburi.Entity) bool) (donburi.Entity, float64, bool)
}

// Navigator moves entities through the world.
type Navigator interface {
	// MoveToward steps e toward target by at most step units and reports
	// whether it arrived.
	MoveToward(e donburi.Entity, target math.Vec2, step float64) bool
	// Place puts e at p.
	Place(e donburi.Entity, p math.Vec2)
}
