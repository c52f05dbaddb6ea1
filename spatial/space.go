package spatial

import (
	stdmath "math"
	"math/rand/v2"
	"sort"

	"github.com/automoto/arenacore/shared/gamemath"
	"github.com/automoto/arenacore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Space wraps a resolv space. The simulation works in world units; resolv
// cells assume whole pixels, so bodies are stored scaled by pixelsPerUnit.
// Entity bodies carry their donburi.Entity in Data; walkable floors carry
// their height as a float64.
type Space struct {
	space   *resolv.Space
	objects map[donburi.Entity]*resolv.Object
	floors  []*resolv.Object
	rng     *rand.Rand
	scale   float64
	width   float64
	height  float64
}

var (
	_ Query     = (*Space)(nil)
	_ Navigator = (*Space)(nil)
)

// NewSpace creates a width x height arena (world units) split into cells of
// cellSize units.
func NewSpace(width, height, cellSize, pixelsPerUnit float64, rng *rand.Rand) *Space {
	cell := int(stdmath.Max(1, cellSize*pixelsPerUnit))
	return &Space{
		space:   resolv.NewSpace(int(width*pixelsPerUnit), int(height*pixelsPerUnit), cell, cell),
		objects: make(map[donburi.Entity]*resolv.Object),
		rng:     rng,
		scale:   pixelsPerUnit,
		width:   width,
		height:  height,
	}
}

// Size returns the arena extent in world units.
func (s *Space) Size() (float64, float64) {
	return s.width, s.height
}

// Scale returns pixels per world unit.
func (s *Space) Scale() float64 {
	return s.scale
}

// AddBody registers an axis-aligned body of w x h units centered on c.
func (s *Space) AddBody(e donburi.Entity, c math.Vec2, w, h float64, tagNames ...string) *resolv.Object {
	s.Remove(e)
	pw, ph := w*s.scale, h*s.scale
	obj := resolv.NewObject(c.X*s.scale-pw/2, c.Y*s.scale-ph/2, pw, ph, tagNames...)
	obj.SetShape(resolv.NewRectangle(0, 0, pw, ph))
	obj.Data = e
	s.objects[e] = obj
	s.space.Add(obj)
	return obj
}

// Remove drops e's body. Unknown entities are ignored.
func (s *Space) Remove(e donburi.Entity) {
	obj, ok := s.objects[e]
	if !ok {
		return
	}
	s.space.Remove(obj)
	delete(s.objects, e)
}

// Object returns e's body in pixel space.
func (s *Space) Object(e donburi.Entity) (*resolv.Object, bool) {
	obj, ok := s.objects[e]
	return obj, ok
}

// AddFloor adds a walkable rectangle at the given floor height.
func (s *Space) AddFloor(x, y, w, h, height float64) *resolv.Object {
	obj := resolv.NewObject(x*s.scale, y*s.scale, w*s.scale, h*s.scale, tags.ResolvWalkable)
	obj.SetShape(resolv.NewRectangle(0, 0, w*s.scale, h*s.scale))
	obj.Data = height
	s.floors = append(s.floors, obj)
	s.space.Add(obj)
	return obj
}

// Floors returns the walkable rectangles in pixel space.
func (s *Space) Floors() []*resolv.Object {
	return s.floors
}

func (s *Space) Position(e donburi.Entity) (math.Vec2, bool) {
	obj, ok := s.objects[e]
	if !ok {
		return math.Vec2{}, false
	}
	return s.center(obj), true
}

func (s *Space) Place(e donburi.Entity, p math.Vec2) {
	obj, ok := s.objects[e]
	if !ok {
		return
	}
	obj.X = p.X*s.scale - obj.W/2
	obj.Y = p.Y*s.scale - obj.H/2
	obj.Update()
}

func (s *Space) MoveToward(e donburi.Entity, target math.Vec2, step float64) bool {
	pos, ok := s.Position(e)
	if !ok {
		return false
	}
	next, arrived := gamemath.MoveTowards(pos, target, step)
	s.Place(e, next)
	return arrived
}

func (s *Space) OverlapRect(min, max math.Vec2, tagNames ...string) []donburi.Entity {
	var found []donburi.Entity
	for _, obj := range s.candidates(min, max, tagNames...) {
		e, ok := obj.Data.(donburi.Entity)
		if !ok {
			continue
		}
		b := s.bounds(obj)
		if b.minX < max.X && b.maxX > min.X && b.minY < max.Y && b.maxY > min.Y {
			found = append(found, e)
		}
	}
	return found
}

func (s *Space) OverlapCircle(c math.Vec2, radius float64, tagNames ...string) []donburi.Entity {
	min := math.Vec2{X: c.X - radius, Y: c.Y - radius}
	max := math.Vec2{X: c.X + radius, Y: c.Y + radius}

	var found []donburi.Entity
	for _, obj := range s.candidates(min, max, tagNames...) {
		e, ok := obj.Data.(donburi.Entity)
		if !ok {
			continue
		}
		// Closest point of the body to the circle center
		b := s.bounds(obj)
		nx := stdmath.Max(b.minX, stdmath.Min(c.X, b.maxX))
		ny := stdmath.Max(b.minY, stdmath.Min(c.Y, b.maxY))
		if gamemath.Distance(c, math.Vec2{X: nx, Y: ny}) <= radius {
			found = append(found, e)
		}
	}
	return found
}

func (s *Space) Raycast(origin, dir math.Vec2, maxDist float64, tagNames ...string) (donburi.Entity, float64, bool) {
	dir = gamemath.Normalize(dir)
	if dir.X == 0 && dir.Y == 0 {
		return 0, 0, false
	}
	end := gamemath.Add(origin, gamemath.Scale(dir, maxDist))
	min := math.Vec2{X: stdmath.Min(origin.X, end.X), Y: stdmath.Min(origin.Y, end.Y)}
	max := math.Vec2{X: stdmath.Max(origin.X, end.X), Y: stdmath.Max(origin.Y, end.Y)}

	var (
		best     donburi.Entity
		bestDist = stdmath.Inf(1)
		hit      bool
	)
	for _, obj := range s.candidates(min, max, tagNames...) {
		e, ok := obj.Data.(donburi.Entity)
		if !ok {
			continue
		}
		if t, ok := rayBox(origin, dir, s.bounds(obj)); ok && t <= maxDist && t < bestDist {
			best, bestDist, hit = e, t, true
		}
	}
	return best, bestDist, hit
}

func (s *Space) SampleWalkablePoint(c math.Vec2, radius float64) (math.Vec2, bool) {
	angle := s.rng.Float64() * 2 * stdmath.Pi
	r := radius * stdmath.Sqrt(s.rng.Float64())
	p := gamemath.OrbitOffset(c, angle, r)
	if _, ok := s.GroundHeight(p); !ok {
		return math.Vec2{}, false
	}
	return p, true
}

func (s *Space) GroundHeight(p math.Vec2) (float64, bool) {
	height, found := 0.0, false
	for _, obj := range s.candidates(p, p, tags.ResolvWalkable) {
		h, ok := obj.Data.(float64)
		if !ok {
			continue
		}
		b := s.bounds(obj)
		if p.X < b.minX || p.X > b.maxX || p.Y < b.minY || p.Y > b.maxY {
			continue
		}
		if !found || h > height {
			height, found = h, true
		}
	}
	return height, found
}

func (s *Space) Nearest(from math.Vec2, tag string, accept func(donburi.Entity) bool) (donburi.Entity, float64, bool) {
	type candidate struct {
		e    donburi.Entity
		dist float64
	}
	var cs []candidate
	for e, obj := range s.objects {
		if !obj.HasTags(tag) {
			continue
		}
		if accept != nil && !accept(e) {
			continue
		}
		cs = append(cs, candidate{e: e, dist: gamemath.Distance(from, s.center(obj))})
	}
	if len(cs) == 0 {
		return 0, 0, false
	}
	// Map order is random; break distance ties by entity for repeatable runs.
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].dist != cs[j].dist {
			return cs[i].dist < cs[j].dist
		}
		return cs[i].e < cs[j].e
	})
	return cs[0].e, cs[0].dist, true
}

// candidates runs a broad-phase cell check over the rectangle using a
// temporary probe object. resolv registers a body in the cells spanned by
// [X, X+W-1], so the probe is padded a pixel on each side.
func (s *Space) candidates(min, max math.Vec2, tagNames ...string) []*resolv.Object {
	x, y := min.X*s.scale-1, min.Y*s.scale-1
	w := (max.X-min.X)*s.scale + 2
	h := (max.Y-min.Y)*s.scale + 2
	probe := resolv.NewObject(x, y, w, h)
	s.space.Add(probe)
	defer s.space.Remove(probe)

	check := probe.Check(0, 0, tagNames...)
	if check == nil {
		return nil
	}
	return check.Objects
}

type box struct {
	minX, minY, maxX, maxY float64
}

func (s *Space) bounds(obj *resolv.Object) box {
	return box{
		minX: obj.X / s.scale,
		minY: obj.Y / s.scale,
		maxX: (obj.X + obj.W) / s.scale,
		maxY: (obj.Y + obj.H) / s.scale,
	}
}

func (s *Space) center(obj *resolv.Object) math.Vec2 {
	return math.Vec2{X: (obj.X + obj.W/2) / s.scale, Y: (obj.Y + obj.H/2) / s.scale}
}

// rayBox is the slab test; it returns the entry distance along dir.
func rayBox(origin, dir math.Vec2, b box) (float64, bool) {
	tmin, tmax := 0.0, stdmath.Inf(1)
	for axis := 0; axis < 2; axis++ {
		o, d, lo, hi := origin.X, dir.X, b.minX, b.maxX
		if axis == 1 {
			o, d, lo, hi = origin.Y, dir.Y, b.minY, b.maxY
		}
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = stdmath.Max(tmin, t1)
		tmax = stdmath.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
