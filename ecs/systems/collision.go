package systems

import (
	"image"
	"log"
	"math"
	"time"

	"github.com/hollowfall/pixelbrawl/common"
	"github.com/hollowfall/pixelbrawl/ecs"
	"github.com/hollowfall/pixelbrawl/ecs/component"
)

// Collision policy defaults. Both are configurable through Config; the
// values match the behavior the game's content was tuned against.
const (
	DefaultAlphaThreshold = 10 // of 255; a pixel must exceed this to count as solid
	DefaultBoxSize        = 10 // fallback box edge for entities with no usable size
)

// Config holds the collision detector's policy constants.
type Config struct {
	AlphaThreshold   uint8
	DefaultBoxWidth  float64
	DefaultBoxHeight float64
}

// DefaultConfig returns the stock collision policy.
func DefaultConfig() Config {
	return Config{
		AlphaThreshold:   DefaultAlphaThreshold,
		DefaultBoxWidth:  DefaultBoxSize,
		DefaultBoxHeight: DefaultBoxSize,
	}
}

// CollisionSystem detects overlapping collidable pairs each frame and
// publishes one CollisionEvent per confirmed pair. Detection is stateless:
// every frame recomputes from live entity state, and the system takes no
// action on a collision beyond publishing; what a collision means is the
// subscribers' business.
//
// The pipeline is a pairwise all-against-all broad phase over axis-aligned
// boxes (rotation is rendered but not collided), refined by a per-pixel
// alpha test when either side of a pair requests it. Subscribers run
// synchronously during the scan and may destroy entities; liveness is
// re-checked per pair so stale handles are never dereferenced.
type CollisionSystem struct {
	cfg Config

	// two reusable frame buffers, one per side of a pixel test
	bufA, bufB *image.RGBA

	now func() time.Time
}

// NewCollisionSystem creates the detector. Zero Config fields fall back to
// the stock policy.
func NewCollisionSystem(cfg Config) *CollisionSystem {
	if cfg.AlphaThreshold == 0 {
		cfg.AlphaThreshold = DefaultAlphaThreshold
	}
	if cfg.DefaultBoxWidth <= 0 {
		cfg.DefaultBoxWidth = DefaultBoxSize
	}
	if cfg.DefaultBoxHeight <= 0 {
		cfg.DefaultBoxHeight = DefaultBoxSize
	}
	return &CollisionSystem{cfg: cfg, now: time.Now}
}

type candidate struct {
	entity ecs.Entity
	col    *component.Collider
}

// Update runs one detection pass. Call it after movement systems so boxes
// reflect this frame's positions.
func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	cands := s.gather(w)
	for i := 0; i < len(cands); i++ {
		a := cands[i]
		for j := i + 1; j < len(cands); j++ {
			b := cands[j]

			// A subscriber for an earlier pair may have destroyed either
			// entity; destroyed entities cannot collide.
			if !ecs.IsAlive(w, a.entity) {
				break
			}
			if !ecs.IsAlive(w, b.entity) {
				continue
			}

			// Either side opting in is enough to test the pair.
			if !a.col.Targets(b.col.Group) && !b.col.Targets(a.col.Group) {
				continue
			}

			// Subscribers may also strip components; a candidate whose
			// transform is gone no longer has a box.
			ra, ok := s.boundsOf(w, a.entity)
			if !ok {
				break
			}
			rb, ok := s.boundsOf(w, b.entity)
			if !ok {
				continue
			}
			if !ra.Intersects(rb) {
				continue
			}

			if a.col.UsePixels || b.col.UsePixels {
				if !s.pixelsOverlap(w, a.entity, b.entity, ra, rb) {
					continue
				}
			}

			// Deliver before moving on: the subscriber's view of the world
			// must precede the next pair's liveness checks.
			w.Bus().Publish(w, ecs.Event{
				Type: ecs.EventCollision,
				Data: ecs.CollisionEvent{A: a.entity, B: b.entity, At: s.now()},
			})
		}
	}
}

// gather collects the frame's candidate list: live entities carrying a
// collider with a non-empty group and a transform. Groupless colliders are
// excluded from the list entirely, not just exempted from pairing.
func (s *CollisionSystem) gather(w *ecs.World) []candidate {
	var out []candidate
	ecs.ForEach(w, component.ColliderComponent.Kind(), func(e ecs.Entity, col *component.Collider) {
		if col.Group == "" {
			log.Printf("collision: entity %v has a collider with no group, excluded", e)
			return
		}
		if !ecs.Has(w, e, component.TransformComponent.Kind()) {
			log.Printf("collision: entity %v has a collider but no transform, excluded", e)
			return
		}
		out = append(out, candidate{entity: e, col: col})
	})
	return out
}

// boundsOf reports false when the entity no longer carries a transform,
// which can happen to a gathered candidate once subscribers start running.
func (s *CollisionSystem) boundsOf(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	spr, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	return BoundsFor(tr, spr, s.cfg.DefaultBoxWidth, s.cfg.DefaultBoxHeight), true
}

// pixelsOverlap refines a box overlap by sampling sprite alpha. It returns
// true on the first world pixel solid in both sprites. When either side has
// no usable raster data the box result stands: reporting a possible
// collision beats silently missing one while art is incomplete.
func (s *CollisionSystem) pixelsOverlap(w *ecs.World, ea, eb ecs.Entity, ra, rb common.Rect) bool {
	clip := ra.Intersect(rb)
	if clip.Empty() {
		return false
	}

	sprA, _ := ecs.Get(w, ea, component.SpriteComponent.Kind())
	sprB, _ := ecs.Get(w, eb, component.SpriteComponent.Kind())
	srcA, okA := rasterRef(sprA)
	srcB, okB := rasterRef(sprB)
	if !okA || !okB {
		log.Printf("collision: pixel test for %v/%v without raster data, keeping box result", ea, eb)
		return true
	}

	s.bufA = prepare(s.bufA, srcA.Dx(), srcA.Dy())
	s.bufB = prepare(s.bufB, srcB.Dx(), srcB.Dy())
	rasterize(s.bufA, sprA.Pixels, srcA)
	rasterize(s.bufB, sprB.Pixels, srcB)

	// texels per world unit for each sprite's box
	axScale := float64(srcA.Dx()) / ra.Width
	ayScale := float64(srcA.Dy()) / ra.Height
	bxScale := float64(srcB.Dx()) / rb.Width
	byScale := float64(srcB.Dy()) / rb.Height

	// Only integer world coordinates strictly inside the clip are sampled.
	// Ceil on both ends keeps the scan out of the fractional boundary band;
	// a clip narrower than one unit may contain no coordinate at all.
	x0 := int(math.Ceil(clip.X))
	x1 := int(math.Ceil(clip.Right()))
	y0 := int(math.Ceil(clip.Y))
	y1 := int(math.Ceil(clip.Bottom()))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			axp := int((float64(x) - ra.X) * axScale)
			ayp := int((float64(y) - ra.Y) * ayScale)
			bxp := int((float64(x) - rb.X) * bxScale)
			byp := int((float64(y) - rb.Y) * byScale)
			if axp < 0 || ayp < 0 || axp >= srcA.Dx() || ayp >= srcA.Dy() {
				continue
			}
			if bxp < 0 || byp < 0 || bxp >= srcB.Dx() || byp >= srcB.Dy() {
				continue
			}
			if s.bufA.RGBAAt(axp, ayp).A > s.cfg.AlphaThreshold &&
				s.bufB.RGBAAt(bxp, byp).A > s.cfg.AlphaThreshold {
				return true
			}
		}
	}
	return false
}
