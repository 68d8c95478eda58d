package component

// Collider opts an entity into collision detection. Group partitions
// entities into interest classes ("player", "enemy", "bullet"); a pair is
// tested when either side lists the other's group in CollidesWith. An
// empty Group excludes the entity from all testing.
type Collider struct {
	Group        string
	CollidesWith []string

	// UsePixels requests the per-pixel narrow phase for this entity's
	// pairs. When raster data is missing the detector falls back to the
	// box result rather than dropping the pair.
	UsePixels bool
}

var ColliderComponent = NewComponent[Collider]()

// Targets reports whether c wants to be tested against the given group.
func (c *Collider) Targets(group string) bool {
	if c == nil || group == "" {
		return false
	}
	for _, g := range c.CollidesWith {
		if g == group {
			return true
		}
	}
	return false
}
