package component

// Transform is an entity's world-space placement. The position is the
// entity's anchor point, not a corner; where the anchor sits within the
// entity's box is the sprite's business. Zero scale means unscaled.
type Transform struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
