package component

// Velocity is world units per update tick.
type Velocity struct {
	VX, VY float64
}

var VelocityComponent = NewComponent[Velocity]()
