package component

// PlayerControl marks the player entity and carries its tuning.
type PlayerControl struct {
	Speed          float64
	FireEvery      int // ticks between shots while the trigger is held
	CooldownLeft   int
	BulletSpeed    float64
	BulletLifetime int
}

var PlayerControlComponent = NewComponent[PlayerControl]()
