package component

// RenderLayer sorts draw order deterministically. Lower indices draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
