package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EntitySpec is a yaml prefab: one entity's components by name. Absent
// sections simply add no component.
type EntitySpec struct {
	Name      string         `yaml:"name"`
	Transform *TransformSpec `yaml:"transform"`
	Sprite    *SpriteSpec    `yaml:"sprite"`
	Collider  *ColliderSpec  `yaml:"collider"`
	Velocity  *VelocitySpec  `yaml:"velocity"`
	Player    *PlayerSpec    `yaml:"player"`
	Layer     *int           `yaml:"layer"`
	TTL       *int           `yaml:"ttl"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteSpec struct {
	// Image is a registry key; Sheet selects registered frame geometry
	// instead, with Frame picking the starting frame.
	Image string `yaml:"image"`
	Sheet string `yaml:"sheet"`
	Frame int    `yaml:"frame"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Anchor ratios default to 0.5 (centered) when omitted.
	AnchorX *float64 `yaml:"anchor_x"`
	AnchorY *float64 `yaml:"anchor_y"`
}

type ColliderSpec struct {
	Group        string   `yaml:"group"`
	CollidesWith []string `yaml:"collides_with"`
	UsePixels    bool     `yaml:"use_pixels"`
}

type VelocitySpec struct {
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

type PlayerSpec struct {
	Speed          float64 `yaml:"speed"`
	FireEvery      int     `yaml:"fire_every"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletLifetime int     `yaml:"bullet_lifetime"`
}

// CollisionSpec carries the collision detector's policy constants. The
// defaults match the stock policy; the file exists so content can tune
// them without an engine change.
type CollisionSpec struct {
	AlphaThreshold   *int     `yaml:"alpha_threshold"`
	DefaultBoxWidth  *float64 `yaml:"default_box_width"`
	DefaultBoxHeight *float64 `yaml:"default_box_height"`
}

// LoadSpec loads and decodes a yaml prefab by filename.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadEntitySpec loads an entity prefab by filename.
func LoadEntitySpec(filename string) (EntitySpec, error) {
	return LoadSpec[EntitySpec](filename)
}

// LoadCollisionSpec loads the collision policy file.
func LoadCollisionSpec() (CollisionSpec, error) {
	return LoadSpec[CollisionSpec]("collision.yaml")
}
