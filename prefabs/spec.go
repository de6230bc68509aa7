package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

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

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	MoveSpeed float64       `yaml:"move_speed"`
	RiseSpeed float64       `yaml:"rise_speed"`
	Mass      float64       `yaml:"mass"`
	Friction  float64       `yaml:"friction"`
	Color     YAMLColor     `yaml:"color"`
	Collider  ColliderSpec  `yaml:"collider"`
	Abilities AbilitiesSpec `yaml:"abilities"`
	Jump      ZoneGateSpec  `yaml:"jump"`
	BlowUp    BlowUpSpec    `yaml:"blow_up"`
	Bridge    BridgeSpec    `yaml:"bridge"`
	Collect   CollectSpec   `yaml:"collect"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AbilitiesSpec struct {
	Move   bool `yaml:"move"`
	Jump   bool `yaml:"jump"`
	BlowUp bool `yaml:"blow_up"`
	Bridge bool `yaml:"bridge"`
}

type ZoneGateSpec struct {
	Category string `yaml:"category"`
	Policy   string `yaml:"policy"`
}

type BlowUpSpec struct {
	ZoneGateSpec `yaml:",inline"`
	Group        string `yaml:"group"`
}

type BridgeSpec struct {
	ZoneGateSpec     `yaml:",inline"`
	BuildSpeed       float64 `yaml:"build_speed"`
	YOffsetBelowFeet float64 `yaml:"y_offset_below_feet"`
}

type CollectSpec struct {
	Kind    string  `yaml:"kind"`
	Epsilon float64 `yaml:"epsilon"`
}

// BridgePieceSpec sizes the pieces a bridge builder places.
type BridgePieceSpec struct {
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	Friction float64   `yaml:"friction"`
	Color    YAMLColor `yaml:"color"`
}

func LoadBridgePieceSpec() (*BridgePieceSpec, error) {
	spec, err := LoadSpec[BridgePieceSpec]("bridge_piece.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
	SmoothTime float64 `yaml:"smooth_time"`
	Zoom       float64 `yaml:"zoom"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// BalloonSpec covers balloons and the diamonds they hide.
type BalloonSpec struct {
	Speed   float64   `yaml:"speed"`
	DirX    float64   `yaml:"dir_x"`
	DirY    float64   `yaml:"dir_y"`
	Width   float64   `yaml:"width"`
	Height  float64   `yaml:"height"`
	Color   YAMLColor `yaml:"color"`
	Diamond struct {
		Kind   string    `yaml:"kind"`
		Width  float64   `yaml:"width"`
		Height float64   `yaml:"height"`
		Color  YAMLColor `yaml:"color"`
	} `yaml:"diamond"`
}

func LoadBalloonSpec() (*BalloonSpec, error) {
	spec, err := LoadSpec[BalloonSpec]("balloon.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	clr, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = clr
	return nil
}

// ParseColor accepts the same forms as YAMLColor.
func ParseColor(value string) (color.Color, error) {
	if named, ok := colornames.Map[strings.ToLower(value)]; ok {
		return named, nil
	}

	s := strings.TrimPrefix(value, "#")

	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return nil, err
	}
	g, err := parse(2)
	if err != nil {
		return nil, err
	}
	b, err := parse(4)
	if err != nil {
		return nil, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// Or returns the parsed color, or fallback when none was set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
