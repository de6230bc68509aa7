package prefabs

import "gopkg.in/yaml.v3"

// DecodeProps converts a loosely typed property map, such as a level
// entity's props, into T through its yaml tags.
func DecodeProps[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type ZoneMarkerProps struct {
	Category string `yaml:"category"`
	Kind     string `yaml:"kind"`
}

type TutorialProps struct {
	Text   string  `yaml:"text"`
	Unlock string  `yaml:"unlock"`
	Script string  `yaml:"script"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ExitProps struct {
	Scene  string  `yaml:"scene"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BalloonProps struct {
	Group      string `yaml:"group"`
	HasDiamond bool   `yaml:"diamond"`
}

type CounterProps struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
}
