package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

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

// EmitterTuning is the emitter block of emitter.yaml on its own; the game
// re-reads it on hot reload and applies it to live emitters.
type EmitterTuning struct {
	Components struct {
		Emitter EmitterComponentSpec `yaml:"emitter"`
	} `yaml:"components"`
}

func LoadEmitterTuning() (EmitterComponentSpec, error) {
	spec, err := LoadSpec[EmitterTuning]("emitter.yaml")
	if err != nil {
		return EmitterComponentSpec{}, err
	}
	return spec.Components.Emitter, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor accepts #rrggbb or #rrggbbaa, with or without the hash.
func ParseHexColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	r, err := parse(0)
	if err != nil {
		return nil, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return nil, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return nil, fmt.Errorf("parse blue component: %w", err)
	}
	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, fmt.Errorf("parse alpha component: %w", err)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
