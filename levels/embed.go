package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrNoEntities = errors.New("levels: level has no entities")

// Level is a hand-authored puzzle room. Coordinates are world pixels with +Y
// down; an entity's X/Y is the center of its body.
type Level struct {
	Name     string   `json:"name"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Gravity  float64  `json:"gravity,omitempty"`
	Entities []Entity `json:"entities"`
}

// GravityOr returns the level's gravity, or def when the level leaves it unset.
func (l *Level) GravityOr(def float64) float64 {
	if l == nil || l.Gravity == 0 {
		return def
	}
	return l.Gravity
}

// Entity places one prefab. Type names the prefab without its extension.
type Entity struct {
	Type  string                 `json:"type"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

func (e Entity) Float(key string, def float64) float64 {
	if v, ok := e.Props[key].(float64); ok {
		return v
	}
	return def
}

func (e Entity) String(key string) string {
	s, _ := e.Props[key].(string)
	return s
}

func (e Entity) Bool(key string) bool {
	b, _ := e.Props[key].(bool)
	return b
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return parse(data)
}

// Load reads a level by basename, .json optional. A file under ./levels on
// disk wins over the embedded copy.
func Load(name string) (*Level, error) {
	clean := filepath.ToSlash(name)
	clean = strings.TrimPrefix(clean, "levels/")
	if !strings.HasSuffix(clean, ".json") {
		clean += ".json"
	}
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return parse(data)
	}
	return LoadLevelFromFS(clean)
}

func parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if len(lvl.Entities) == 0 {
		return nil, ErrNoEntities
	}
	return &lvl, nil
}
