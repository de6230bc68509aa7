package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrUnknownLevel = errors.New("levels: unknown level")

const DefaultTileSize = 32

// Level is one playable scene. Ground blocks are in tiles; entity positions
// are world pixels at the entity's center.
type Level struct {
	Name      string   `json:"name"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	TileSize  int      `json:"tile_size,omitempty"`
	Abilities []string `json:"abilities,omitempty"`
	Ground    []Block  `json:"ground"`
	Entities  []Entity `json:"entities,omitempty"`
}

type Block struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	W     int    `json:"w"`
	H     int    `json:"h"`
	Color string `json:"color,omitempty"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

func (l *Level) Tile() float64 {
	if l == nil || l.TileSize <= 0 {
		return DefaultTileSize
	}
	return float64(l.TileSize)
}

// PixelSize is the level extent in world pixels.
func (l *Level) PixelSize() (float64, float64) {
	if l == nil {
		return 0, 0
	}
	return float64(l.Width) * l.Tile(), float64(l.Height) * l.Tile()
}

// Load reads a level by scene name, with or without the .json suffix.
func Load(name string) (*Level, error) {
	file := FileName(name)
	data, err := fs.ReadFile(LevelsFS, file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", file, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, ".json")
	}
	return &lvl, nil
}

func FileName(name string) string {
	name = path.Base(strings.TrimSpace(name))
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}

// Names lists the embedded scene names.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	return out
}
