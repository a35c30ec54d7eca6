package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	defaultSolidHeight = 1.0
	defaultSwayPeriod  = 4.0
)

// LoadArena parses a TMX file into an Arena. One tile is one world unit.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, m.TileWidth, m.TileHeight)
	}

	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(m.Width),
		Depth: float64(m.Height),
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "solids":
			for _, o := range og.Objects {
				s := Solid{
					X:          o.X / tileW,
					Z:          o.Y / tileH,
					W:          o.Width / tileW,
					D:          o.Height / tileH,
					Height:     o.Properties.GetFloat("height"),
					Sway:       o.Properties.GetFloat("sway"),
					SwayPeriod: o.Properties.GetFloat("swayPeriod"),
					Target:     o.Properties.GetBool("target"),
				}
				if s.Height <= 0 {
					s.Height = defaultSolidHeight
				}
				if s.Sway != 0 && s.SwayPeriod <= 0 {
					s.SwayPeriod = defaultSwayPeriod
				}
				if s.W <= 0 || s.D <= 0 {
					return nil, fmt.Errorf("load TMX %s: solid %d has no area", tmxPath, o.ID)
				}
				arena.Solids = append(arena.Solids, s)
			}
		case "spawn":
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, Spawn{
					X:     o.X / tileW,
					Z:     o.Y / tileH,
					Yaw:   o.Properties.GetFloat("yaw"),
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: no spawn points", tmxPath)
	}
	sort.Slice(arena.Spawns, func(i, j int) bool {
		return arena.Spawns[i].Index < arena.Spawns[j].Index
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
