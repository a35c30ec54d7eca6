package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/throwball/shared/leveldata"
)

const arenaDir = "arenas"

var (
	//go:embed all:arenas
	arenaFS embed.FS
)

// Arenas returns the embedded arena files rooted at the repository assets dir.
func Arenas() fs.FS {
	return arenaFS
}

// LoadArena loads an embedded arena by stem name, e.g. "yard".
func LoadArena(name string) (*leveldata.Arena, error) {
	return leveldata.LoadArena(arenaFS, arenaDir+"/"+name+".tmx")
}

// ArenaNames lists the embedded arenas.
func ArenaNames() ([]string, error) {
	_, names, err := leveldata.LoadAllArenas(arenaFS, arenaDir)
	return names, err
}
