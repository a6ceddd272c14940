// Package data provides the level files bundled with the game.
package data

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
)

// levelFS embeds every level under levels/ at build time.
//
//go:embed levels/*.txt
var levelFS embed.FS

// Levels returns the bundled level names in play order.
func Levels() []string {
	entries, err := fs.ReadDir(levelFS, "levels")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// ReadLevel opens a bundled level by file name (e.g. "level1.txt").
func ReadLevel(name string) (io.ReadCloser, error) {
	f, err := levelFS.Open(path.Join("levels", name))
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded level %s: %w", name, err)
	}
	return f, nil
}
