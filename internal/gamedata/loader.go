package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON game data file, such as the tileset, from
// the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("game data %s: read: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("game data %s: decode: %w", filename, err)
	}

	return result, nil
}
