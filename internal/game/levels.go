package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/dungeonescape/data"
	"github.com/samdwyer/dungeonescape/internal/level"
)

// LevelSource supplies the levels of one run, in play order.
type LevelSource interface {
	Len() int
	Open(ctx context.Context, index int) (*level.Level, error)
}

// FileLevels plays level files from disk.
type FileLevels []string

// Len returns the number of levels.
func (f FileLevels) Len() int { return len(f) }

// Open loads level index.
func (f FileLevels) Open(ctx context.Context, index int) (*level.Level, error) {
	if index < 0 || index >= len(f) {
		return nil, fmt.Errorf("level %d out of range (have %d)", index+1, len(f))
	}
	return level.LoadFile(ctx, f[index])
}

// EmbeddedLevels plays levels bundled with the binary.
type EmbeddedLevels []string

// Len returns the number of levels.
func (e EmbeddedLevels) Len() int { return len(e) }

// Open loads level index.
func (e EmbeddedLevels) Open(ctx context.Context, index int) (*level.Level, error) {
	if index < 0 || index >= len(e) {
		return nil, fmt.Errorf("level %d out of range (have %d)", index+1, len(e))
	}
	return level.LoadEmbedded(ctx, e[index])
}

// LevelsFromConfig picks the configured level files, or the bundled levels
// when none are configured.
func LevelsFromConfig(cfg Config) LevelSource {
	if len(cfg.Levels) > 0 {
		return FileLevels(cfg.Levels)
	}
	return EmbeddedLevels(data.Levels())
}
