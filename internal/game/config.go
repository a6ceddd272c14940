package game

// Config holds game configuration options.
type Config struct {
	// Levels lists level files played in order. Empty means the bundled levels.
	Levels []string

	// Monsters controls whether monsters advance after every player turn.
	Monsters bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{Monsters: true}
}
