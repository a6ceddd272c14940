package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonescape/internal/engine"
	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/telemetry"
	"github.com/samdwyer/dungeonescape/internal/world"
)

var (
	// ErrNoLevels is returned when a session is started without levels.
	ErrNoLevels = errors.New("no levels to play")
	// ErrSessionOver is returned by Step once the game has ended.
	ErrSessionOver = errors.New("session is over")
)

// TurnResult describes what happened during one turn.
type TurnResult struct {
	Outcome  engine.Outcome
	Captured bool   // A monster reached the player this turn
	State    State  // Session state after the turn
	Message  string // Line to show the player
}

// Session is one run through the level list. It owns the current grid and
// mutates the caller's player record.
type Session struct {
	ID uuid.UUID

	cfg        Config
	levels     LevelSource
	levelIndex int
	levelName  string
	grid       *world.Grid
	player     *entity.Player
	state      State
	turns      int
}

// NewSession loads the first level and places the player on its spawn.
func NewSession(ctx context.Context, cfg Config, player *entity.Player, levels LevelSource) (*Session, error) {
	if levels == nil || levels.Len() == 0 {
		return nil, ErrNoLevels
	}

	s := &Session{
		ID:     uuid.New(),
		cfg:    cfg,
		levels: levels,
		player: player,
		state:  StatePlaying,
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.start",
		trace.WithAttributes(
			attribute.String("session.id", s.ID.String()),
			attribute.String("player.id", player.ID.String()),
			attribute.Int("session.levels", levels.Len()),
			attribute.Bool("session.monsters", cfg.Monsters),
		),
	)
	defer span.End()

	if err := s.enterLevel(ctx, 0); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "first level failed to load")
		return nil, err
	}
	return s, nil
}

// enterLevel swaps in level index and moves the player to its spawn.
func (s *Session) enterLevel(ctx context.Context, index int) error {
	lvl, err := s.levels.Open(ctx, index)
	if err != nil {
		return fmt.Errorf("load level %d: %w", index+1, err)
	}

	s.grid.Release()
	s.grid = lvl.Grid
	s.levelIndex = index
	s.levelName = lvl.Name
	s.player.MoveTo(lvl.Spawn)
	return nil
}

// Step plays one turn for the given key.
func (s *Session) Step(ctx context.Context, input rune) (TurnResult, error) {
	if s.state.IsOver() {
		return TurnResult{State: s.state, Message: s.state.message()}, ErrSessionOver
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "turn")
	defer span.End()

	s.turns++
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int("turn", s.turns),
		attribute.String("input", string(input)),
		attribute.Int("level", s.levelIndex+1),
	)

	result, err := s.play(ctx, input)
	result.State = s.state
	if s.state.IsOver() {
		result.Message = s.state.message()
	}

	span.SetAttributes(
		attribute.String("outcome", result.Outcome.String()),
		attribute.Bool("captured", result.Captured),
		attribute.String("state", s.state.String()),
		attribute.Int("player.treasure", s.player.Treasure),
		attribute.Int("player.row", s.player.Row),
		attribute.Int("player.col", s.player.Col),
		attribute.Int("grid.rows", s.grid.Rows()),
		attribute.Int("grid.cols", s.grid.Cols()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "turn failed")
	}
	return result, err
}

func (s *Session) play(ctx context.Context, input rune) (TurnResult, error) {
	if input == engine.KeyQuit {
		s.state = StateQuit
		return TurnResult{Outcome: engine.Stayed}, nil
	}

	target := engine.ResolveDirection(input, s.player.Position())
	outcome := engine.TryMove(s.grid, s.player, target)
	result := TurnResult{Outcome: outcome, Message: outcomeMessage(outcome)}

	switch outcome {
	case engine.CollectedAmulet:
		doubled, err := s.grid.Doubled()
		if err != nil {
			// The level stays as it was; the amulet is simply spent.
			result.Message = "The amulet flickers, but nothing happens."
			break
		}
		s.grid = doubled
	case engine.LeftLevel:
		if s.levelIndex+1 >= s.levels.Len() {
			s.state = StateWon
			return result, nil
		}
		if err := s.enterLevel(ctx, s.levelIndex+1); err != nil {
			s.state = StateAborted
			return result, err
		}
	case engine.Escaped:
		s.state = StateEscaped
		return result, nil
	}

	if s.cfg.Monsters && engine.AdvanceMonsters(s.grid, s.player) {
		s.state = StateCaptured
		result.Captured = true
	}
	return result, nil
}

// Grid returns the current level grid. It stays owned by the session.
func (s *Session) Grid() *world.Grid { return s.grid }

// Player returns the player record.
func (s *Session) Player() *entity.Player { return s.player }

// State returns the session state.
func (s *Session) State() State { return s.state }

// Level returns the 1-based number of the current level.
func (s *Session) Level() int { return s.levelIndex + 1 }

// LevelName returns the name the current level was loaded from.
func (s *Session) LevelName() string { return s.levelName }

// Turns returns the number of turns played.
func (s *Session) Turns() int { return s.turns }

// Close releases the current grid.
func (s *Session) Close() {
	s.grid.Release()
}

func (s State) message() string {
	switch s {
	case StateEscaped:
		return "You escaped the dungeon with your treasure!"
	case StateWon:
		return "You walked out of the last door. Freedom!"
	case StateCaptured:
		return "A monster caught you."
	case StateQuit:
		return "You gave up."
	case StateAborted:
		return "The way forward collapsed."
	default:
		return ""
	}
}

func outcomeMessage(o engine.Outcome) string {
	switch o {
	case engine.CollectedTreasure:
		return "You found treasure!"
	case engine.CollectedAmulet:
		return "The amulet pulses and the dungeon grows!"
	case engine.LeftLevel:
		return "You step through the door..."
	default:
		return ""
	}
}
