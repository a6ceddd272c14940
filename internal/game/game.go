package game

import (
	"context"
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonescape/internal/engine"
	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/ui"
)

// Game drives a Session from a terminal screen.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	message  string
	running  bool
}

// New creates a new game instance and loads the first level.
func New(ctx context.Context, cfg Config) (*Game, error) {
	styles, err := gamedata.LoadTileStyles()
	if err != nil {
		return nil, err
	}

	session, err := NewSession(ctx, cfg, entity.NewPlayer(), LevelsFromConfig(cfg))
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		session.Close()
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, styles),
		session:  session,
		message:  "Find treasure, then reach the exit. wasd/arrows move, q quits.",
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or the game ends.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	for g.running {
		g.render()

		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Session returns the session being played.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) render() {
	g.renderer.Render(g.session.Grid(), ui.HUD{
		Level:     g.session.Level(),
		LevelName: g.session.LevelName(),
		Treasure:  g.session.Player().Treasure,
		Turns:     g.session.Turns(),
		Message:   g.message,
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent plays a turn for a movement or quit key.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	// Once the game is over the final screen stays up until any key.
	if g.session.State().IsOver() {
		g.running = false
		return nil
	}

	input, ok := keyToInput(ev)
	if !ok {
		return nil
	}

	result, err := g.session.Step(ctx, input)
	if err != nil {
		return fmt.Errorf("turn %d: %w", g.session.Turns(), err)
	}

	g.message = result.Message
	if result.State.IsOver() {
		g.message += " Press any key."
	}
	return nil
}

// keyToInput maps a tcell key event to a session input rune.
func keyToInput(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.KeyUp, true
	case tcell.KeyDown:
		return engine.KeyDown, true
	case tcell.KeyLeft:
		return engine.KeyLeft, true
	case tcell.KeyRight:
		return engine.KeyRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.KeyQuit, true
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if engine.IsMovementKey(r) || r == engine.KeyQuit {
			return r, true
		}
	}
	return 0, false
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
	if g.session != nil {
		g.session.Close()
	}
}
