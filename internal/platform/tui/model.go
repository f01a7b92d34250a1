package tui

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-runner/internal/assets"
	"github.com/vovakirdan/ninja-runner/internal/config"
	"github.com/vovakirdan/ninja-runner/internal/core"
	"github.com/vovakirdan/ninja-runner/internal/games/runner"
	"github.com/vovakirdan/ninja-runner/internal/storage"
)

// assetLoadTimeout bounds the one-shot sprite load before the first tick.
const assetLoadTimeout = 10 * time.Second

// Options configures a Model.
type Options struct {
	Config     config.RunnerConfig
	FormFactor config.FormFactor
	Runtime    core.RuntimeConfig
	Debug      bool

	Assets fs.FS          // Sprite source; nil means the embedded sprites
	Store  *storage.Store // Optional; nil disables score persistence
	Logger *log.Logger    // Optional; nil discards
	Player string         // Recorded with every score, e.g. the SSH user
}

// assetsLoadedMsg carries the sprites once they are all read.
type assetsLoadedMsg struct {
	sprites assets.Sprites
}

// assetsFailedMsg aborts start-up; no tick is ever scheduled.
type assetsFailedMsg struct {
	err error
}

// Model is the Bubble Tea model that drives one runner game.
// Bubble Tea delivers every message on one goroutine, so the game is only
// ever touched from Update and View.
type Model struct {
	game    *runner.Game
	hud     *HUD
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	assets  fs.FS
	player  string
	runtime core.RuntimeConfig
	input   core.InputFrame
	keys    KeyMap
	help    help.Model
	duck    duckRepeat
	clock   func() time.Time

	width    int
	height   int
	ready    bool // Sprites loaded and game reset
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model for a fresh runner game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fsys := opts.Assets
	if fsys == nil {
		fsys = assets.Embedded()
	}

	game := runner.New(runner.Options{
		Config:     opts.Config,
		FormFactor: opts.FormFactor,
		Debug:      opts.Debug,
	})

	best := 0
	if opts.Store != nil {
		high, err := opts.Store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not read high score", "error", err)
		}
		best = high
	}
	hud := NewHUD(best)
	game.SetScoreSink(hud)

	m := Model{
		game:    game,
		hud:     hud,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   opts.Store,
		logger:  logger,
		assets:  fsys,
		player:  opts.Player,
		runtime: cfg,
		input:   core.NewInputFrame(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		duck:    newDuckRepeat(opts.Config.Input.DuckReleaseAfter),
		clock:   time.Now,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.layout()
	return m
}

// Init starts the sprite load. The tick loop starts once it succeeds.
func (m Model) Init() tea.Cmd {
	return loadAssetsCmd(m.assets)
}

func loadAssetsCmd(fsys fs.FS) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), assetLoadTimeout)
		defer cancel()

		sprites, err := assets.Load(ctx, fsys)
		if err != nil {
			return assetsFailedMsg{err: err}
		}
		return assetsLoadedMsg{sprites: sprites}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assetsLoadedMsg:
		m.game.SetSprites(msg.sprites)
		m.game.Reset(m.runtime)
		m.ready = true
		m.logger.Info("game started",
			"size", fmt.Sprintf("%dx%d", m.runtime.ScreenW, m.runtime.ScreenH),
			"seed", m.runtime.Seed,
			"compact", m.game.Constants().Compact,
		)
		return m, tickCmd(m.runtime.TickRate)

	case assetsFailedMsg:
		m.logger.Error("asset load failed", "error", msg.err)
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.logger.Debug("resize", "width", m.runtime.ScreenW, "height", m.runtime.ScreenH)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionDuck {
		m.duck.Press(m.clock())
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleMouse turns left-button presses and releases into pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := tea.MouseEvent(msg)
	if ev.IsWheel() {
		return m, nil
	}

	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button == tea.MouseButtonLeft {
			m.input.AddPointer(core.PointerPress, m.clock())
		}
	case tea.MouseActionRelease:
		m.input.AddPointer(core.PointerRelease, m.clock())
	}
	return m, nil
}

// layout splits the terminal into the HUD line, the play field and the
// help footer, and resizes the game to the play field.
func (m *Model) layout() {
	footer := lipgloss.Height(m.help.View(m.keys))
	playH := max(m.height-1-footer, 1)
	playW := max(m.width, 1)

	m.screen.Resize(playW, playH)
	m.runtime.ScreenW = playW
	m.runtime.ScreenH = playH
	if m.ready {
		m.game.Resize(playW, playH)
	}
}

// handleTick runs one simulation step and re-arms the tick. A panic inside
// the step is logged and the loop keeps going.
func (m Model) handleTick(now time.Time) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("tick panicked", "panic", r)
			m.input.Clear()
			model, cmd = m, tickCmd(m.runtime.TickRate)
		}
	}()

	if !m.ready {
		return m, nil
	}

	if m.duck.Released(now) {
		m.input.Set(core.ActionDuckRelease)
	}
	m.input.Now = now

	before := m.game.State().Score
	result := m.game.Step(m.input)
	if result.Collided {
		final := before + result.Culled
		m.logger.Info("game over", "score", final, "player", m.player)
		m.recordRun(final)
	}
	if result.State.GameOver || !result.State.Started {
		m.duck.Reset()
	}

	m.input.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// recordRun stores a finished run. Empty runs are not recorded.
func (m *Model) recordRun(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, score); err != nil {
		m.logger.Warn("could not save score", "score", score, "error", err)
	}
}

// saveScreenshot saves the current play field to a text file.
func (m *Model) saveScreenshot() {
	if !m.ready {
		return
	}
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var (
	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the HUD, the play field and the help footer. A panic while
// drawing is logged and a blank field is shown for that frame.
func (m Model) View() (view string) {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return loadingStyle.Render("Loading sprites...")
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("render panicked", "panic", r)
			view = m.blankView()
		}
	}()

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.View(m.game.Title(), m.width),
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// blankView is an empty play field with the help footer.
func (m Model) blankView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH, lipgloss.Left, lipgloss.Top, ""),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a local game and blocks until the
// player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
