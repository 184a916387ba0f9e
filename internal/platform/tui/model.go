package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/coin-frenzy/internal/arena"
	"github.com/vovakirdan/coin-frenzy/internal/config"
	"github.com/vovakirdan/coin-frenzy/internal/core"
	"github.com/vovakirdan/coin-frenzy/internal/storage"
)

// bannerDuration is how long level and game-over messages stay on screen.
const bannerDuration = 2 * time.Second

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameOptions configures a game model.
type GameOptions struct {
	Arena      config.ArenaConfig
	Difficulty config.DifficultyPreset
	Runtime    core.RuntimeConfig
	Player     string         // recorded with saved runs; empty means local
	Store      *storage.Store // nil plays without saving scores
	Logger     *log.Logger
	HoldWindow time.Duration

	// ScreenshotDir defaults to ~/.frenzy/screenshots.
	ScreenshotDir string

	// Embedded models return to the caller's menu on esc instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model driving one arena session.
type Model struct {
	opts    GameOptions
	session *arena.Session
	screen  *core.Screen
	keys    *KeyMapper
	help    help.Model
	latch   intentLatch
	logger  *log.Logger
	now     func() time.Time

	width    int
	height   int
	lastTick time.Time

	banner     string
	bannerLeft time.Duration

	lastRun    *storage.Run
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model. The difficulty preset is applied to a copy
// of the arena config; an unknown preset is an error.
func NewModel(opts GameOptions) (Model, error) {
	cfg := opts.Arena
	if err := config.ApplyArenaPreset(&cfg, opts.Difficulty); err != nil {
		return Model{}, err
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		opts:    opts,
		session: arena.NewSession(cfg, opts.Runtime.Seed, arena.WithLogger(logger)),
		keys:    NewKeyMapper(),
		help:    help.New(),
		latch:   newIntentLatch(opts.HoldWindow),
		logger:  logger,
		now:     time.Now,
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}
	m.screen = core.NewScreen(m.width, m.gameHeight())
	m.help.Width = m.width

	logger.Info("session started",
		"player", m.player(),
		"difficulty", opts.Difficulty,
		"seed", opts.Runtime.Seed,
	)
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.session.SetPaused(true)
		m.latch.release()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.gameHeight())
		return m, nil
	}

	if dir := m.keys.MapMove(msg); dir != moveNone {
		m.latch.press(dir, m.now())
		return m, nil
	}

	switch action := m.keys.MapAction(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		if m.opts.Embedded && msg.String() != "ctrl+c" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.latch.release()
		m.session.Apply(action)
		m.logger.Info("game restarted", "player", m.player())
	default:
		m.session.Apply(action)
	}

	return m, nil
}

// handleResize processes window resize events. The arena keeps its state;
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.width, m.gameHeight())
	return m, nil
}

// handleTick steps the arena by the wall-clock time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	res := m.session.Step(elapsed.Seconds(), m.latch.Intent(now))

	if m.bannerLeft > 0 {
		m.bannerLeft -= elapsed
	}

	switch {
	case res.Has(arena.EventGameOver):
		m.recordRun(res)
	case res.Has(arena.EventLevelCleared):
		m.showBanner(fmt.Sprintf("LEVEL %d", res.State.Level))
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordRun saves a finished run. Saving is best effort; the game continues
// regardless.
func (m *Model) recordRun(res arena.StepResult) {
	m.showBanner(fmt.Sprintf("GAME OVER  score %s  level %d",
		humanize.Comma(int64(res.FinalScore)), res.FinalLevel))

	run := storage.Run{
		Player:     m.opts.Player,
		Difficulty: string(m.opts.Difficulty),
		Score:      res.FinalScore,
		Level:      res.FinalLevel,
	}
	if m.opts.Store != nil && res.FinalScore > 0 {
		saved, err := m.opts.Store.SaveRun(run)
		if err != nil {
			m.logger.Warn("could not save run", "error", err)
		} else {
			run = saved
		}
	}
	m.lastRun = &run
	m.logger.Info("run finished", "player", m.player(), "score", run.Score, "level", run.Level, "run", run.RunID)
}

func (m *Model) showBanner(text string) {
	m.banner = text
	m.bannerLeft = bannerDuration
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".frenzy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("frenzy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.session.Render(m.screen)
	if m.bannerLeft > 0 && m.banner != "" {
		m.screen.DrawTextCentered(m.screen.Height()-2, " "+m.banner+" ", core.ColorBrightYellow)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// gameHeight is the screen height left for the arena below the help bar.
func (m Model) gameHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys.Keys())), 0)
}

func (m Model) player() string {
	if m.opts.Player == "" {
		return storage.LocalPlayer
	}
	return m.opts.Player
}

// Session returns the arena session the model drives.
func (m Model) Session() *arena.Session {
	return m.session
}

// LastRun returns the most recently finished run, or nil.
func (m Model) LastRun() *storage.Run {
	return m.lastRun
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game and returns the model
// as it was when the program exited.
func Run(opts GameOptions) (Model, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		model = m
	}
	return model, err
}
