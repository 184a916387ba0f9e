package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coin-frenzy/internal/arena"
	"github.com/vovakirdan/coin-frenzy/internal/config"
	"github.com/vovakirdan/coin-frenzy/internal/core"
	"github.com/vovakirdan/coin-frenzy/internal/storage"
)

func newTestModel(t *testing.T, opts GameOptions) Model {
	t.Helper()
	if opts.Arena.Arena.HalfExtent == 0 {
		opts.Arena = config.DefaultArenaConfig()
	}
	if opts.Runtime.ScreenW == 0 {
		opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestNewModelRejectsUnknownDifficulty(t *testing.T) {
	_, err := NewModel(GameOptions{
		Arena:      config.DefaultArenaConfig(),
		Difficulty: "nightmare",
		Runtime:    core.DefaultConfig(),
	})
	if err == nil {
		t.Fatal("expected an error for an unknown difficulty")
	}
}

func TestNewModelAppliesDifficulty(t *testing.T) {
	m := newTestModel(t, GameOptions{Difficulty: config.DifficultyEasy})
	if lives := m.Session().Player().Lives; lives != 5 {
		t.Errorf("easy lives = %d, want 5", lives)
	}

	m = newTestModel(t, GameOptions{})
	if lives := m.Session().Player().Lives; lives != 3 {
		t.Errorf("default lives = %d, want 3", lives)
	}
}

func TestHeldKeyMovesPlayer(t *testing.T) {
	t0 := time.Unix(1000, 0)
	m := newTestModel(t, GameOptions{})
	m.now = func() time.Time { return t0 }

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, TickMsg(t0))
	if z := m.Session().Player().Pos.Z(); z != 0 {
		t.Fatalf("first tick should not move the player, z = %v", z)
	}

	m, cmd := update(t, m, TickMsg(t0.Add(50*time.Millisecond)))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	z := m.Session().Player().Pos.Z()
	if diff := z - -1.25; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("player z = %v, want -1.25", z)
	}

	// The hold window has expired, so the next tick does not move
	m, _ = update(t, m, TickMsg(t0.Add(300*time.Millisecond)))
	if got := m.Session().Player().Pos.Z(); got != z {
		t.Errorf("released key moved the player from %v to %v", z, got)
	}
}

func TestActionKeysReachSession(t *testing.T) {
	m := newTestModel(t, GameOptions{})

	m, _ = update(t, m, runeKey('e'))
	if yaw := m.Session().Player().Yaw; yaw != 5 {
		t.Errorf("yaw = %v, want 5", yaw)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if n := len(m.Session().Bullets()); n != 1 {
		t.Errorf("bullets = %d, want 1", n)
	}

	m, _ = update(t, m, runeKey('m'))
	if !m.Session().Magnet() {
		t.Error("magnet should be on")
	}

	m, _ = update(t, m, runeKey('p'))
	if !m.Session().Paused() {
		t.Error("session should be paused")
	}

	m, _ = update(t, m, runeKey('r'))
	if m.Session().Paused() || m.Session().Magnet() {
		t.Error("restart should clear pause and magnet")
	}
}

func TestBlurPauses(t *testing.T) {
	m := newTestModel(t, GameOptions{})
	m, _ = update(t, m, tea.BlurMsg{})
	if !m.Session().Paused() {
		t.Error("losing focus should pause the session")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, GameOptions{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || cmd == nil {
		t.Error("esc should quit a standalone game")
	}

	m = newTestModel(t, GameOptions{Embedded: true})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() || cmd != nil {
		t.Error("esc should return an embedded game to the menu")
	}

	m = newTestModel(t, GameOptions{Embedded: true})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Error("ctrl+c should always quit")
	}
}

func TestRecordRunSavesToStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, GameOptions{
		Store:      store,
		Player:     "alice",
		Difficulty: config.DifficultyHard,
	})

	m.recordRun(arena.StepResult{Events: arena.EventGameOver, FinalScore: 1230, FinalLevel: 4})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved runs = %d, want 1", len(runs))
	}
	r := runs[0]
	if r.Player != "alice" || r.Difficulty != "hard" || r.Score != 1230 || r.Level != 4 {
		t.Errorf("saved run = %+v", r)
	}
	if m.LastRun() == nil || m.LastRun().RunID != r.RunID {
		t.Error("LastRun should be the saved run")
	}
	if !strings.Contains(m.banner, "1,230") {
		t.Errorf("banner = %q, want the formatted score", m.banner)
	}
}

func TestRecordRunSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, GameOptions{Store: store})
	m.recordRun(arena.StepResult{Events: arena.EventGameOver, FinalLevel: 1})

	if high, _ := store.HighScore(); high != 0 {
		t.Errorf("high score = %d, want 0", high)
	}
	if m.LastRun() == nil {
		t.Error("LastRun should be set even when nothing is saved")
	}
}

func TestViewShowsHUDAndHelp(t *testing.T) {
	m := newTestModel(t, GameOptions{})
	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(view, "fire") {
		t.Error("view should contain the help bar")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	m := newTestModel(t, GameOptions{})
	m.Session().FireBullet()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 {
		t.Errorf("screen width = %d, want 120", m.screen.Width())
	}
	if m.screen.Height() >= 40 {
		t.Errorf("screen height = %d, want room for the help bar", m.screen.Height())
	}
	if len(m.Session().Bullets()) != 1 {
		t.Error("resize should not reset the session")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, GameOptions{ScreenshotDir: dir})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("screenshots = %d, want 1", len(files))
	}
	data, _ := os.ReadFile(filepath.Join(dir, files[0].Name()))
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("screenshot should contain the rendered HUD")
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.Run{
		{Score: 1234, Level: 3, Player: "bob", Difficulty: "easy", CreatedAt: time.Now().Add(-time.Hour)},
		{Score: 10, Level: 1, Player: "local", Difficulty: "normal"},
	})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "1,234" || rows[0][2] != "3" || rows[0][3] != "bob" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if !strings.Contains(rows[0][5], "hour") {
		t.Errorf("row 0 time = %q, want a relative time", rows[0][5])
	}
	if rows[1][5] != "-" {
		t.Errorf("row 1 time = %q, want -", rows[1][5])
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)
	if m.Difficulty() != config.DifficultyNormal {
		t.Fatalf("difficulty = %s, want normal", m.Difficulty())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("difficulty = %s, want hard", m.Difficulty())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty = %s, want easy after wrapping", m.Difficulty())
	}
}

func TestSessionModelFlow(t *testing.T) {
	s := NewSessionModel(SessionOptions{
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Arena:      config.DefaultArenaConfig(),
		Difficulty: config.DifficultyNormal,
		Player:     "carol",
	})

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame || s.game == nil {
		t.Fatal("enter on Play should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start the tick loop")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu || s.game != nil {
		t.Fatal("esc in game should return to the menu")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "No runs recorded yet") {
		t.Error("scoreboard without a store should be empty")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Fatal("esc on the scoreboard should return to the menu")
	}

	_, cmd = s.Update(runeKey('q'))
	if cmd == nil {
		t.Error("q in the menu should quit the session")
	}
}
