package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-frenzy/internal/config"
	"github.com/vovakirdan/coin-frenzy/internal/core"
	"github.com/vovakirdan/coin-frenzy/internal/platform/tui"
)

func TestReportGameLogsTicks(t *testing.T) {
	m, err := tui.NewModel(tui.GameOptions{
		Arena:   config.DefaultArenaConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m.Session().Step(0.016, core.Intent{})
	m.Session().Step(0.016, core.Intent{})

	var buf bytes.Buffer
	reportGame(log.New(&buf), m)

	out := buf.String()
	if !strings.Contains(out, "game closed") {
		t.Errorf("log %q should mention the closed game", out)
	}
	if !strings.Contains(out, "ticks=2") {
		t.Errorf("log %q should report 2 ticks", out)
	}
	if strings.Contains(out, "last_run") {
		t.Errorf("log %q should not mention a run when none finished", out)
	}
}

func TestReportGameSkipsEmptyModel(t *testing.T) {
	var buf bytes.Buffer
	reportGame(log.New(&buf), tui.Model{})
	if buf.Len() != 0 {
		t.Errorf("zero model should log nothing, got %q", buf.String())
	}
}
