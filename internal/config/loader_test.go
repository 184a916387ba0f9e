package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseArena(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultArenaConfig()) {
		t.Errorf("embedded YAML and DefaultArenaConfig() disagree:\n%+v\n%+v", cfg, DefaultArenaConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultArenaConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadArenaCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := "enemy:\n  contact_damage: 40\nplayer:\n  lives: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadArena(path)
	if err != nil {
		t.Fatalf("LoadArena() error: %v", err)
	}
	if cfg.Enemy.ContactDamage != 40 {
		t.Errorf("ContactDamage = %d, expected 40", cfg.Enemy.ContactDamage)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
	// Untouched keys keep their defaults
	if cfg.Arena.HalfExtent != 60.0 {
		t.Errorf("HalfExtent = %v, expected default 60", cfg.Arena.HalfExtent)
	}
}

func TestLoadArenaMissingCustomPath(t *testing.T) {
	_, err := LoadArena(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadArenaRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative radius", "enemy:\n  radius: -1\n", "enemy.radius"},
		{"inverted speed", "enemy:\n  min_speed: 20\n  max_speed: 5\n", "speed range"},
		{"tiny arena", "arena:\n  half_extent: 3\n", "too small"},
		{"negative coin base", "spawn:\n  coin_base: -20\n", "spawn.coin_base"},
		{"no coins per level", "spawn:\n  coin_base: 0\n  coin_per_level: 0\n", "at least 1"},
		{"negative enemy base", "spawn:\n  enemy_base: -1\n", "spawn.enemy_base"},
		{"negative enemy per level", "spawn:\n  enemy_per_level: -2\n", "spawn.enemy_per_level"},
		{"step cap too large", "step:\n  max_dt: 10\n", "step.max_dt"},
		{"zero step cap", "step:\n  max_dt: 0\n", "step.max_dt"},
		{"healing contact", "enemy:\n  contact_damage: -50\n", "enemy.contact_damage"},
		{"zero contact damage", "enemy:\n  contact_damage: 0\n", "enemy.contact_damage"},
		{"bad yaml", "arena: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "arena.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, err := LoadArena(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyArenaPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		damage int
	}{
		{"", 3, 15},
		{DifficultyNormal, 3, 15},
		{DifficultyEasy, 5, 10},
		{DifficultyHard, 1, 25},
	}

	for _, tc := range tests {
		cfg := DefaultArenaConfig()
		if err := ApplyArenaPreset(&cfg, tc.preset); err != nil {
			t.Fatalf("ApplyArenaPreset(%q) error: %v", tc.preset, err)
		}
		if cfg.Player.Lives != tc.lives || cfg.Enemy.ContactDamage != tc.damage {
			t.Errorf("preset %q: lives=%d damage=%d, expected %d/%d",
				tc.preset, cfg.Player.Lives, cfg.Enemy.ContactDamage, tc.lives, tc.damage)
		}
	}

	cfg := DefaultArenaConfig()
	if err := ApplyArenaPreset(&cfg, "nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
