// Package arena implements the Coin Frenzy simulation: a player moving and
// shooting in a walled square, enemies that patrol or hunt, coins that can be
// magnetized, and levels that escalate when every coin is collected.
//
// A Session owns all mutable state. The driver calls Step once per frame and
// applies discrete requests (fire, turn, toggles, reset) between steps.
package arena

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-frenzy/internal/config"
	"github.com/vovakirdan/coin-frenzy/internal/core"
)

// Session is one game session: the player, the entity collections and the
// progression counters.
type Session struct {
	cfg     config.ArenaConfig
	rng     *rand.Rand
	spawner *Spawner
	logger  *log.Logger

	player  Player
	bullets []Bullet
	enemies []Enemy
	coins   []Coin

	score  int
	level  int
	paused bool
	magnet bool
	tick   uint64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for progression events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session and performs the initial game reset.
// The same config and seed produce the same session.
func NewSession(cfg config.ArenaConfig, seed int64, opts ...Option) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:     cfg,
		rng:     rng,
		spawner: NewSpawner(rng, cfg.Arena.HalfExtent, cfg.Spawn),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ResetGame()
	return s
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.ArenaConfig {
	return s.cfg
}

// ResetGame reinitializes the whole session and starts level 1.
func (s *Session) ResetGame() {
	s.score = 0
	s.level = 1
	s.paused = false
	s.magnet = false
	s.player.Lives = s.cfg.Player.Lives
	s.player.Cheat = false
	s.player.Yaw = 0
	s.resetLevel(s.level)
	s.logger.Info("game reset", "lives", s.player.Lives)
}

// resetLevel discards bullets, respawns the player at the center with full
// health and replaces the coin and enemy sets. Score and lives are kept.
func (s *Session) resetLevel(level int) {
	s.bullets = s.bullets[:0]
	s.player.Pos = s.spawnPoint()
	s.player.Speed = s.cfg.Player.Speed
	s.player.Radius = s.cfg.Player.Radius
	s.player.Health = s.cfg.Player.MaxHealth
	s.coins = s.spawner.Coins(level, s.cfg.Coin.Radius)
	s.enemies = s.spawner.Enemies(level, s.cfg.Enemy, s.cfg.Player.SpawnHeight)
	s.logger.Debug("level started", "level", level, "coins", len(s.coins), "enemies", len(s.enemies))
}

func (s *Session) spawnPoint() core.Vec3 {
	return core.V3(0, s.cfg.Player.SpawnHeight, 0)
}

// FireBullet spawns a bullet at the muzzle, in front of the player along the
// current heading.
func (s *Session) FireBullet() {
	dir := core.Normalize(core.Forward(s.player.Yaw))
	muzzle := s.player.Pos.
		Add(core.V3(0, s.cfg.Bullet.MuzzleHeight, 0)).
		Add(dir.Mul(s.cfg.Bullet.MuzzleForward))
	s.bullets = append(s.bullets, Bullet{
		Pos:    muzzle,
		Dir:    dir,
		Speed:  s.cfg.Bullet.Speed,
		Radius: s.cfg.Bullet.Radius,
		TTL:    s.cfg.Bullet.TTL,
		Alive:  true,
	})
}

// SetYawDelta turns the player by the given number of degrees.
func (s *Session) SetYawDelta(deg float64) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return
	}
	s.player.Yaw = math.Mod(s.player.Yaw+deg, 360)
}

// ToggleMagnet switches coin magnet mode.
func (s *Session) ToggleMagnet() {
	s.magnet = !s.magnet
}

// ToggleCheat switches contact-damage immunity.
func (s *Session) ToggleCheat() {
	s.player.Cheat = !s.player.Cheat
}

// TogglePause switches the paused flag.
func (s *Session) TogglePause() {
	s.paused = !s.paused
}

// SetPaused sets the paused flag.
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
}

// Apply performs a discrete driver action. Unknown actions are ignored.
func (s *Session) Apply(a core.Action) {
	switch a {
	case core.ActionFire:
		s.FireBullet()
	case core.ActionTurnLeft:
		s.SetYawDelta(-s.cfg.Player.YawStep)
	case core.ActionTurnRight:
		s.SetYawDelta(s.cfg.Player.YawStep)
	case core.ActionMagnet:
		s.ToggleMagnet()
	case core.ActionCheat:
		s.ToggleCheat()
	case core.ActionPause:
		s.TogglePause()
	case core.ActionRestart:
		s.ResetGame()
	}
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Bullets returns copies of the live bullets.
func (s *Session) Bullets() []Bullet {
	out := make([]Bullet, 0, len(s.bullets))
	for _, b := range s.bullets {
		if b.Alive {
			out = append(out, b)
		}
	}
	return out
}

// Enemies returns copies of the live enemies.
func (s *Session) Enemies() []Enemy {
	out := make([]Enemy, 0, len(s.enemies))
	for _, e := range s.enemies {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

// Coins returns copies of the coins not yet taken.
func (s *Session) Coins() []Coin {
	out := make([]Coin, 0, len(s.coins))
	for _, c := range s.coins {
		if !c.Taken {
			out = append(out, c)
		}
	}
	return out
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the active level number, starting at 1.
func (s *Session) Level() int { return s.level }

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool { return s.paused }

// Magnet reports whether magnet mode is active.
func (s *Session) Magnet() bool { return s.magnet }

// Tick returns the number of unpaused steps taken.
func (s *Session) Tick() uint64 { return s.tick }

// State returns the summary the platform needs after each step.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:  s.score,
		Level:  s.level,
		Lives:  s.player.Lives,
		Paused: s.paused,
	}
}
