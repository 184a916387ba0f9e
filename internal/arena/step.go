package arena

import (
	"math"

	"github.com/vovakirdan/coin-frenzy/internal/config"
	"github.com/vovakirdan/coin-frenzy/internal/core"
)

// magnetMinDist keeps the magnet from normalizing a coin sitting on the player.
const magnetMinDist = 1e-4

// Event flags what happened during one step.
type Event uint16

const (
	EventCoinCollected Event = 1 << iota
	EventEnemyKilled
	EventPlayerHit
	EventLifeLost
	EventGameOver
	EventLevelCleared
)

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Events Event
	Kills  int // enemies killed this tick
	Coins  int // coins collected this tick

	// FinalScore and FinalLevel describe the run that ended when
	// EventGameOver is set.
	FinalScore int
	FinalLevel int

	State core.GameState
}

// Has reports whether the event occurred this tick.
func (r StepResult) Has(e Event) bool {
	return r.Events&e != 0
}

// ClampDT bounds an elapsed time into [0, maxDT]. NaN counts as zero.
func ClampDT(dt, maxDT float64) float64 {
	if math.IsNaN(dt) {
		return 0
	}
	return core.ClampF(dt, 0, maxDT)
}

// Step advances the simulation by one tick of dt seconds with the given
// movement intent. While paused nothing changes.
//
// Phases run in a fixed order: player movement, bullet advance, bullet hits,
// enemies, coins, level completion.
func (s *Session) Step(dt float64, in core.Intent) StepResult {
	dt = ClampDT(dt, min(s.cfg.Step.MaxDT, config.MaxStepDT))
	if s.paused {
		return StepResult{State: s.State()}
	}
	s.tick++

	var res StepResult
	s.movePlayer(in, dt)
	s.advanceBullets(dt)
	s.resolveBulletHits(&res)
	if s.updateEnemies(dt, &res) {
		// The game was reset mid-phase; the old collections are gone.
		res.State = s.State()
		return res
	}
	if s.updateCoins(dt, &res) {
		s.level++
		s.resetLevel(s.level)
		res.Events |= EventLevelCleared
		s.logger.Info("level cleared", "level", s.level-1, "score", s.score)
	}

	res.State = s.State()
	return res
}

func (s *Session) movePlayer(in core.Intent, dt float64) {
	var fwdAmt, rightAmt float64
	if in.Forward {
		fwdAmt++
	}
	if in.Backward {
		fwdAmt--
	}
	if in.Right {
		rightAmt++
	}
	if in.Left {
		rightAmt--
	}

	fwd := core.Forward(s.player.Yaw)
	move := fwd.Mul(fwdAmt).Add(core.Right(fwd).Mul(rightAmt))
	if move.Len() == 0 {
		return
	}
	step := core.Normalize(move).Mul(s.player.Speed * dt)
	s.player.Pos = core.ClampToArena(s.player.Pos.Add(step), s.player.Radius, s.cfg.Arena.HalfExtent)
}

func (s *Session) advanceBullets(dt float64) {
	bound := s.cfg.Arena.HalfExtent - s.cfg.Arena.WallMargin
	for i := range s.bullets {
		b := &s.bullets[i]
		if !b.Alive {
			continue
		}
		b.Pos = b.Pos.Add(b.Dir.Mul(b.Speed * dt))
		b.TTL -= dt
		if b.TTL <= 0 {
			b.Alive = false
		}
		if math.Abs(b.Pos.X()) > bound || math.Abs(b.Pos.Z()) > bound {
			b.Alive = false
		}
	}
}

// resolveBulletHits kills each bullet on its first hit, then compacts the
// bullet slice. Enemies are only flagged.
func (s *Session) resolveBulletHits(res *StepResult) {
	for i := range s.bullets {
		b := &s.bullets[i]
		for j := range s.enemies {
			if !b.Alive {
				break
			}
			e := &s.enemies[j]
			if e.Alive && core.SphereOverlap(b.Pos, b.Radius, e.Pos, e.Radius) {
				e.Alive = false
				b.Alive = false
				s.score += s.cfg.Scoring.Kill
				res.Kills++
				res.Events |= EventEnemyKilled
			}
		}
	}

	live := s.bullets[:0]
	for _, b := range s.bullets {
		if b.Alive {
			live = append(live, b)
		}
	}
	clear(s.bullets[len(live):])
	s.bullets = live
}

// updateEnemies runs behavior, movement, wall bounce and contact for every
// live enemy. It returns true if the player ran out of lives and the game
// was reset.
func (s *Session) updateEnemies(dt float64, res *StepResult) bool {
	for i := range s.enemies {
		e := &s.enemies[i]
		if !e.Alive {
			continue
		}
		s.think(e, dt)
		e.Pos = e.Pos.Add(e.Vel.Mul(dt))
		s.bounce(e)

		if !core.SphereOverlap(e.Pos, e.Radius, s.player.Pos, s.player.Radius) || s.player.Cheat {
			continue
		}
		if s.hitPlayer(e, res) {
			return true
		}
	}
	return false
}

// think picks the enemy's velocity. Inside the detection range it pursues
// the player at full speed; outside it keeps its patrol heading until the
// patrol timer runs out.
func (s *Session) think(e *Enemy, dt float64) {
	toPlayer := core.Horizontal(s.player.Pos.Sub(e.Pos))
	if toPlayer.Len() < s.cfg.Enemy.DetectRange {
		e.Behavior = Pursuing
		e.Vel = core.Normalize(toPlayer).Mul(e.Speed)
		return
	}

	e.Behavior = Patrolling
	e.PatrolTimer -= dt
	if e.PatrolTimer <= 0 {
		e.Vel = s.spawner.PatrolHeading().Mul(e.Speed * s.cfg.Enemy.PatrolFactor)
		e.PatrolTimer = s.spawner.PatrolDelay(s.cfg.Enemy)
	}
}

// bounce snaps each axis independently back inside the arena and reflects
// that axis' velocity.
func (s *Session) bounce(e *Enemy) {
	lim := s.cfg.Arena.HalfExtent - e.Radius
	for _, axis := range [2]int{0, 2} {
		switch {
		case e.Pos[axis] > lim:
			e.Pos[axis] = lim
			e.Vel[axis] = -e.Vel[axis]
		case e.Pos[axis] < -lim:
			e.Pos[axis] = -lim
			e.Vel[axis] = -e.Vel[axis]
		}
	}
}

// hitPlayer applies contact damage and knockback from e. It returns true if
// the hit cost the last life and reset the game.
func (s *Session) hitPlayer(e *Enemy, res *StepResult) bool {
	p := &s.player
	p.Health -= s.cfg.Enemy.ContactDamage
	res.Events |= EventPlayerHit

	away := core.Normalize(core.Horizontal(p.Pos.Sub(e.Pos)))
	p.Pos = core.ClampToArena(p.Pos.Add(away.Mul(s.cfg.Player.Knockback)), p.Radius, s.cfg.Arena.HalfExtent)

	if p.Health > 0 {
		return false
	}

	p.Lives--
	p.Health = s.cfg.Player.MaxHealth
	p.Pos = s.spawnPoint()
	res.Events |= EventLifeLost
	s.logger.Info("player died", "lives", p.Lives, "level", s.level)

	if p.Lives >= 0 {
		return false
	}

	res.Events |= EventGameOver
	res.FinalScore = s.score
	res.FinalLevel = s.level
	s.logger.Info("game over", "score", s.score, "level", s.level)
	s.ResetGame()
	return true
}

// updateCoins handles pickup and magnet pull. It returns true when every coin
// of the level has been taken, counting pickups from this tick.
func (s *Session) updateCoins(dt float64, res *StepResult) bool {
	allTaken := len(s.coins) > 0
	for i := range s.coins {
		c := &s.coins[i]
		if c.Taken {
			continue
		}
		if core.SphereOverlap(s.player.Pos, s.player.Radius, c.Pos, c.Radius) {
			c.Taken = true
			s.score += s.cfg.Scoring.Coin
			res.Coins++
			res.Events |= EventCoinCollected
			continue
		}
		allTaken = false

		if !s.magnet {
			continue
		}
		toPlayer := s.player.Pos.Sub(c.Pos)
		d := toPlayer.Len()
		if d < s.cfg.Coin.MagnetRange && d > magnetMinDist {
			c.Pos = c.Pos.Add(toPlayer.Mul(s.cfg.Coin.PullSpeed * dt / d))
		}
	}
	return allTaken
}
