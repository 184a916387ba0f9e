package arena

import (
	"github.com/vovakirdan/coin-frenzy/internal/core"
)

// Player is the single avatar owned by a Session.
type Player struct {
	Pos    core.Vec3
	Yaw    float64 // heading in degrees
	Speed  float64
	Radius float64
	Health int // 0..MaxHealth; reset to full on the tick it drops to zero
	Lives  int // goes negative to trigger a game reset
	Cheat  bool
}

// Bullet is a projectile travelling in a fixed direction until it expires,
// leaves the play bound or hits an enemy.
type Bullet struct {
	Pos    core.Vec3
	Dir    core.Vec3 // unit length
	Speed  float64
	Radius float64
	TTL    float64 // seconds left
	Alive  bool
}

// Behavior is the enemy state machine state.
type Behavior int

const (
	Patrolling Behavior = iota
	Pursuing
)

func (b Behavior) String() string {
	switch b {
	case Patrolling:
		return "patrolling"
	case Pursuing:
		return "pursuing"
	default:
		return "unknown"
	}
}

// Enemy hunts the player inside its detection range and wanders outside it.
// Dead enemies stay in the slice until the next level reset.
type Enemy struct {
	Pos         core.Vec3
	Vel         core.Vec3
	Speed       float64
	Radius      float64
	PatrolTimer float64 // seconds until the next patrol heading
	Behavior    Behavior
	Alive       bool
}

// Coin is a pickup. Taken coins stay in the slice and are skipped.
type Coin struct {
	Pos    core.Vec3
	Radius float64
	Taken  bool
}
