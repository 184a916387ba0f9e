package arena

import (
	"math/rand"

	"github.com/vovakirdan/coin-frenzy/internal/config"
	"github.com/vovakirdan/coin-frenzy/internal/core"
)

// Arena sides for perimeter placement.
const (
	sidePosX = iota
	sideNegX
	sidePosZ
	sideNegZ
)

// Spawner places coins in the interior and enemies along the walls.
type Spawner struct {
	rng  *rand.Rand
	half float64
	tune config.SpawnTuning
}

// NewSpawner creates a spawner for an arena of the given half extent.
func NewSpawner(rng *rand.Rand, half float64, tune config.SpawnTuning) *Spawner {
	return &Spawner{rng: rng, half: half, tune: tune}
}

// uniform returns a value in [lo, hi).
func (sp *Spawner) uniform(lo, hi float64) float64 {
	return lo + sp.rng.Float64()*(hi-lo)
}

// InsidePos returns a ground-level position at least margin away from every wall.
func (sp *Spawner) InsidePos(margin float64) core.Vec3 {
	lo, hi := -sp.half+margin, sp.half-margin
	return core.V3(sp.uniform(lo, hi), 0, sp.uniform(lo, hi))
}

// PerimeterPos returns a ground-level position just inside a random wall.
func (sp *Spawner) PerimeterPos() core.Vec3 {
	edge := sp.half - sp.tune.PerimeterInset
	along := sp.uniform(-sp.half+sp.tune.PerimeterBorder, sp.half-sp.tune.PerimeterBorder)

	switch sp.rng.Intn(4) {
	case sidePosX:
		return core.V3(edge, 0, along)
	case sideNegX:
		return core.V3(-edge, 0, along)
	case sidePosZ:
		return core.V3(along, 0, edge)
	default:
		return core.V3(along, 0, -edge)
	}
}

// CoinCount returns how many coins a level spawns. Never negative.
func CoinCount(t config.SpawnTuning, level int) int {
	return max(min(t.CoinBase+level*t.CoinPerLevel, t.CoinCap), 0)
}

// EnemyCount returns how many enemies a level spawns. Never negative.
func EnemyCount(t config.SpawnTuning, level int) int {
	return max(min(t.EnemyBase+level*t.EnemyPerLevel, t.EnemyCap), 0)
}

// Coins creates the coin set for a level.
func (sp *Spawner) Coins(level int, radius float64) []Coin {
	coins := make([]Coin, CoinCount(sp.tune, level))
	for i := range coins {
		coins[i] = Coin{
			Pos:    sp.InsidePos(sp.tune.CoinMargin),
			Radius: radius,
		}
	}
	return coins
}

// Enemies creates the enemy set for a level. Each enemy draws its own speed
// from the tuning range and starts patrolling with an expired timer.
// Positions are clamped so the enemy's body starts inside the walls.
func (sp *Spawner) Enemies(level int, t config.EnemyTuning, height float64) []Enemy {
	enemies := make([]Enemy, EnemyCount(sp.tune, level))
	for i := range enemies {
		pos := core.ClampToArena(sp.PerimeterPos(), t.Radius, sp.half)
		pos[1] = height
		enemies[i] = Enemy{
			Pos:      pos,
			Speed:    sp.uniform(t.MinSpeed, t.MaxSpeed),
			Radius:   t.Radius,
			Behavior: Patrolling,
			Alive:    true,
		}
	}
	return enemies
}

// PatrolHeading returns a random horizontal unit direction, or zero in the
// degenerate case where both draws land near the origin.
func (sp *Spawner) PatrolHeading() core.Vec3 {
	return core.Normalize(core.V3(sp.uniform(-1, 1), 0, sp.uniform(-1, 1)))
}

// PatrolDelay returns a random patrol re-decision delay.
func (sp *Spawner) PatrolDelay(t config.EnemyTuning) float64 {
	return sp.uniform(t.PatrolMinDelay, t.PatrolMaxDelay)
}
