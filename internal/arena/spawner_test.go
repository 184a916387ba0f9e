package arena

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/coin-frenzy/internal/config"
)

func newTestSpawner() *Spawner {
	cfg := config.DefaultArenaConfig()
	return NewSpawner(rand.New(rand.NewSource(testSeed)), cfg.Arena.HalfExtent, cfg.Spawn)
}

func TestSpawnCounts(t *testing.T) {
	tune := config.DefaultArenaConfig().Spawn
	tests := []struct {
		level       int
		wantCoins   int
		wantEnemies int
	}{
		{1, 12, 5},
		{2, 14, 7},
		{5, 20, 13},
		{18, 46, 39},
		{19, 48, 40},
		{20, 50, 40},
		{100, 50, 40},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantCoins, CoinCount(tune, tt.level), "coins at level %d", tt.level)
		assert.Equal(t, tt.wantEnemies, EnemyCount(tune, tt.level), "enemies at level %d", tt.level)
	}
}

func TestSpawnCountsNeverNegative(t *testing.T) {
	tune := config.DefaultArenaConfig().Spawn
	tune.CoinBase = -20
	tune.EnemyBase = -20

	assert.Equal(t, 0, CoinCount(tune, 1))
	assert.Equal(t, 0, EnemyCount(tune, 1))

	cfg := config.DefaultArenaConfig()
	cfg.Spawn = tune
	assert.NotPanics(t, func() { NewSession(cfg, testSeed) })
}

func TestCoinsSpawnInsideMargin(t *testing.T) {
	sp := newTestSpawner()
	coins := sp.Coins(20, 1)

	assert.Len(t, coins, 50)
	for _, c := range coins {
		assert.LessOrEqual(t, math.Abs(c.Pos.X()), 54.0)
		assert.LessOrEqual(t, math.Abs(c.Pos.Z()), 54.0)
		assert.Zero(t, c.Pos.Y())
		assert.Equal(t, 1.0, c.Radius)
		assert.False(t, c.Taken)
	}
}

func TestEnemiesSpawnAlongWalls(t *testing.T) {
	sp := newTestSpawner()
	cfg := config.DefaultArenaConfig()
	tune := cfg.Enemy
	lim := cfg.Arena.HalfExtent - tune.Radius
	enemies := sp.Enemies(20, tune, 1.2)

	assert.Len(t, enemies, 40)
	for _, e := range enemies {
		x, z := math.Abs(e.Pos.X()), math.Abs(e.Pos.Z())
		onWall := x == lim || z == lim
		assert.True(t, onWall, "enemy at %v is not on a wall", e.Pos)
		assert.LessOrEqual(t, x, lim)
		assert.LessOrEqual(t, z, lim)
		assert.Equal(t, 1.2, e.Pos.Y())

		assert.GreaterOrEqual(t, e.Speed, 8.0)
		assert.Less(t, e.Speed, 12.0)
		assert.Equal(t, Patrolling, e.Behavior)
		assert.Zero(t, e.PatrolTimer)
		assert.True(t, e.Alive)
	}
}

func TestPerimeterPos(t *testing.T) {
	sp := newTestSpawner()
	for range 200 {
		p := sp.PerimeterPos()
		x, z := math.Abs(p.X()), math.Abs(p.Z())
		assert.True(t, x == 59 || z == 59, "position %v is not on the perimeter", p)
		assert.LessOrEqual(t, x, 59.0)
		assert.LessOrEqual(t, z, 59.0)
	}
}

func TestPatrolHeadingIsHorizontalUnit(t *testing.T) {
	sp := newTestSpawner()
	for range 100 {
		h := sp.PatrolHeading()
		assert.Zero(t, h.Y())
		assert.InDelta(t, 1.0, h.Len(), 1e-9)
	}
}

func TestPatrolDelayRange(t *testing.T) {
	sp := newTestSpawner()
	tune := config.DefaultArenaConfig().Enemy
	for range 100 {
		d := sp.PatrolDelay(tune)
		assert.GreaterOrEqual(t, d, 1.0)
		assert.Less(t, d, 2.5)
	}
}
