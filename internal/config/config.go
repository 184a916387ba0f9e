// Package config provides YAML-based arena tuning and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ArenaConfig contains all tuning for the arena simulation.
type ArenaConfig struct {
	Arena   ArenaBounds   `yaml:"arena"`
	Player  PlayerTuning  `yaml:"player"`
	Bullet  BulletTuning  `yaml:"bullet"`
	Enemy   EnemyTuning   `yaml:"enemy"`
	Coin    CoinTuning    `yaml:"coin"`
	Spawn   SpawnTuning   `yaml:"spawn"`
	Scoring ScoringTuning `yaml:"scoring"`
	Step    StepTuning    `yaml:"step"`
}

// ArenaBounds defines the square play area.
type ArenaBounds struct {
	HalfExtent float64 `yaml:"half_extent"`
	WallHeight float64 `yaml:"wall_height"` // render-only
	WallMargin float64 `yaml:"wall_margin"` // bullets die this far inside the wall line
}

// PlayerTuning defines player movement and vitality.
type PlayerTuning struct {
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	EyeHeight   float64 `yaml:"eye_height"`   // render-only
	SpawnHeight float64 `yaml:"spawn_height"` // y of the player's body center
	MaxHealth   int     `yaml:"max_health"`
	Lives       int     `yaml:"lives"`
	YawStep     float64 `yaml:"yaw_step"` // degrees per turn key press
	Knockback   float64 `yaml:"knockback"`
}

// BulletTuning defines projectile parameters.
type BulletTuning struct {
	Speed         float64 `yaml:"speed"`
	TTL           float64 `yaml:"ttl"` // seconds
	Radius        float64 `yaml:"radius"`
	MuzzleForward float64 `yaml:"muzzle_forward"`
	MuzzleHeight  float64 `yaml:"muzzle_height"`
}

// EnemyTuning defines enemy speed range and behavior thresholds.
type EnemyTuning struct {
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	Radius         float64 `yaml:"radius"`
	DetectRange    float64 `yaml:"detect_range"`
	ContactDamage  int     `yaml:"contact_damage"`
	PatrolFactor   float64 `yaml:"patrol_factor"` // fraction of speed used while patrolling
	PatrolMinDelay float64 `yaml:"patrol_min_delay"`
	PatrolMaxDelay float64 `yaml:"patrol_max_delay"`
}

// CoinTuning defines coin size and magnet behavior.
type CoinTuning struct {
	Radius      float64 `yaml:"radius"`
	PullSpeed   float64 `yaml:"pull_speed"`
	MagnetRange float64 `yaml:"magnet_range"`
}

// SpawnTuning defines level-scaled placement.
type SpawnTuning struct {
	DefaultMargin   float64 `yaml:"default_margin"`
	CoinMargin      float64 `yaml:"coin_margin"`
	PerimeterInset  float64 `yaml:"perimeter_inset"`  // distance inside the wall line
	PerimeterBorder float64 `yaml:"perimeter_border"` // keep-out at the ends of each edge
	CoinBase        int     `yaml:"coin_base"`
	CoinPerLevel    int     `yaml:"coin_per_level"`
	CoinCap         int     `yaml:"coin_cap"`
	EnemyBase       int     `yaml:"enemy_base"`
	EnemyPerLevel   int     `yaml:"enemy_per_level"`
	EnemyCap        int     `yaml:"enemy_cap"`
}

// ScoringTuning defines score awards.
type ScoringTuning struct {
	Kill int `yaml:"kill"`
	Coin int `yaml:"coin"`
}

// MaxStepDT is the largest integration step a config may allow, in seconds.
const MaxStepDT = 0.05

// StepTuning bounds the integration step.
type StepTuning struct {
	MaxDT float64 `yaml:"max_dt"` // seconds
}

// Validate checks that the tuning describes a playable arena.
func (c ArenaConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Arena.HalfExtent > 0, "arena.half_extent must be positive, got %v", c.Arena.HalfExtent)
	check(c.Player.Radius > 0, "player.radius must be positive, got %v", c.Player.Radius)
	check(c.Bullet.Radius > 0, "bullet.radius must be positive, got %v", c.Bullet.Radius)
	check(c.Enemy.Radius > 0, "enemy.radius must be positive, got %v", c.Enemy.Radius)
	check(c.Coin.Radius > 0, "coin.radius must be positive, got %v", c.Coin.Radius)
	check(c.Player.MaxHealth > 0, "player.max_health must be positive, got %d", c.Player.MaxHealth)
	check(c.Player.Lives >= 0, "player.lives must not be negative, got %d", c.Player.Lives)
	check(c.Bullet.TTL > 0, "bullet.ttl must be positive, got %v", c.Bullet.TTL)
	check(c.Enemy.MinSpeed <= c.Enemy.MaxSpeed,
		"enemy speed range inverted: %v > %v", c.Enemy.MinSpeed, c.Enemy.MaxSpeed)
	check(c.Enemy.PatrolMinDelay <= c.Enemy.PatrolMaxDelay,
		"enemy patrol delay range inverted: %v > %v", c.Enemy.PatrolMinDelay, c.Enemy.PatrolMaxDelay)
	check(c.Enemy.ContactDamage > 0, "enemy.contact_damage must be positive, got %d", c.Enemy.ContactDamage)
	check(c.Player.Knockback >= 0, "player.knockback must not be negative, got %v", c.Player.Knockback)
	check(c.Step.MaxDT > 0 && c.Step.MaxDT <= MaxStepDT,
		"step.max_dt must be in (0, %v], got %v", MaxStepDT, c.Step.MaxDT)

	// Every level must spawn at least one coin or it can never be cleared.
	check(c.Spawn.CoinBase >= 0, "spawn.coin_base must not be negative, got %d", c.Spawn.CoinBase)
	check(c.Spawn.CoinPerLevel >= 0, "spawn.coin_per_level must not be negative, got %d", c.Spawn.CoinPerLevel)
	check(c.Spawn.CoinBase+c.Spawn.CoinPerLevel >= 1,
		"spawn.coin_base + spawn.coin_per_level must be at least 1, got %d",
		c.Spawn.CoinBase+c.Spawn.CoinPerLevel)
	check(c.Spawn.CoinCap > 0, "spawn.coin_cap must be positive, got %d", c.Spawn.CoinCap)
	check(c.Spawn.EnemyBase >= 0, "spawn.enemy_base must not be negative, got %d", c.Spawn.EnemyBase)
	check(c.Spawn.EnemyPerLevel >= 0, "spawn.enemy_per_level must not be negative, got %d", c.Spawn.EnemyPerLevel)
	check(c.Spawn.EnemyCap >= 0, "spawn.enemy_cap must not be negative, got %d", c.Spawn.EnemyCap)

	margin := max(c.Spawn.CoinMargin, c.Spawn.DefaultMargin, c.Spawn.PerimeterBorder,
		c.Spawn.PerimeterInset, c.Enemy.Radius, c.Player.Radius)
	check(c.Arena.HalfExtent > margin,
		"arena.half_extent %v too small for spawn margins (%v)", c.Arena.HalfExtent, margin)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid arena config: %w", errors.Join(errs...))
	}
	return nil
}
