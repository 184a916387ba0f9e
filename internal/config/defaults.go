package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the default arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Arena: ArenaBounds{
			HalfExtent: 60.0,
			WallHeight: 6.0,
			WallMargin: 0.5,
		},
		Player: PlayerTuning{
			Speed:       25.0,
			Radius:      1.0,
			EyeHeight:   1.4,
			SpawnHeight: 1.2,
			MaxHealth:   100,
			Lives:       3,
			YawStep:     5.0,
			Knockback:   0.6,
		},
		Bullet: BulletTuning{
			Speed:         65.0,
			TTL:           2.5,
			Radius:        0.25,
			MuzzleForward: 1.3,
			MuzzleHeight:  0.5,
		},
		Enemy: EnemyTuning{
			MinSpeed:       8.0,
			MaxSpeed:       12.0,
			Radius:         1.4,
			DetectRange:    22.0,
			ContactDamage:  15,
			PatrolFactor:   0.6,
			PatrolMinDelay: 1.0,
			PatrolMaxDelay: 2.5,
		},
		Coin: CoinTuning{
			Radius:      1.0,
			PullSpeed:   10.0,
			MagnetRange: 12.0,
		},
		Spawn: SpawnTuning{
			DefaultMargin:   5.0,
			CoinMargin:      6.0,
			PerimeterInset:  1.0,
			PerimeterBorder: 2.0,
			CoinBase:        10,
			CoinPerLevel:    2,
			CoinCap:         50,
			EnemyBase:       3,
			EnemyPerLevel:   2,
			EnemyCap:        40,
		},
		Scoring: ScoringTuning{
			Kill: 20,
			Coin: 10,
		},
		Step: StepTuning{
			MaxDT: 0.05,
		},
	}
}

// DefaultYAML returns the embedded default arena YAML.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
