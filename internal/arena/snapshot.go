package arena

// Snapshot captures the observable session state for the HUD and for
// determinism checks.
type Snapshot struct {
	Tick    uint64
	Level   int
	Score   int
	Health  int
	Lives   int
	Cheat   bool
	Paused  bool
	Magnet  bool
	PlayerX float64
	PlayerZ float64
	Yaw     float64
	Bullets int // live bullets
	Enemies int // live enemies
	Coins   int // coins left
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.tick,
		Level:   s.level,
		Score:   s.score,
		Health:  s.player.Health,
		Lives:   s.player.Lives,
		Cheat:   s.player.Cheat,
		Paused:  s.paused,
		Magnet:  s.magnet,
		PlayerX: s.player.Pos.X(),
		PlayerZ: s.player.Pos.Z(),
		Yaw:     s.player.Yaw,
	}
	for _, b := range s.bullets {
		if b.Alive {
			snap.Bullets++
		}
	}
	for _, e := range s.enemies {
		if e.Alive {
			snap.Enemies++
		}
	}
	for _, c := range s.coins {
		if !c.Taken {
			snap.Coins++
		}
	}
	return snap
}
