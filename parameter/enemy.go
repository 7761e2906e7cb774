package parameter

// Enemy Entity
const (
	// EnemyMinLevel gates enemy spawning entirely
	EnemyMinLevel = 3

	// EnemySpawnOffset is how far outside the world an enemy appears
	EnemySpawnOffset = 40.0

	// EnemyBoundsMargin is the distance past the world edge at which an enemy is culled
	EnemyBoundsMargin = 100.0

	// EnemyForceStrongestChance applies at FinalStage and above
	EnemyForceStrongestChance = 0.3
)

// Enemy tiers: speed in pixels/tick, attack cadence in ticks
const (
	GeninSpeed   = 1.5
	GeninHealth  = 1
	GeninCadence = 90
	GeninSize    = 30

	ChuninSpeed   = 2.2
	ChuninHealth  = 2
	ChuninCadence = 60
	ChuninSize    = 34

	JoninSpeed   = 3.0
	JoninHealth  = 4
	JoninCadence = 45
	JoninSize    = 40
)
