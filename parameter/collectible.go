package parameter

// Power-up durations in ticks
const (
	SpeedBoostDuration = 300
	ShieldDuration     = 600
	SlowTimeDuration   = 300
	MultiShotDuration  = 450
	InvincibleDuration = 300

	// HealthRestore is the health granted by a health power-up, capped at max
	HealthRestore = 1
)

// Power-up Entity
const (
	PowerUpSize = 30

	// PowerUpSpawnMargin keeps spawns off the boundary
	PowerUpSpawnMargin = 50

	// PowerUpLifetimeTicks despawns uncollected power-ups
	PowerUpLifetimeTicks = 600

	// SlowTimeFactor scales hazard speed while slow_time is active
	SlowTimeFactor = 0.5

	// SlowTimeMinSpeed is the floor of a slowed hazard's effective speed
	SlowTimeMinSpeed = 1.0
)
