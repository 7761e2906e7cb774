package parameter

// Spawn channel delays: delay = max(Floor, Base - Step*(level-1))
const (
	HazardDelayBase  = 60
	HazardDelayStep  = 4
	HazardDelayFloor = 20

	EnemyDelayBase  = 240
	EnemyDelayStep  = 15
	EnemyDelayFloor = 90

	PowerUpDelayBase  = 300
	PowerUpDelayStep  = 15
	PowerUpDelayFloor = 150
)
