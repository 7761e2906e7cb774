package parameter

// Hazard Entity
const (
	HazardSize = 20

	// HazardSpeedMin and HazardSpeedMax bound the rolled base speed (pixels/tick)
	HazardSpeedMin = 3
	HazardSpeedMax = 8

	// HazardSpinPerTick is the cosmetic rotation in degrees per tick
	HazardSpinPerTick = 10.0
)
