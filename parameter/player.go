package parameter

// Player Body
const (
	PlayerWidth  = 40
	PlayerHeight = 40

	// PlayerSpawnBottomOffset places the player this far above the bottom edge on reset
	PlayerSpawnBottomOffset = 100

	// PlayerBaseSpeed is pixels per tick along one axis
	PlayerBaseSpeed = 6.0

	PlayerMaxHealth = 3
)

// Movement Multipliers
const (
	SpeedBoostMultiplier = 1.5
	DashMultiplier       = 2.5
)

// Dash ability
const (
	DashDurationTicks = 10
	DashCooldownTicks = 60
)

// Special attack ability
const (
	SpecialDurationTicks = 30
	SpecialCooldownTicks = 300

	// SpecialRadius is measured from the player center to the enemy center
	SpecialRadius = 120.0

	// SpecialDamagePerTick is applied to every enemy in range on every active tick
	SpecialDamagePerTick = 1
)
