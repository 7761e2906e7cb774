package parameter

// Particles
const (
	// ParticleFriction multiplies velocity every tick
	ParticleFriction = 0.98

	// ParticleGravity is added to vertical velocity of spark particles every tick
	ParticleGravity = 0.15

	ParticleSpeedMax    = 5.0
	ParticleLifetimeMin = 20
	ParticleLifetimeMax = 40

	// ParticleCap drops new bursts once the population is this large
	ParticleCap = 600
)

// Burst sizes
const (
	BurstShieldAbsorb = 8
	BurstNullify      = 4
	BurstDamage       = 12
	BurstPowerUp      = 10
	BurstLevelUp      = 30
	BurstEnemyDown    = 14
	BurstDash         = 6
)
