package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit       SoundType = iota // Unshielded damage
	SoundShield                     // Shield absorb
	SoundNullify                    // Invincibility nullify
	SoundPowerUp                    // Power-up collected
	SoundLevelUp                    // Level threshold crossed
	SoundDash                       // Dash triggered
	SoundSpecial                    // Special attack triggered
	SoundEnemyDown                  // Enemy destroyed
	SoundGameOver                   // Run ended
	SoundMenu                       // Menu navigation
	SoundTypeCount
)
