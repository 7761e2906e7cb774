package parameter

import "time"

// World
const (
	// WorldWidth and WorldHeight are the simulation bounds in pixels
	WorldWidth  = 800
	WorldHeight = 600

	// TicksPerSecond is the nominal simulation rate; every duration below is in ticks
	TicksPerSecond = 60

	// TickInterval is the wall-clock period of one tick
	TickInterval = time.Second / TicksPerSecond

	// SplashTicks is how long the splash screen stays up before the menu
	SplashTicks = 120
)
