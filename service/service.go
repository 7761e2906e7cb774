package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio output, the record store
//
// Lifecycle:
//  1. Construction (configuration passed to the constructor)
//  2. Init() - acquire resources, degrade gracefully where possible
//  3. Start() - launch background work if any
//  4. [runtime operation]
//  5. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error
	Start() error

	// Stop must be idempotent
	Stop() error
}
