package audio

import (
	"log"
	"sync/atomic"
)

// Service wraps SoundManager for the service hub
// Speaker failure disables audio instead of failing startup
type Service struct {
	manager  *SoundManager
	disabled atomic.Bool
	muted    bool
}

// NewService creates the audio service; muted skips opening the speaker entirely
func NewService(muted bool) *Service {
	return &Service{
		manager: NewSoundManager(),
		muted:   muted,
	}
}

// ServiceName registers the service with the hub
const ServiceName = "audio"

func (s *Service) Name() string {
	return ServiceName
}

func (s *Service) Dependencies() []string {
	return nil
}

func (s *Service) Init() error {
	if s.muted {
		s.disabled.Store(true)
		log.Printf("Audio disabled by flag")
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.disabled.Store(true)
		log.Printf("Audio initialization failed: %v", err)
	}
	return nil
}

func (s *Service) Start() error {
	return nil
}

func (s *Service) Stop() error {
	s.manager.Cleanup()
	return nil
}

func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the manager; it drops cues silently when disabled
func (s *Service) Player() *SoundManager {
	return s.manager
}
