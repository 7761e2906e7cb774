package store

import (
	"log"
	"sync"
)

// Service wraps the sqlite gateway for the service hub
// A database that cannot be opened degrades to an in-memory gateway
type Service struct {
	path string

	mu       sync.RWMutex
	sqlite   *SQLite
	fallback *Memory
}

// NewService creates a store service for the database at path
func NewService(path string) *Service {
	return &Service{path: path}
}

// Name implements service.Service
// ServiceName registers the service with the hub
const ServiceName = "store"

func (s *Service) Name() string {
	return ServiceName
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// Open failure is logged and replaced by an in-memory gateway (no error returned)
func (s *Service) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		s.fallback = NewMemory()
		return nil
	}

	db, err := OpenSQLite(s.path)
	if err != nil {
		log.Printf("store: %v (records will not persist)", err)
		s.fallback = NewMemory()
		return nil
	}
	s.sqlite = db
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sqlite != nil {
		return s.sqlite.Close()
	}
	return nil
}

// Gateway returns the active gateway; nil before Init
func (s *Service) Gateway() Gateway {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sqlite != nil {
		return s.sqlite
	}
	if s.fallback != nil {
		return s.fallback
	}
	return nil
}

// Persistent reports whether records survive the process
func (s *Service) Persistent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sqlite != nil
}
