// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
package repository

import (
	"github.com/deppfellow/personnel-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Personnel *PersonnelRepository
}

// NewRepositories constructs the repository container on top of the shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Personnel: NewPersonnelRepository(s.DB.Pool),
	}
}
