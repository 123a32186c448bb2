// Package repositories contains the pgx-backed data access layer.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories combines all application repositories
type Repositories struct {
	UserRepository         *UserRepository
	RegistrationRepository *RegistrationRepository
	CourseRepository       *CourseRepository
	SessionRepository      *SessionRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		CourseRepository:       NewCourseRepository(db),
		SessionRepository:      NewSessionRepository(db),
	}
}
