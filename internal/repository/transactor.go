package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// NewRepositories creates the roster repositories over one database handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Hackathons:           NewHackathonRepository(db),
		IndividualApplicants: NewIndividualApplicantRepository(db),
		TeamApplicants:       NewTeamApplicantRepository(db),
		TemporaryTeams:       NewTemporaryTeamRepository(db),
		RegisteredStudents:   NewRegisteredStudentRepository(db),
	}
}

// Transactor runs units of work inside GORM transactions
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction runs fn with repositories bound to a new transaction. The transaction
// commits when fn returns nil and rolls back otherwise, so a rejected operation leaves no trace.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// WithinSnapshot runs fn in a read-only REPEATABLE READ transaction. Every read made through
// the bound repositories sees the same committed state.
func (t *Transactor) WithinSnapshot(ctx context.Context, fn func(repos *Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}
