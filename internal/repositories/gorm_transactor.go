package repositories

import (
	"gorm.io/gorm"
)

// GORMTransactor runs store operations inside a single database transaction.
type GORMTransactor struct {
	db *gorm.DB
}

// NewGORMTransactor creates a new instance of GORMTransactor.
func NewGORMTransactor(db *gorm.DB) *GORMTransactor {
	return &GORMTransactor{
		db: db,
	}
}

// WithinTransaction begins a transaction, hands the caller repositories bound
// to it, and commits on nil error or rolls back otherwise.
func (t *GORMTransactor) WithinTransaction(fn func(repos TxRepos) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(TxRepos{
			Users:       NewGORMUserRepository(tx),
			Gyms:        NewGORMGymRepository(tx),
			Memberships: NewGORMMembershipRepository(tx),
		})
	})
}
