package repositories

import (
	"sync"

	"gymhub/internal/models"
)

// MemoryDB is the shared backing store for the in-memory repositories. All
// three entity maps live behind one lock so cross-entity reads (membership
// joins, member counts) see a consistent snapshot.
type MemoryDB struct {
	mu          sync.RWMutex
	users       map[string]models.User
	gyms        map[string]models.Gym
	memberships map[string]models.Membership
}

// NewMemoryDB creates an empty in-memory store.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users:       make(map[string]models.User),
		gyms:        make(map[string]models.Gym),
		memberships: make(map[string]models.Membership),
	}
}

// MemoryTransactor serializes transactional sequences against a MemoryDB.
// It does not provide rollback; it guarantees that no other transaction
// interleaves between the checks and the insert of an admission.
type MemoryTransactor struct {
	db    *MemoryDB
	txMu  sync.Mutex
	repos TxRepos
}

// NewMemoryTransactor creates a transactor over the given store.
func NewMemoryTransactor(db *MemoryDB) *MemoryTransactor {
	return &MemoryTransactor{
		db: db,
		repos: TxRepos{
			Users:       NewMockUserRepository(db),
			Gyms:        NewMockGymRepository(db),
			Memberships: NewMockMembershipRepository(db),
		},
	}
}

// WithinTransaction runs fn while holding the transaction lock.
func (t *MemoryTransactor) WithinTransaction(fn func(repos TxRepos) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()
	return fn(t.repos)
}
