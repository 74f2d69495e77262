package repositories

// TxRepos bundles repository handles bound to a single transaction.
type TxRepos struct {
	Users       UserRepository
	Gyms        GymRepository
	Memberships MembershipRepository
}

// Transactor runs a function against a transactional view of the stores.
// The admission sequence (existence checks, duplicate check, capacity count,
// insert) must execute inside one transaction so a concurrent admission
// cannot slip between the count and the insert.
type Transactor interface {
	WithinTransaction(fn func(repos TxRepos) error) error
}
