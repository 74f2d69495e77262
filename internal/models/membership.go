package models

import "time"

// Membership is the relationship record linking one user to one gym. The
// (UserID, GymID) pair is unique; the composite index enforces it at the
// storage level regardless of request interleaving. Deletion is hard: a
// soft-deleted row would still occupy the unique index and block the user
// from ever rejoining the gym.
type Membership struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_membership_user_gym"`
	GymID     string    `json:"gym_id" gorm:"type:varchar(36);uniqueIndex:idx_membership_user_gym"`
	JoinDate  time.Time `json:"join_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MembershipWithUser is the gym-side join row: a membership and its user.
type MembershipWithUser struct {
	Membership Membership `json:"membership"`
	User       User       `json:"user"`
}

// MembershipWithGym is the user-side join row: a membership and its gym.
type MembershipWithGym struct {
	Membership Membership `json:"membership"`
	Gym        Gym        `json:"gym"`
}
