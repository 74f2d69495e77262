package models

import (
	"time"

	"gorm.io/gorm"
)

// FitnessGoal is the training goal a user declared at signup.
type FitnessGoal string

const (
	GoalStrength    FitnessGoal = "strength"
	GoalHypertrophy FitnessGoal = "hypertrophy"
	GoalEndurance   FitnessGoal = "endurance"
)

// UserRole distinguishes regular members from facility managers.
type UserRole string

const (
	RoleMember  UserRole = "member"
	RoleManager UserRole = "manager"
)

// User represents a platform member or facility manager.
type User struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string      `json:"name" validate:"required,min=2,max=100"`
	Email       string      `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	DateOfBirth time.Time   `json:"date_of_birth"`
	FitnessGoal FitnessGoal `json:"fitness_goal" gorm:"type:varchar(20)" validate:"required,oneof=strength hypertrophy endurance"`
	Role        UserRole    `json:"role" gorm:"type:varchar(20)" validate:"omitempty,oneof=member manager"`
	gorm.Model              // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// UpdateUserInput carries a partial profile update. Nil fields are left
// untouched. Email and role are immutable after creation.
type UpdateUserInput struct {
	Name        *string      `json:"name" validate:"omitempty,min=2,max=100"`
	DateOfBirth *time.Time   `json:"date_of_birth"`
	FitnessGoal *FitnessGoal `json:"fitness_goal" validate:"omitempty,oneof=strength hypertrophy endurance"`
}

// ApplyUpdate mutates only the fields present in the input.
func (u *User) ApplyUpdate(in UpdateUserInput) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.DateOfBirth != nil {
		u.DateOfBirth = *in.DateOfBirth
	}
	if in.FitnessGoal != nil {
		u.FitnessGoal = *in.FitnessGoal
	}
}
