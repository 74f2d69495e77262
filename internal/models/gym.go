package models

import "gorm.io/gorm"

// GymType classifies a facility.
type GymType string

const (
	GymCommercial GymType = "commercial"
	GymHome       GymType = "home"
	GymApartment  GymType = "apartment"
)

// Gym represents a fitness facility owned by a manager. A nil Capacity means
// the gym admits an unlimited number of members.
type Gym struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Type       GymType `json:"type" gorm:"type:varchar(20)" validate:"required,oneof=commercial home apartment"`
	Location   *string `json:"location" validate:"omitempty,max=255"`
	Capacity   *int    `json:"capacity" validate:"omitempty,min=1"`
	ManagerID  string  `json:"manager_id" gorm:"type:varchar(36);index" validate:"required"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// HasCapacity reports whether the gym can admit one more member given the
// current membership count. Unlimited capacity always has room.
func (g *Gym) HasCapacity(currentCount int) bool {
	if g.Capacity == nil {
		return true
	}
	return currentCount < *g.Capacity
}

// AvailableSpots returns the number of open spots, never negative. A nil
// result means unlimited.
func (g *Gym) AvailableSpots(currentCount int) *int {
	if g.Capacity == nil {
		return nil
	}
	spots := *g.Capacity - currentCount
	if spots < 0 {
		spots = 0
	}
	return &spots
}

// UpdateGymInput carries a partial gym update. Name and Type are
// leave-unchanged when absent; Location and Capacity distinguish absent
// (leave unchanged) from explicit null (clear the value).
type UpdateGymInput struct {
	Name      *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Type      *GymType         `json:"type" validate:"omitempty,oneof=commercial home apartment"`
	Location  Optional[string] `json:"location"`
	Capacity  Optional[int]    `json:"capacity"`
	ManagerID *string          `json:"manager_id" validate:"omitempty,uuid"`
}

// ApplyUpdate mutates only the fields present in the input. An explicit null
// for Location or Capacity clears the value.
func (g *Gym) ApplyUpdate(in UpdateGymInput) {
	if in.Name != nil {
		g.Name = *in.Name
	}
	if in.Type != nil {
		g.Type = *in.Type
	}
	if in.Location.Present {
		g.Location = in.Location.Value
	}
	if in.Capacity.Present {
		g.Capacity = in.Capacity.Value
	}
}

// GymAvailability pairs a gym with its live membership count and remaining
// spots. A nil AvailableSpots means the gym is unlimited.
type GymAvailability struct {
	Gym            Gym  `json:"gym"`
	AvailableSpots *int `json:"available_spots"`
	CurrentCount   int  `json:"current_count"`
}
