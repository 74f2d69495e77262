package services

import (
	"encoding/json"
	"log"
	"time"

	"gymhub/internal/models"
	"gymhub/internal/repositories"
	"gymhub/pkg/rabbitmq"
)

// MembershipService handles admission and removal of users at gyms, the one
// flow with cross-entity invariants: both entities must exist, the pair must
// not already be linked, and the gym must have room.
type MembershipService struct {
	tx             repositories.Transactor
	membershipRepo repositories.MembershipRepository
	gymRepo        repositories.GymRepository
	userRepo       repositories.UserRepository
	mqClient       *rabbitmq.Client
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(
	tx repositories.Transactor,
	membershipRepo repositories.MembershipRepository,
	gymRepo repositories.GymRepository,
	userRepo repositories.UserRepository,
	mqClient *rabbitmq.Client,
) *MembershipService {
	return &MembershipService{
		tx:             tx,
		membershipRepo: membershipRepo,
		gymRepo:        gymRepo,
		userRepo:       userRepo,
		mqClient:       mqClient,
	}
}

// AdmitUserToGym creates a membership after four ordered checks: user exists,
// gym exists, no membership for the pair, gym has room. The first failing
// check wins, so a duplicate membership is always reported before a full gym.
// The whole sequence runs in one transaction; without it two concurrent
// admissions could both pass the capacity count before either insert commits.
func (s *MembershipService) AdmitUserToGym(userID, gymID string) (*models.Membership, error) {
	var membership *models.Membership

	err := s.tx.WithinTransaction(func(repos repositories.TxRepos) error {
		if _, err := repos.Users.GetByID(userID); err != nil {
			return err
		}

		gym, err := repos.Gyms.GetByID(gymID)
		if err != nil {
			return err
		}

		existing, err := repos.Memberships.GetByUserAndGym(userID, gymID)
		if err != nil {
			return err
		}
		if existing != nil {
			return models.NewMembershipAlreadyExists(userID, gymID)
		}

		currentCount, err := repos.Memberships.CountByGymID(gymID)
		if err != nil {
			return err
		}
		if !gym.HasCapacity(currentCount) {
			return models.NewGymCapacityExceeded(gym.Name, *gym.Capacity)
		}

		membership = &models.Membership{
			UserID:   userID,
			GymID:    gymID,
			JoinDate: time.Now(),
		}
		return repos.Memberships.Create(membership)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent("membership.created", membership)
	return membership, nil
}

// RemoveUserFromGym deletes the membership linking the pair. Deletion goes by
// the membership's own identifier rather than the pair.
func (s *MembershipService) RemoveUserFromGym(userID, gymID string) error {
	membership, err := s.membershipRepo.GetByUserAndGym(userID, gymID)
	if err != nil {
		return err
	}
	if membership == nil {
		return models.NewEntityNotFound("Membership", userID+"-"+gymID)
	}

	if err := s.membershipRepo.Delete(membership.ID); err != nil {
		return err
	}

	s.publishEvent("membership.removed", membership)
	return nil
}

// ListGymUsers returns the users of a gym, most recent join first.
func (s *MembershipService) ListGymUsers(gymID string) ([]models.User, error) {
	if _, err := s.gymRepo.GetByID(gymID); err != nil {
		return nil, err
	}

	rows, err := s.membershipRepo.GetByGymID(gymID)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.User)
	}
	return users, nil
}

// ListUserGyms returns the gyms a user belongs to.
func (s *MembershipService) ListUserGyms(userID string) ([]models.Gym, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}

	rows, err := s.membershipRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	gyms := make([]models.Gym, 0, len(rows))
	for _, row := range rows {
		gyms = append(gyms, row.Gym)
	}
	return gyms, nil
}

// publishEvent emits a membership lifecycle event. Publishing is best-effort;
// a broker failure never fails the admission that already committed.
func (s *MembershipService) publishEvent(routingKey string, membership *models.Membership) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"membershipID": membership.ID,
		"userID":       membership.UserID,
		"gymID":        membership.GymID,
		"joinDate":     membership.JoinDate,
	})
	if err != nil {
		log.Printf("Failed to marshal membership event: %v", err)
		return
	}

	if err := s.mqClient.Publish("membership", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for membership %s: %v", routingKey, membership.ID, err)
	}
}
