package services_test

import (
	"fmt"
	"sync"
	"testing"

	"gymhub/internal/models"
	"gymhub/internal/repositories"
	"gymhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Twenty users race for five spots. The transaction boundary must make the
// check-then-insert sequence atomic, so exactly five get in.
func TestMembershipService_ConcurrentAdmissions(t *testing.T) {
	db := repositories.NewMemoryDB()
	userRepo := repositories.NewMockUserRepository(db)
	gymRepo := repositories.NewMockGymRepository(db)
	membershipRepo := repositories.NewMockMembershipRepository(db)
	tx := repositories.NewMemoryTransactor(db)
	service := services.NewMembershipService(tx, membershipRepo, gymRepo, userRepo, nil)

	capacity := 5
	gym := &models.Gym{Name: "Crowded Gym", Type: models.GymCommercial, Capacity: &capacity}
	require.NoError(t, gymRepo.Create(gym))

	userCount := 20
	userIDs := make([]string, 0, userCount)
	for i := 0; i < userCount; i++ {
		user := &models.User{
			Name:  fmt.Sprintf("Racer %d", i),
			Email: fmt.Sprintf("racer%d@example.com", i),
		}
		require.NoError(t, userRepo.Create(user))
		userIDs = append(userIDs, user.ID)
	}

	var wg sync.WaitGroup
	results := make(chan error, userCount)
	for _, userID := range userIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := service.AdmitUserToGym(id, gym.ID)
			results <- err
		}(userID)
	}
	wg.Wait()
	close(results)

	admitted, rejected := 0, 0
	for err := range results {
		if err == nil {
			admitted++
			continue
		}
		assert.Equal(t, models.ErrKindCapacityExceeded, models.KindOf(err))
		rejected++
	}

	assert.Equal(t, capacity, admitted)
	assert.Equal(t, userCount-capacity, rejected)

	count, err := membershipRepo.CountByGymID(gym.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, count)
}
