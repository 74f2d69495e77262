package services_test

import (
	"testing"

	"gymhub/internal/models"
	"gymhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGymService_CreateGym(t *testing.T) {
	mockGyms := new(MockGymRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewGymService(mockGyms, mockUsers)

	manager := &models.User{ID: "mgr-1", Name: "Grace", Role: models.RoleManager}
	gym := &models.Gym{Name: "Iron Temple", Type: models.GymCommercial, ManagerID: "mgr-1"}

	mockUsers.On("GetByID", "mgr-1").Return(manager, nil).Once()
	mockGyms.On("Create", gym).Return(nil).Once()

	err := service.CreateGym(gym)

	assert.NoError(t, err)
	mockGyms.AssertExpectations(t)
}

func TestGymService_CreateGymUnknownManager(t *testing.T) {
	mockGyms := new(MockGymRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewGymService(mockGyms, mockUsers)

	mockUsers.On("GetByID", "ghost").Return(nil, models.NewEntityNotFound("User", "ghost")).Once()

	err := service.CreateGym(&models.Gym{Name: "Iron Temple", ManagerID: "ghost"})

	assert.Equal(t, models.ErrKindEntityNotFound, models.KindOf(err))
	mockGyms.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGymService_UpdateGymPartial(t *testing.T) {
	mockGyms := new(MockGymRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewGymService(mockGyms, mockUsers)

	stored := &models.Gym{
		ID:        "gym-1",
		Name:      "Iron Temple",
		Type:      models.GymCommercial,
		Location:  strPtr("Downtown"),
		Capacity:  intPtr(50),
		ManagerID: "mgr-1",
	}
	mockGyms.On("GetByID", "gym-1").Return(stored, nil).Once()
	mockGyms.On("Update", stored).Return(nil).Once()

	updated, err := service.UpdateGym("gym-1", models.UpdateGymInput{
		Name:     strPtr("Iron Temple II"),
		Capacity: models.Some(75),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Iron Temple II", updated.Name)
	assert.Equal(t, 75, *updated.Capacity)
	// Absent fields stay put.
	assert.Equal(t, "Downtown", *updated.Location)
	assert.Equal(t, "mgr-1", updated.ManagerID)
}

func TestGymService_UpdateGymClearsCapacity(t *testing.T) {
	mockGyms := new(MockGymRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewGymService(mockGyms, mockUsers)

	stored := &models.Gym{ID: "gym-1", Name: "Iron Temple", Capacity: intPtr(50)}
	mockGyms.On("GetByID", "gym-1").Return(stored, nil).Once()
	mockGyms.On("Update", stored).Return(nil).Once()

	// Explicit null makes the gym unlimited.
	updated, err := service.UpdateGym("gym-1", models.UpdateGymInput{
		Capacity: models.Null[int](),
	})

	assert.NoError(t, err)
	assert.Nil(t, updated.Capacity)
}

func TestGymService_UpdateGymReassignsManager(t *testing.T) {
	mockGyms := new(MockGymRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewGymService(mockGyms, mockUsers)

	stored := &models.Gym{ID: "gym-1", Name: "Iron Temple", ManagerID: "mgr-1"}
	newManager := &models.User{ID: "mgr-2", Name: "Alan", Role: models.RoleManager}

	mockGyms.On("GetByID", "gym-1").Return(stored, nil).Once()
	mockUsers.On("GetByID", "mgr-2").Return(newManager, nil).Once()
	mockGyms.On("Update", stored).Return(nil).Once()

	updated, err := service.UpdateGym("gym-1", models.UpdateGymInput{ManagerID: strPtr("mgr-2")})

	assert.NoError(t, err)
	assert.Equal(t, "mgr-2", updated.ManagerID)
}

func TestGymService_UpdateGymUnknownManager(t *testing.T) {
	mockGyms := new(MockGymRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewGymService(mockGyms, mockUsers)

	stored := &models.Gym{ID: "gym-1", Name: "Iron Temple", ManagerID: "mgr-1"}
	mockGyms.On("GetByID", "gym-1").Return(stored, nil).Once()
	mockUsers.On("GetByID", "ghost").Return(nil, models.NewEntityNotFound("User", "ghost")).Once()

	updated, err := service.UpdateGym("gym-1", models.UpdateGymInput{ManagerID: strPtr("ghost")})

	assert.Nil(t, updated)
	assert.Equal(t, models.ErrKindEntityNotFound, models.KindOf(err))
	mockGyms.AssertNotCalled(t, "Update", mock.Anything)
}

func TestGymService_GetGymsByManagerID(t *testing.T) {
	mockGyms := new(MockGymRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewGymService(mockGyms, mockUsers)

	gyms := []models.Gym{{ID: "gym-1", Name: "Iron Temple", ManagerID: "mgr-1"}}
	mockGyms.On("GetByManagerID", "mgr-1").Return(gyms, nil).Once()

	result, err := service.GetGymsByManagerID("mgr-1")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestGymService_GetGymsByManagerIDRequiresID(t *testing.T) {
	mockGyms := new(MockGymRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewGymService(mockGyms, mockUsers)

	result, err := service.GetGymsByManagerID("")

	assert.Nil(t, result)
	assert.Equal(t, models.ErrKindRequiredField, models.KindOf(err))
	mockGyms.AssertNotCalled(t, "GetByManagerID", mock.Anything)
}

func TestGymService_ListWithAvailableSpots(t *testing.T) {
	mockGyms := new(MockGymRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewGymService(mockGyms, mockUsers)

	availability := []models.GymAvailability{
		{Gym: models.Gym{ID: "gym-1", Name: "Iron Temple"}, AvailableSpots: intPtr(8), CurrentCount: 2},
		{Gym: models.Gym{ID: "gym-2", Name: "Open Door Gym"}, AvailableSpots: nil, CurrentCount: 40},
	}
	mockGyms.On("ListWithAvailableSpots").Return(availability, nil).Once()

	result, err := service.ListWithAvailableSpots()

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 8, *result[0].AvailableSpots)
	assert.Nil(t, result[1].AvailableSpots)
}
