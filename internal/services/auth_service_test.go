package services_test

import (
	"testing"
	"time"

	"gymhub/internal/identity"
	"gymhub/internal/models"
	"gymhub/internal/repositories"
	"gymhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*services.AuthService, *identity.LocalProvider, *repositories.MockUserRepository) {
	provider := identity.NewLocalProvider("test_secret")
	userRepo := repositories.NewMockUserRepository(repositories.NewMemoryDB())
	return services.NewAuthService(provider, userRepo), provider, userRepo
}

func TestAuthService_SignUp(t *testing.T) {
	service, _, userRepo := newAuthFixture()

	dob := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	user, err := service.SignUp(services.SignUpInput{
		Name:        "Ada",
		Email:       "ada@example.com",
		Password:    "correct-horse",
		DateOfBirth: &dob,
		FitnessGoal: models.GoalHypertrophy,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.GoalHypertrophy, user.FitnessGoal)
	assert.Equal(t, models.RoleMember, user.Role)
	assert.Equal(t, dob, user.DateOfBirth)

	// The local mirror is keyed by the provider-issued subject.
	stored, err := userRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestAuthService_SignUpManager(t *testing.T) {
	service, _, _ := newAuthFixture()

	user, err := service.SignUp(services.SignUpInput{
		Name:      "Grace",
		Email:     "grace@example.com",
		Password:  "correct-horse",
		IsManager: true,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)
	// Unspecified goal defaults to strength.
	assert.Equal(t, models.GoalStrength, user.FitnessGoal)
}

func TestAuthService_SignUpDuplicateEmail(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.SignUp(services.SignUpInput{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = service.SignUp(services.SignUpInput{
		Name: "Ada Again", Email: "ada@example.com", Password: "other-password",
	})
	assert.Equal(t, models.ErrKindDuplicateEntity, models.KindOf(err))
}

func TestAuthService_SignUpMissingFields(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.SignUp(services.SignUpInput{Name: "Ada", Password: "correct-horse"})
	assert.Equal(t, models.ErrKindRequiredField, models.KindOf(err))

	_, err = service.SignUp(services.SignUpInput{Email: "ada@example.com"})
	assert.Equal(t, models.ErrKindRequiredField, models.KindOf(err))
}

func TestAuthService_SignInAndVerifyToken(t *testing.T) {
	service, _, _ := newAuthFixture()

	user, err := service.SignUp(services.SignUpInput{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	tokens, err := service.SignIn("ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEmpty(t, tokens.IDToken)

	claims, err := service.VerifyToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestAuthService_SignInWrongPassword(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.SignUp(services.SignUpInput{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	tokens, err := service.SignIn("ada@example.com", "wrong-horse")
	assert.Nil(t, tokens)
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))

	// An unknown email fails the same way; existence is not revealed.
	_, err = service.SignIn("nobody@example.com", "whatever-pass")
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))
}

func TestAuthService_SignOutRevokesToken(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.SignUp(services.SignUpInput{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	tokens, err := service.SignIn("ada@example.com", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, service.SignOut(tokens.AccessToken))

	claims, err := service.VerifyToken(tokens.AccessToken)
	assert.Nil(t, claims)
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))
}

func TestAuthService_SignOutWithoutToken(t *testing.T) {
	service, _, _ := newAuthFixture()

	err := service.SignOut("")
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))
}

func TestAuthService_VerifyConfirmationCode(t *testing.T) {
	service, provider, _ := newAuthFixture()

	_, err := service.SignUp(services.SignUpInput{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	code, err := provider.ConfirmationCode("ada@example.com")
	require.NoError(t, err)

	assert.Error(t, service.Verify("ada@example.com", "000000"))
	assert.NoError(t, service.Verify("ada@example.com", code))
}
