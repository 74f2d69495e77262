package services

import (
	"log"
	"time"

	"gymhub/internal/identity"
	"gymhub/internal/models"
	"gymhub/internal/repositories"
)

// AuthService bridges the identity provider and the local user store: the
// provider owns credentials and tokens, the local store mirrors a User row
// keyed by the provider-issued subject identifier.
type AuthService struct {
	provider identity.Provider
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(provider identity.Provider, userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		provider: provider,
		userRepo: userRepo,
	}
}

// SignUpInput carries the fields for a new registration.
type SignUpInput struct {
	Name        string             `json:"name" validate:"required,min=2,max=100"`
	Email       string             `json:"email" validate:"required,email"`
	Password    string             `json:"password" validate:"required,min=8"`
	DateOfBirth *time.Time         `json:"date_of_birth"`
	FitnessGoal models.FitnessGoal `json:"fitness_goal" validate:"omitempty,oneof=strength hypertrophy endurance"`
	IsManager   bool               `json:"is_manager"`
}

// SignUp registers an identity with the provider and mirrors a local user
// keyed by the provider subject. If the local write fails after the provider
// signup succeeded, the two stores diverge; there is no compensating delete.
func (s *AuthService) SignUp(in SignUpInput) (*models.User, error) {
	if in.Email == "" {
		return nil, models.NewRequiredField("email", "signup")
	}
	if in.Name == "" || in.Password == "" {
		return nil, models.NewRequiredField("name and password", "signup")
	}

	// Fail fast on a local duplicate before touching the provider.
	existing, err := s.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateEntity("User", "email", in.Email)
	}

	subject, err := s.provider.SignUp(in.Name, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          subject,
		Name:        in.Name,
		Email:       in.Email,
		DateOfBirth: time.Now(),
		FitnessGoal: models.GoalStrength,
		Role:        models.RoleMember,
	}
	if in.DateOfBirth != nil {
		user.DateOfBirth = *in.DateOfBirth
	}
	if in.FitnessGoal != "" {
		user.FitnessGoal = in.FitnessGoal
	}
	if in.IsManager {
		user.Role = models.RoleManager
	}

	if err := s.userRepo.Create(user); err != nil {
		// The identity now exists without a local mirror.
		log.Printf("Warning: identity %s created but local user write failed: %v", subject, err)
		return nil, err
	}
	return user, nil
}

// SignIn delegates credential verification to the provider and returns the
// resulting tokens verbatim.
func (s *AuthService) SignIn(email, password string) (*identity.Tokens, error) {
	if email == "" || password == "" {
		return nil, models.NewRequiredField("email and password", "signin")
	}
	return s.provider.SignIn(email, password)
}

// SignOut invalidates the current access token with the provider.
func (s *AuthService) SignOut(accessToken string) error {
	if accessToken == "" {
		return models.NewUnauthorized("cannot sign out without signing in")
	}
	return s.provider.SignOut(accessToken)
}

// Verify confirms a provider-issued confirmation code for an email.
func (s *AuthService) Verify(email, code string) error {
	if email == "" || code == "" {
		return models.NewRequiredField("email and code", "verification")
	}
	return s.provider.ConfirmSignUp(email, code)
}

// VerifyToken validates an access token and returns its claims.
func (s *AuthService) VerifyToken(accessToken string) (*identity.Claims, error) {
	return s.provider.VerifyToken(accessToken)
}
