package identity

import (
	"fmt"
	"sync"
	"time"

	"gymhub/internal/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// account is one identity record held by the local provider.
type account struct {
	subject          string
	name             string
	email            string
	passwordHash     string
	confirmed        bool
	confirmationCode string
}

// LocalProvider is a self-contained identity provider: bcrypt-hashed
// credentials, HS256 access/refresh tokens, and an in-memory revocation set
// for sign-out. It stands in for a hosted provider behind the same contract.
type LocalProvider struct {
	mu         sync.RWMutex
	accounts   map[string]*account // keyed by email
	revoked    map[string]struct{}
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which the access token is valid
}

// NewLocalProvider creates a new LocalProvider.
func NewLocalProvider(jwtSecret string) *LocalProvider {
	return &LocalProvider{
		accounts:   make(map[string]*account),
		revoked:    make(map[string]struct{}),
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// SignUp registers a new identity, hashes the password, and returns the
// subject identifier assigned to it.
func (p *LocalProvider) SignUp(name, email, password string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[email]; exists {
		return "", models.NewDuplicateEntity("User", "email", email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	acc := &account{
		subject:          uuid.New().String(),
		name:             name,
		email:            email,
		passwordHash:     string(hashedPassword),
		confirmationCode: uuid.New().String()[:6],
	}
	p.accounts[email] = acc
	return acc.subject, nil
}

// ConfirmSignUp validates the confirmation code issued at signup.
func (p *LocalProvider) ConfirmSignUp(email, code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	acc, ok := p.accounts[email]
	if !ok {
		return models.NewEntityNotFound("User", email)
	}
	if acc.confirmationCode != code {
		return models.NewUnauthorized("invalid confirmation code")
	}
	acc.confirmed = true
	return nil
}

// SignIn verifies credentials and issues access, refresh and identity tokens.
func (p *LocalProvider) SignIn(email, password string) (*Tokens, error) {
	p.mu.RLock()
	acc, ok := p.accounts[email]
	p.mu.RUnlock()

	// Do not reveal whether the email exists.
	if !ok {
		return nil, models.NewUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)); err != nil {
		return nil, models.NewUnauthorized("invalid credentials")
	}

	accessToken, err := p.issueToken(acc, "access", p.tokenDurat)
	if err != nil {
		return nil, err
	}
	refreshToken, err := p.issueToken(acc, "refresh", 30*24*time.Hour)
	if err != nil {
		return nil, err
	}
	idToken, err := p.issueToken(acc, "id", p.tokenDurat)
	if err != nil {
		return nil, err
	}

	return &Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		IDToken:      idToken,
	}, nil
}

// SignOut invalidates the given access token.
func (p *LocalProvider) SignOut(accessToken string) error {
	if accessToken == "" {
		return models.NewUnauthorized("cannot sign out without signing in")
	}
	if _, err := p.VerifyToken(accessToken); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.revoked[accessToken] = struct{}{}
	return nil
}

// VerifyToken parses and validates an access token, returning its claims.
func (p *LocalProvider) VerifyToken(accessToken string) (*Claims, error) {
	p.mu.RLock()
	_, revoked := p.revoked[accessToken]
	p.mu.RUnlock()
	if revoked {
		return nil, models.NewUnauthorized("token has been revoked")
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.jwtSecret, nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, models.NewTokenExpired()
		}
		return nil, models.NewUnauthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, models.NewUnauthorized("invalid token")
	}
	if use, _ := claims["token_use"].(string); use != "access" {
		return nil, models.NewUnauthorized("not an access token")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if sub == "" {
		return nil, models.NewUnauthorized("invalid token payload: missing subject")
	}
	return &Claims{Subject: sub, Email: email, Name: name}, nil
}

// ConfirmationCode exposes the pending code for an email. Test hook; a hosted
// provider would deliver this out of band.
func (p *LocalProvider) ConfirmationCode(email string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	acc, ok := p.accounts[email]
	if !ok {
		return "", models.NewEntityNotFound("User", email)
	}
	return acc.confirmationCode, nil
}

func (p *LocalProvider) issueToken(acc *account, use string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       acc.subject,
		"email":     acc.email,
		"name":      acc.name,
		"token_use": use,
		"exp":       time.Now().Add(ttl).Unix(),
		"iat":       time.Now().Unix(),
	})
	signed, err := token.SignedString(p.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s token: %w", use, err)
	}
	return signed, nil
}
