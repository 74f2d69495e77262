package identity

import (
	"testing"
	"time"

	"gymhub/internal/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProvider_SignUpAssignsSubjects(t *testing.T) {
	provider := NewLocalProvider("test_secret")

	subjectA, err := provider.SignUp("Ada", "ada@example.com", "correct-horse")
	require.NoError(t, err)
	subjectB, err := provider.SignUp("Grace", "grace@example.com", "correct-horse")
	require.NoError(t, err)

	assert.NotEmpty(t, subjectA)
	assert.NotEqual(t, subjectA, subjectB)

	_, err = provider.SignUp("Ada Again", "ada@example.com", "other-password")
	assert.Equal(t, models.ErrKindDuplicateEntity, models.KindOf(err))
}

func TestLocalProvider_SignInIssuesTokenSet(t *testing.T) {
	provider := NewLocalProvider("test_secret")
	subject, err := provider.SignUp("Ada", "ada@example.com", "correct-horse")
	require.NoError(t, err)

	tokens, err := provider.SignIn("ada@example.com", "correct-horse")
	require.NoError(t, err)

	claims, err := provider.VerifyToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
}

func TestLocalProvider_VerifyRejectsNonAccessTokens(t *testing.T) {
	provider := NewLocalProvider("test_secret")
	_, err := provider.SignUp("Ada", "ada@example.com", "correct-horse")
	require.NoError(t, err)

	tokens, err := provider.SignIn("ada@example.com", "correct-horse")
	require.NoError(t, err)

	// Refresh and identity tokens carry a different token_use claim and must
	// not authenticate requests.
	_, err = provider.VerifyToken(tokens.RefreshToken)
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))
	_, err = provider.VerifyToken(tokens.IDToken)
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))
}

func TestLocalProvider_VerifyRejectsForeignSignature(t *testing.T) {
	provider := NewLocalProvider("test_secret")

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       "intruder",
		"token_use": "access",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("other_secret"))
	require.NoError(t, err)

	_, err = provider.VerifyToken(signed)
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))
}

func TestLocalProvider_VerifyExpiredToken(t *testing.T) {
	provider := NewLocalProvider("test_secret")
	provider.tokenDurat = -time.Minute

	_, err := provider.SignUp("Ada", "ada@example.com", "correct-horse")
	require.NoError(t, err)
	tokens, err := provider.SignIn("ada@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = provider.VerifyToken(tokens.AccessToken)
	assert.Equal(t, models.ErrKindTokenExpired, models.KindOf(err))
}

func TestLocalProvider_SignOutRevokes(t *testing.T) {
	provider := NewLocalProvider("test_secret")
	_, err := provider.SignUp("Ada", "ada@example.com", "correct-horse")
	require.NoError(t, err)
	tokens, err := provider.SignIn("ada@example.com", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, provider.SignOut(tokens.AccessToken))

	_, err = provider.VerifyToken(tokens.AccessToken)
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))

	// A revoked token cannot be used to sign out again.
	err = provider.SignOut(tokens.AccessToken)
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))
}

func TestLocalProvider_ConfirmSignUp(t *testing.T) {
	provider := NewLocalProvider("test_secret")
	_, err := provider.SignUp("Ada", "ada@example.com", "correct-horse")
	require.NoError(t, err)

	code, err := provider.ConfirmationCode("ada@example.com")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	err = provider.ConfirmSignUp("ada@example.com", "wrong!")
	assert.Equal(t, models.ErrKindUnauthorized, models.KindOf(err))

	assert.NoError(t, provider.ConfirmSignUp("ada@example.com", code))

	err = provider.ConfirmSignUp("nobody@example.com", code)
	assert.Equal(t, models.ErrKindEntityNotFound, models.KindOf(err))
}
