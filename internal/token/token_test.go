package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplite_back_end/internal/models"
)

func TestMintAndVerify(t *testing.T) {
	t.Parallel()

	signer := NewSigner("test_secret")
	user := models.User{ID: "u1", Email: "alice@example.com", Role: models.RoleUser}

	raw, err := signer.Mint(user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := NewSigner("secret_a").Mint(models.User{Email: "bob@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = NewSigner("secret_b").Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	signer := NewSigner("test_secret")

	cases := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "not a jwt", raw: "definitely-not-a-token"},
		{name: "truncated", raw: "eyJhbGciOiJIUzI1NiJ9.broken"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := signer.Verify(tc.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	// Same secret, already expired.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "carol@example.com",
		"role": models.RoleUser,
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-1 * time.Hour).Unix(),
	})
	raw, err := expired.SignedString([]byte("test_secret"))
	require.NoError(t, err)

	_, err = NewSigner("test_secret").Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	t.Parallel()

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": models.RoleUser,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := noSub.SignedString([]byte("test_secret"))
	require.NoError(t, err)

	_, err = NewSigner("test_secret").Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
