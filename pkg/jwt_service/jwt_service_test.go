package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/entity"
	jwtservice "github.com/limbo/goalkeeper/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	s := jwtservice.New("secret", time.Minute)
	user := &entity.User{ID: uuid.New(), Name: "test_user"}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Name, claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseInvalidTokens(t *testing.T) {
	s := jwtservice.New("secret", time.Minute)
	user := &entity.User{ID: uuid.New(), Name: "test_user"}

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("other secret", func(t *testing.T) {
		token, err := jwtservice.New("another", time.Minute).GenerateToken(user)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    "goalkeeper",
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
		})
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = s.ParseToken(signed)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: "goalkeeper"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = s.ParseToken(signed)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
