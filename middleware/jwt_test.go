package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialmentor/config"
	"socialmentor/models"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	tokenString, err := GenerateJWT(42, "volunteer1", models.RoleVolunteer)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["userId"])
	assert.Equal(t, "volunteer1", claims["username"])
	assert.Equal(t, "volunteer", claims["role"])
	assert.Greater(t, claims["exp"].(float64), claims["iat"].(float64))
}

func TestJWTRejectsWrongKey(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	tokenString, err := GenerateJWT(42, "volunteer1", models.RoleVolunteer)
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}
