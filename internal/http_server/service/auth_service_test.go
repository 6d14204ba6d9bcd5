// Package service
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/service"
)

func newTestAuthService(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(&log.NopLogger{}, &config.HttpServerConfig{
		OperatorUsername:     "operator",
		OperatorPasswordHash: string(hash),
		JWT: &config.JWTConfig{
			Secret:          "test-secret",
			ExpiresDuration: time.Hour,
		},
	})
}

func TestOperatorLogin(t *testing.T) {
	authService := newTestAuthService(t, "correct horse")

	response := authService.OperatorLogin(&service.RequestOperatorLogin{
		Username: "operator",
		Password: "correct horse",
	})
	require.NotNil(t, response.Data)
	assert.Equal(t, "operator", response.Data.Username)
	assert.NotEmpty(t, response.Data.Token)
	assert.Equal(t, service.Ok.Code(), response.HttpCode)
}

func TestOperatorLoginWrongPassword(t *testing.T) {
	authService := newTestAuthService(t, "correct horse")

	response := authService.OperatorLogin(&service.RequestOperatorLogin{
		Username: "operator",
		Password: "battery staple",
	})
	assert.Nil(t, response.Data)
	assert.Equal(t, service.Unauthorized.Code(), response.HttpCode)
}

func TestOperatorLoginUnknownUsername(t *testing.T) {
	authService := newTestAuthService(t, "correct horse")

	response := authService.OperatorLogin(&service.RequestOperatorLogin{
		Username: "intruder",
		Password: "correct horse",
	})
	assert.Nil(t, response.Data)
	assert.Equal(t, service.Unauthorized.Code(), response.HttpCode)
}

func TestOperatorLoginMissingFields(t *testing.T) {
	authService := newTestAuthService(t, "correct horse")

	response := authService.OperatorLogin(&service.RequestOperatorLogin{})
	assert.Nil(t, response.Data)
	assert.Equal(t, service.BadRequest.Code(), response.HttpCode)
}
