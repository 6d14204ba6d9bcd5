// Package service
package service

import (
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	. "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/service"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	logger log.LoggerInterface
	config *config.HttpServerConfig
}

func NewAuthService(logger log.LoggerInterface, config *config.HttpServerConfig) *AuthService {
	return &AuthService{
		logger: logger,
		config: config,
	}
}

func (authService *AuthService) OperatorLogin(req *RequestOperatorLogin) *ApiResponse[ResponseOperatorLogin] {
	if req.Username == "" || req.Password == "" {
		return NewApiResponse[ResponseOperatorLogin](&ErrLackParam, Unsatisfied, nil)
	}

	if req.Username != authService.config.OperatorUsername {
		return NewApiResponse[ResponseOperatorLogin](&ErrLoginFail, Unsatisfied, nil)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(authService.config.OperatorPasswordHash),
		[]byte(req.Password),
	); err != nil {
		authService.logger.WarnF("Failed operator login attempt for %s", req.Username)
		return NewApiResponse[ResponseOperatorLogin](&ErrLoginFail, Unsatisfied, nil)
	}

	claims := NewClaims(authService.config.JWT, req.Username)

	return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponseOperatorLogin{
		Username: req.Username,
		Token:    claims.GenerateKey(),
	})
}
