// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"time"
)

type HttpServerConfig struct {
	Enabled              bool          `json:"enabled"`
	Host                 string        `json:"host"`
	Port                 uint          `json:"port"`
	Address              string        `json:"-"`
	ProxyType            int           `json:"proxy_type"`
	BodyLimit            string        `json:"body_limit"`
	RateLimit            int           `json:"rate_limit"`
	RateLimitWindow      string        `json:"rate_limit_window"`
	RateLimitDuration    time.Duration `json:"-"`
	OperatorUsername     string        `json:"operator_username"`
	OperatorPasswordHash string        `json:"operator_password_hash"` // bcrypt哈希, 使用 -hash 工具生成
	JWT                  *JWTConfig    `json:"jwt"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Enabled:          false,
		Host:             "0.0.0.0",
		Port:             6810,
		ProxyType:        0,
		BodyLimit:        "1MB",
		RateLimit:        15,
		RateLimitWindow:  "1m",
		OperatorUsername: "operator",
		JWT:              defaultJWTConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.Enabled {
		if result := checkPort(config.Port); result.IsFail() {
			return result
		}

		config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

		if config.BodyLimit == "" {
			logger.WarnF("body_limit is empty, where the length of the request body is not restricted. This is a very dangerous behavior")
		}

		if config.RateLimit <= 0 {
			logger.WarnF("Invalid rate limit value %d, using default 15", config.RateLimit)
			config.RateLimit = 15
		}

		if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
			return ValidFailWith(errors.New("invalid json field http_server.rate_limit_window"), err)
		} else {
			config.RateLimitDuration = duration
		}

		if config.OperatorUsername == "" {
			return ValidFail(errors.New("invalid json field http_server.operator_username, username cannot be empty"))
		}

		if config.OperatorPasswordHash == "" {
			return ValidFail(errors.New("invalid json field http_server.operator_password_hash, a bcrypt hash is required when the report server is enabled"))
		}

		if result := config.JWT.checkValid(logger); result.IsFail() {
			return result
		}
	}
	return ValidPass()
}
