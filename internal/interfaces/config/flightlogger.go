// Package config
package config

import (
	"errors"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"time"
)

type FlightLoggerConfig struct {
	Endpoint            string        `json:"endpoint"`
	Token               string        `json:"token"`
	RequestTimeout      string        `json:"request_timeout"`
	RequestDuration     time.Duration `json:"-"`
	RetryInterval       string        `json:"retry_interval"` // 瞬时传输错误的固定重试间隔
	RetryDuration       time.Duration `json:"-"`
	UserPageSize        int           `json:"user_page_size"`
	StudentLookbackDays int           `json:"student_lookback_days"` // 学员航班回溯窗口
}

func defaultFlightLoggerConfig() *FlightLoggerConfig {
	return &FlightLoggerConfig{
		Endpoint:            "https://api.flightlogger.net/graphql",
		Token:               "",
		RequestTimeout:      "60s",
		RetryInterval:       "20s",
		UserPageSize:        12,
		StudentLookbackDays: 90,
	}
}

func (config *FlightLoggerConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.Endpoint == "" {
		return ValidFail(errors.New("invalid json field flightlogger.endpoint, endpoint cannot be empty"))
	}
	if config.Token == "" {
		return ValidFail(errors.New("invalid json field flightlogger.token, an API token is required"))
	}
	if duration, err := time.ParseDuration(config.RequestTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field flightlogger.request_timeout"), err)
	} else {
		config.RequestDuration = duration
	}
	if duration, err := time.ParseDuration(config.RetryInterval); err != nil {
		return ValidFailWith(errors.New("invalid json field flightlogger.retry_interval"), err)
	} else {
		config.RetryDuration = duration
	}
	if config.UserPageSize <= 0 {
		return ValidFail(errors.New("invalid json field flightlogger.user_page_size, must be greater than zero"))
	}
	if config.StudentLookbackDays <= 0 {
		return ValidFail(errors.New("invalid json field flightlogger.student_lookback_days, must be greater than zero"))
	}
	return ValidPass()
}
