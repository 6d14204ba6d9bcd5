// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string              `json:"config_version"`
	General       *GeneralConfig      `json:"general"`
	FlightLogger  *FlightLoggerConfig `json:"flightlogger"`
	School        *SchoolConfig       `json:"school"`
	Database      *DatabaseConfig     `json:"database"`
	HttpServer    *HttpServerConfig   `json:"http_server"`
	Email         *EmailConfig        `json:"email"`
	Store         *ExportStoreConfig  `json:"store"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		General:       defaultGeneralConfig(),
		FlightLogger:  defaultFlightLoggerConfig(),
		School:        defaultSchoolConfig(),
		Database:      defaultDatabaseConfig(),
		HttpServer:    defaultHttpServerConfig(),
		Email:         defaultEmailConfig(),
		Store:         defaultExportStoreConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else if result := ConfVersion.checkVersion(version); result != AllMatch {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
	}
	if result := c.General.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.FlightLogger.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.School.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Email.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Store.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
