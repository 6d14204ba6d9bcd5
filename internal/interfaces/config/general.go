// Package config
package config

import (
	"errors"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"golang.org/x/crypto/bcrypt"
	"time"
)

type GeneralConfig struct {
	Timezone     string         `json:"timezone"` // 学校所在时区, 所有日期判定都在此时区内进行
	TimeLocation *time.Location `json:"-"`
	BcryptCost   int            `json:"bcrypt_cost"`
}

func defaultGeneralConfig() *GeneralConfig {
	return &GeneralConfig{
		Timezone:   "Atlantic/Canary",
		BcryptCost: 12,
	}
}

func (config *GeneralConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return ValidFailWith(errors.New("invalid json field general.timezone"), err)
	}
	config.TimeLocation = location
	if config.BcryptCost < bcrypt.MinCost || config.BcryptCost > bcrypt.MaxCost {
		return ValidFail(errors.New("bcrypt_cost out of range, must between 4 and 31"))
	}
	return ValidPass()
}
