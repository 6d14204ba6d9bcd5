// Package config
package config

import (
	"errors"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Enabled     bool           `json:"enabled"`
	Host        string         `json:"host"`
	Port        int            `json:"port"`
	EmailServer *gomail.Dialer `json:"-"`
	Username    string         `json:"username"`
	Password    string         `json:"password"`
	From        string         `json:"from"`
	Recipients  []string       `json:"recipients"` // 运营报表收件人
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:    false,
		Host:       "smtp.example.com",
		Port:       465,
		Username:   "ops@example.com",
		Password:   "123456",
		From:       "ops@example.com",
		Recipients: []string{},
	}
}

func (config *EmailConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}

	if len(config.Recipients) == 0 {
		return ValidFail(errors.New("invalid json field email.recipients, at least one recipient is required when email is enabled"))
	}

	if config.From == "" {
		config.From = config.Username
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()

	return ValidPass()
}
