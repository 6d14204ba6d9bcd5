// Package config
package config

import (
	"errors"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
)

type SchoolConfig struct {
	EligibleClassKeyword string   `json:"eligible_class_keyword"` // 只有所在班级名包含该关键字的学员才会参与排班
	DisplayClassPrefix   string   `json:"display_class_prefix"`   // 报表中仅展示以该前缀开头的班级
	ExcludedCallSigns    []string `json:"excluded_call_signs"`
	RelocationKeyword    string   `json:"relocation_keyword"` // 地址/城市中出现该关键字时标记为疑似异地学员
	RelocationZipPrefix  string   `json:"relocation_zip_prefix"`
}

func defaultSchoolConfig() *SchoolConfig {
	return &SchoolConfig{
		EligibleClassKeyword: "PUEDE VOLAR",
		DisplayClassPrefix:   "z",
		ExcludedCallSigns:    []string{"SENASA", "AUSTRO", "Instructor"},
		RelocationKeyword:    "tenerife",
		RelocationZipPrefix:  "38",
	}
}

func (config *SchoolConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.EligibleClassKeyword == "" {
		return ValidFail(errors.New("invalid json field school.eligible_class_keyword, keyword cannot be empty"))
	}
	return ValidPass()
}
