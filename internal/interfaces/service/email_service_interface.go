// Package service
package service

import (
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/school"
	"html/template"
)

type EmailServiceInterface interface {
	RenderTemplate(template *template.Template, data interface{}) (string, error)
	// SendSnapshotReport 向配置的收件人发送排班快照报表
	SendSnapshotReport(snapshot *school.Snapshot) error
}
