// Package report
package report

import (
	"errors"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/school"
	"gopkg.in/gomail.v2"
	"html/template"
	"strings"
)

var (
	ErrEmailDisabled          = errors.New("email is disabled")
	ErrRenderingTemplate      = errors.New("error rendering template")
	ErrTemplateNotInitialized = errors.New("error template not initialized")
)

const snapshotReportTemplate = `<html>
<body>
<h2>Scheduling snapshot for {{.Date}}</h2>
<p>{{.InstructorCount}} instructors, {{.StudentCount}} students, {{.AircraftCount}} aircraft.</p>
<h3>Instructors</h3>
<table border="1" cellpadding="4">
<tr><th>CallSign</th><th>Airborne MTD</th><th>Tiredness</th><th>Booked</th></tr>
{{range .Instructors}}<tr><td>{{.CallSign}}</td><td>{{.AirborneMtd}}</td><td>{{.Tiredness}}</td><td>{{.Booked}}</td></tr>
{{end}}</table>
<h3>Students</h3>
<table border="1" cellpadding="4">
<tr><th>CallSign</th><th>Last flight (days)</th><th>Booked</th></tr>
{{range .Students}}<tr><td>{{.CallSign}}</td><td>{{.LastFlight}}</td><td>{{.Booked}}</td></tr>
{{end}}</table>
{{if .Warnings}}<h3>Warnings</h3><ul>{{range .Warnings}}<li>{{.}}</li>{{end}}</ul>{{end}}
</body>
</html>`

type EmailService struct {
	logger         log.LoggerInterface
	config         *config.EmailConfig
	reportTemplate *template.Template
}

type reportPersonRow struct {
	CallSign    string
	AirborneMtd string
	Tiredness   string
	LastFlight  string
	Booked      string
}

type reportTemplateData struct {
	Date            string
	InstructorCount int
	StudentCount    int
	AircraftCount   int
	Instructors     []reportPersonRow
	Students        []reportPersonRow
	Warnings        []string
}

func NewEmailService(logger log.LoggerInterface, config *config.EmailConfig) (*EmailService, error) {
	reportTemplate, err := template.New("snapshot_report").Parse(snapshotReportTemplate)
	if err != nil {
		return nil, err
	}
	return &EmailService{
		logger:         logger,
		config:         config,
		reportTemplate: reportTemplate,
	}, nil
}

func (emailService *EmailService) RenderTemplate(template *template.Template, data interface{}) (string, error) {
	if template == nil {
		return "", ErrTemplateNotInitialized
	}
	var sb strings.Builder
	if err := template.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (emailService *EmailService) SendSnapshotReport(snapshot *school.Snapshot) error {
	if !emailService.config.Enabled || emailService.config.EmailServer == nil {
		return ErrEmailDisabled
	}

	message, err := emailService.RenderTemplate(emailService.reportTemplate, buildTemplateData(snapshot))
	if err != nil {
		emailService.logger.ErrorF("EmailService.SendSnapshotReport render template error: %v", err)
		return ErrRenderingTemplate
	}

	m := gomail.NewMessage()
	m.SetHeader("From", emailService.config.From)
	m.SetHeader("To", emailService.config.Recipients...)
	m.SetHeader("Subject", "Scheduling snapshot "+snapshot.Date.Format("2006-01-02"))
	m.SetBody("text/html", message)

	emailService.logger.InfoF("Sending snapshot report to %d recipients", len(emailService.config.Recipients))

	return emailService.config.EmailServer.DialAndSend(m)
}

func buildTemplateData(snapshot *school.Snapshot) *reportTemplateData {
	data := &reportTemplateData{
		Date:            snapshot.Date.Format("2006-01-02"),
		InstructorCount: len(snapshot.Instructors),
		StudentCount:    len(snapshot.Students),
		AircraftCount:   len(snapshot.Aircraft),
		Warnings:        snapshot.Warnings,
	}
	for _, instructor := range snapshot.Instructors {
		if !instructor.IsAvailable {
			continue
		}
		data.Instructors = append(data.Instructors, reportPersonRow{
			CallSign:    instructor.CallSign,
			AirborneMtd: formatHoursMinutes(instructor.AirborneTimeMtdMinutes),
			Tiredness:   formatPercent(instructor.Tiredness),
			Booked:      formatBool(instructor.HasBookingOnDate),
		})
	}
	for _, student := range snapshot.Students {
		if !student.IsAvailable {
			continue
		}
		data.Students = append(data.Students, reportPersonRow{
			CallSign:   student.CallSign,
			LastFlight: formatLastFlight(student.DaysSinceLastFlight),
			Booked:     formatBool(student.HasBookingOnDate),
		})
	}
	return data
}
