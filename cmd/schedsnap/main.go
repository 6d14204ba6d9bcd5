package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/base"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/database"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/flightlogger"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/http_server"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/global"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/operation"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/report"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/report/store"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/school"
	"github.com/thanhpk/randstr"
	"golang.org/x/crypto/bcrypt"
	"time"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.Info("Application initializing...")

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	if *global.HashPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*global.HashPassword), config.General.BcryptCost)
		if err != nil {
			logger.FatalF("Error occurred while hashing password, details: %v", err)
			return
		}
		fmt.Println(string(hash))
		return
	}

	schedulingDate, err := resolveSchedulingDate(config.General.TimeLocation)
	if err != nil {
		logger.FatalF("Invalid scheduling date, details: %v", err)
		return
	}

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing operation, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation)

	schedulingContext := school.NewSchedulingContext(schedulingDate, config.General.TimeLocation)
	logger.InfoF("Scheduling date: %s (%s)", schedulingDate.Format(global.DateLayout), schedulingDate.Weekday())

	client := flightlogger.NewClient(logger, config.FlightLogger)
	builder := school.NewSnapshotBuilder(logger, client, config.FlightLogger, config.School, schedulingContext)

	startedAt := time.Now()
	snapshot, err := builder.Build()
	if err != nil {
		logger.FatalF("Error occurred while building snapshot, details: %v", err)
		return
	}
	finishedAt := time.Now()

	report.NewConsoleReport(logger, config.School).Render(snapshot)

	runId := archiveRun(logger, databaseOperation, snapshot, startedAt, finishedAt)

	exportSnapshot(logger, applicationContent, snapshot, runId)

	if config.Email.Enabled && !*global.SkipReportEmail {
		sendReportEmail(logger, applicationContent, snapshot)
	}

	if config.HttpServer.Enabled && *global.ServeReportApi {
		http_server.StartHttpServer(applicationContent, snapshot)
	}
}

// resolveSchedulingDate 解析-date参数, 缺省为学校时区的今天
func resolveSchedulingDate(location *time.Location) (time.Time, error) {
	if *global.SchedulingDate == "" {
		now := time.Now().In(location)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, location), nil
	}
	return time.ParseInLocation(global.DateLayout, *global.SchedulingDate, location)
}

func archiveRun(
	logger log.LoggerInterface,
	databaseOperation *operation.DatabaseOperations,
	snapshot *school.Snapshot,
	startedAt, finishedAt time.Time,
) string {
	run := &operation.SnapshotRun{
		RunId:           randstr.String(16),
		SchedulingDate:  snapshot.Date,
		StartedAt:       startedAt,
		FinishedAt:      finishedAt,
		AircraftCount:   len(snapshot.Aircraft),
		InstructorCount: len(snapshot.Instructors),
		StudentCount:    len(snapshot.Students),
	}

	persons := make([]*operation.PersonResult, 0, len(snapshot.Instructors)+len(snapshot.Students))
	bookingCount := 0
	for _, group := range [][]*school.User{snapshot.Instructors, snapshot.Students} {
		for _, user := range group {
			bookingCount += len(user.Bookings)
			persons = append(persons, &operation.PersonResult{
				CallSign:                  user.CallSign,
				Role:                      string(user.Role),
				IsAvailable:               user.IsAvailable,
				DaysSinceLastFlight:       user.DaysSinceLastFlight,
				AirborneTimeMtdMinutes:    user.AirborneTimeMtdMinutes,
				AirborneTimeOnDateMinutes: user.AirborneTimeOnDateMinutes,
				Tiredness:                 user.Tiredness,
				HasBookingOnDate:          user.HasBookingOnDate,
				EligibleFlyer:             user.EligibleFlyer,
			})
		}
	}
	run.BookingCount = bookingCount

	warnings := make([]*operation.RunWarning, 0, len(snapshot.Warnings))
	for _, warning := range snapshot.Warnings {
		warnings = append(warnings, &operation.RunWarning{Message: warning})
	}

	if previousRun, err := databaseOperation.SnapshotOperation().GetLatestRun(); err == nil {
		logger.InfoF("Previous run %s finished at %s with %d bookings",
			previousRun.RunId, previousRun.FinishedAt.Format(time.RFC3339), previousRun.BookingCount)
	}

	if err := databaseOperation.SnapshotOperation().SaveRun(run, persons, warnings); err != nil {
		logger.ErrorF("Error occurred while archiving snapshot run, details: %v", err)
	} else {
		logger.InfoF("Snapshot run %s archived", run.RunId)
	}
	return run.RunId
}

func exportSnapshot(
	logger log.LoggerInterface,
	applicationContent *interfaces.ApplicationContent,
	snapshot *school.Snapshot,
	runId string,
) {
	config := applicationContent.ConfigManager().Config()
	payload, err := json.MarshalIndent(snapshot, "", "\t")
	if err != nil {
		logger.ErrorF("Error occurred while serializing snapshot, details: %v", err)
		return
	}
	exportStore := store.NewExportStore(logger, config.Store)
	if info, err := exportStore.SaveSnapshotFile(runId, payload); err != nil {
		logger.ErrorF("Error occurred while exporting snapshot, details: %v", err)
	} else {
		logger.InfoF("Snapshot exported to %s", info.FilePath)
	}
}

func sendReportEmail(
	logger log.LoggerInterface,
	applicationContent *interfaces.ApplicationContent,
	snapshot *school.Snapshot,
) {
	config := applicationContent.ConfigManager().Config()
	emailService, err := report.NewEmailService(logger, config.Email)
	if err != nil {
		logger.ErrorF("Error occurred while initializing email service, details: %v", err)
		return
	}
	if err := emailService.SendSnapshotReport(snapshot); err != nil {
		logger.ErrorF("Error occurred while sending report email, details: %v", err)
	}
}
