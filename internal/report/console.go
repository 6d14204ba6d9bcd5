// Package report 负责将排班快照渲染成运营人员可读的形式
package report

import (
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/school"
	"github.com/fatih/color"
	"io"
	"strings"
	"text/tabwriter"
)

const maxProgramNameWidth = 25

type ConsoleReport struct {
	logger log.LoggerInterface
	config *config.SchoolConfig
	writer io.Writer
}

func NewConsoleReport(logger log.LoggerInterface, config *config.SchoolConfig) *ConsoleReport {
	return &ConsoleReport{
		logger: logger,
		config: config,
		writer: color.Output,
	}
}

// Render 依次输出机队表, 教员表和学员表, 只展示当日可用的人员
func (report *ConsoleReport) Render(snapshot *school.Snapshot) {
	fmt.Fprintf(report.writer, "Scheduling date: %s (%s)\n\n",
		snapshot.Date.Format("2006-01-02"), snapshot.Date.Weekday())
	report.renderAircraft(snapshot.Aircraft)
	report.renderInstructors(snapshot.Instructors)
	report.renderStudents(snapshot.Students)
	if len(snapshot.Warnings) > 0 {
		fmt.Fprintln(report.writer)
		for _, warning := range snapshot.Warnings {
			fmt.Fprintf(report.writer, "%s %s\n", color.YellowString("WARN"), warning)
		}
	}
}

func (report *ConsoleReport) renderAircraft(aircraft []*school.Aircraft) {
	writer := tabwriter.NewWriter(report.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CallSign\tClass\tAirborneTotal\tScheduledMinutes")
	for _, plane := range aircraft {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%.0f\n",
			plane.CallSign, plane.AircraftClass,
			formatHoursMinutes(plane.TotalAirborneMinutes), plane.ScheduledFlightMinutes)
	}
	_ = writer.Flush()
	fmt.Fprintln(report.writer)
}

func (report *ConsoleReport) renderInstructors(instructors []*school.User) {
	writer := tabwriter.NewWriter(report.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CallSign\tAirborneTimeMTD\tTiredness\tBookedToday\tPrograms")
	for _, instructor := range instructors {
		if !instructor.IsAvailable {
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\t%.1f%%\t%s\t%s\n",
			instructor.CallSign,
			formatHoursMinutes(instructor.AirborneTimeMtdMinutes),
			instructor.Tiredness,
			formatBool(instructor.HasBookingOnDate),
			formatPrograms(instructor.Programs))
	}
	_ = writer.Flush()
	fmt.Fprintln(report.writer)
}

func (report *ConsoleReport) renderStudents(students []*school.User) {
	writer := tabwriter.NewWriter(report.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CallSign\tLastFlight\tBookedToday\tPrograms\tClasses")
	for _, student := range students {
		if !student.IsAvailable || !student.EligibleFlyer {
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			student.CallSign,
			formatLastFlight(student.DaysSinceLastFlight),
			formatBool(student.HasBookingOnDate),
			formatPrograms(student.Programs),
			report.formatClasses(student))
	}
	_ = writer.Flush()
	fmt.Fprintln(report.writer)
}

// formatClasses 只展示带展示前缀的班级, 疑似搬迁的学员标红提示,
// 含搬迁关键字的班级标黄
func (report *ConsoleReport) formatClasses(student *school.User) string {
	names := make([]string, 0, len(student.Classes)+1)
	if student.SuspectedRelocation {
		names = append(names, color.RedString("DETECTED - %s", capitalize(report.config.RelocationKeyword)))
	}
	for _, class := range student.Classes {
		if !strings.HasPrefix(class.Name, report.config.DisplayClassPrefix) {
			continue
		}
		if strings.Contains(strings.ToLower(class.Name), report.config.RelocationKeyword) {
			names = append(names, color.YellowString(class.Name))
		} else {
			names = append(names, class.Name)
		}
	}
	return strings.Join(names, ", ")
}

func formatPrograms(programs []school.Program) string {
	names := make([]string, 0, len(programs))
	for _, program := range programs {
		name := program.Name
		if len(name) > maxProgramNameWidth {
			name = name[:maxProgramNameWidth] + "..."
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func formatHoursMinutes(minutes float64) string {
	total := int(minutes)
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func formatLastFlight(days int) string {
	if days == school.DaysUnknown {
		return "-"
	}
	return fmt.Sprintf("%d", days)
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
