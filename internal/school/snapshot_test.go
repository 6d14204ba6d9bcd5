// Package school
package school

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/flightlogger"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
)

type fakeFetcher struct {
	aircraft  []flightlogger.Record
	users     map[string][]flightlogger.Record
	classes   []flightlogger.Record
	bookings  []flightlogger.Record
	trainings []flightlogger.Record

	trainingUserIds []string
	bookingsFrom    time.Time
}

func (fetcher *fakeFetcher) FetchAircraft() ([]flightlogger.Record, error) {
	return fetcher.aircraft, nil
}

func (fetcher *fakeFetcher) FetchUsersByRole(role string, _ int, _, _ time.Time) ([]flightlogger.Record, error) {
	return fetcher.users[role], nil
}

func (fetcher *fakeFetcher) FetchClasses() ([]flightlogger.Record, error) {
	return fetcher.classes, nil
}

func (fetcher *fakeFetcher) FetchBookings(from time.Time) ([]flightlogger.Record, error) {
	fetcher.bookingsFrom = from
	return fetcher.bookings, nil
}

func (fetcher *fakeFetcher) FetchTrainings(userIds []string) ([]flightlogger.Record, error) {
	fetcher.trainingUserIds = userIds
	return fetcher.trainings, nil
}

func userNode(id, callSign string, flights ...map[string]interface{}) flightlogger.Record {
	flightNodes := make([]interface{}, 0, len(flights))
	for _, flight := range flights {
		flightNodes = append(flightNodes, flight)
	}
	return flightlogger.Record{
		"id":       id,
		"callSign": callSign,
		"contact": map[string]interface{}{
			"address": "Calle Mayor 1",
			"city":    "Las Palmas",
			"zipcode": "35001",
		},
		"userPrograms": map[string]interface{}{
			"nodes": []interface{}{
				map[string]interface{}{"program": map[string]interface{}{"name": "PPL(A)"}},
			},
		},
		"availabilities": map[string]interface{}{
			"nodes": []interface{}{
				map[string]interface{}{
					"startsAt":    "2026-01-01T00:00:00Z",
					"endsAt":      "2026-01-31T23:59:59Z",
					"unavailable": false,
				},
			},
		},
		"flights": map[string]interface{}{"nodes": flightNodes},
	}
}

func flightNode(offBlock, onBlock string) map[string]interface{} {
	return map[string]interface{}{"offBlock": offBlock, "onBlock": onBlock}
}

func testSchoolConfig() *config.SchoolConfig {
	return &config.SchoolConfig{
		EligibleClassKeyword: "PUEDE VOLAR",
		DisplayClassPrefix:   "z",
		ExcludedCallSigns:    []string{"SENASA", "AUSTRO", "Instructor"},
		RelocationKeyword:    "tenerife",
		RelocationZipPrefix:  "38",
	}
}

func testFlightLoggerConfig() *config.FlightLoggerConfig {
	return &config.FlightLoggerConfig{UserPageSize: 12, StudentLookbackDays: 90}
}

func newTestBuilder(t *testing.T, fetcher *fakeFetcher, date string) *SnapshotBuilder {
	t.Helper()
	return NewSnapshotBuilder(&log.NopLogger{}, fetcher, testFlightLoggerConfig(), testSchoolConfig(), testContext(t, date))
}

func TestBuildSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{
		aircraft: []flightlogger.Record{
			{"id": "a1", "callSign": "EC-ABC", "totalAirborneMinutes": 1200.0, "aircraftClass": "SEP"},
			{"id": "a2", "callSign": "EC-DEF", "totalAirborneMinutes": 3400.0, "aircraftClass": "MEP"},
		},
		users: map[string][]flightlogger.Record{
			"INSTRUCTOR": {
				userNode("i1", "INS-1", flightNode("2026-01-05T09:00:00Z", "2026-01-05T10:30:00Z")),
				userNode("i2", "Instructor"),
			},
			"STUDENT": {
				userNode("s1", "STU-1", flightNode("2026-01-08T09:00:00Z", "2026-01-08T10:00:00Z")),
				userNode("s2", "STU-2"),
			},
		},
		classes: []flightlogger.Record{
			{
				"name": "zPUEDE VOLAR enero",
				"users": []interface{}{
					map[string]interface{}{"callSign": "STU-1"},
				},
			},
		},
		bookings: []flightlogger.Record{
			{
				"__typename":     "SingleStudentBooking",
				"id":             "b1",
				"startsAt":       "2026-01-15T09:00:00Z",
				"endsAt":         "2026-01-15T11:00:00Z",
				"status":         "CONFIRMED",
				"flightStartsAt": "2026-01-15T09:15:00Z",
				"flightEndsAt":   "2026-01-15T10:45:00Z",
				"aircraft":       map[string]interface{}{"callSign": "EC-ABC"},
				"instructor":     map[string]interface{}{"callSign": "INS-1"},
				"student":        map[string]interface{}{"callSign": "STU-1"},
				"plannedLesson": map[string]interface{}{
					"lecture": map[string]interface{}{"name": "Lesson 7"},
				},
			},
		},
		trainings: []flightlogger.Record{
			{
				"id":      "t1",
				"name":    "Lesson 7",
				"status":  "NOT_FLOWN",
				"user":    map[string]interface{}{"id": "s1", "callSign": "STU-1"},
				"program": map[string]interface{}{"name": "PPL(A)"},
				"lecture": map[string]interface{}{"vfrDualMinutes": 90.0},
			},
			{
				"id":      "t2",
				"name":    "Lesson 8",
				"status":  "NOT_FLOWN",
				"user":    map[string]interface{}{"id": "s1", "callSign": "STU-1"},
				"program": map[string]interface{}{"name": "PPL(A)"},
				"lecture": map[string]interface{}{"vfrSoloMinutes": 45.0},
			},
		},
	}

	snapshot, err := newTestBuilder(t, fetcher, "2026-01-15").Build()
	require.NoError(t, err)

	// 机队按生命周期飞行分钟数降序
	require.Len(t, snapshot.Aircraft, 2)
	assert.Equal(t, "EC-DEF", snapshot.Aircraft[0].CallSign)

	// 黑名单呼号被剔除
	require.Len(t, snapshot.Instructors, 1)
	assert.Equal(t, "INS-1", snapshot.Instructors[0].CallSign)

	require.Len(t, snapshot.Students, 2)

	students := make(map[string]*User, 2)
	for _, student := range snapshot.Students {
		students[student.CallSign] = student
	}

	// 班级链接与可飞学员标记
	assert.True(t, students["STU-1"].EligibleFlyer)
	assert.False(t, students["STU-2"].EligibleFlyer)

	// 训练只抓了可飞学员的
	assert.Equal(t, []string{"s1"}, fetcher.trainingUserIds)

	// 同一预订实例挂在教员和学员两边
	require.Len(t, snapshot.Instructors[0].Bookings, 1)
	require.Len(t, students["STU-1"].Bookings, 1)
	assert.Same(t, snapshot.Instructors[0].Bookings[0], students["STU-1"].Bookings[0])

	// 排班日的预订占用飞机时间
	assert.InDelta(t, 90, snapshot.Fleet.ByCallSign("EC-ABC").ScheduledFlightMinutes, 0.01)

	// 计划课程与训练同名时标记为已预订
	trainings := students["STU-1"].Trainings
	require.Len(t, trainings, 2)
	assert.Equal(t, "Lesson 7", trainings[0].Name)
	assert.True(t, trainings[0].Booked)
	assert.False(t, trainings[1].Booked)
	assert.InDelta(t, 90, trainings[0].AirTimeMinutes, 0.01)

	// 派生标量
	instructor := snapshot.Instructors[0]
	assert.True(t, instructor.IsAvailable)
	// 1月5日的飞行90分钟 + 排班日预订90分钟
	assert.InDelta(t, 180, instructor.AirborneTimeMtdMinutes, 0.01)
	assert.True(t, instructor.HasBookingOnDate)
}

func TestBuildSnapshotOrphanBookingFails(t *testing.T) {
	fetcher := &fakeFetcher{
		aircraft: []flightlogger.Record{
			{"id": "a1", "callSign": "EC-ABC", "totalAirborneMinutes": 100.0},
		},
		users: map[string][]flightlogger.Record{},
		bookings: []flightlogger.Record{
			{
				"__typename":     "RentalBooking",
				"id":             "b1",
				"startsAt":       "2026-01-15T09:00:00Z",
				"endsAt":         "2026-01-15T11:00:00Z",
				"status":         "CONFIRMED",
				"flightStartsAt": "2026-01-15T09:00:00Z",
				"flightEndsAt":   "2026-01-15T11:00:00Z",
				"aircraft":       map[string]interface{}{"callSign": "EC-GONE"},
				"renter":         map[string]interface{}{"callSign": "REN-1"},
			},
		},
	}

	_, err := newTestBuilder(t, fetcher, "2026-01-15").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EC-GONE")
}

func TestBuildSnapshotMissingLessonCollectsWarning(t *testing.T) {
	fetcher := &fakeFetcher{
		aircraft: []flightlogger.Record{
			{"id": "a1", "callSign": "EC-ABC", "totalAirborneMinutes": 100.0},
		},
		users: map[string][]flightlogger.Record{
			"INSTRUCTOR": {userNode("i1", "INS-1")},
			"STUDENT":    {userNode("s1", "STU-1")},
		},
		bookings: []flightlogger.Record{
			{
				"__typename":     "SingleStudentBooking",
				"id":             "b1",
				"startsAt":       "2026-01-15T09:00:00Z",
				"endsAt":         "2026-01-15T11:00:00Z",
				"status":         "CONFIRMED",
				"flightStartsAt": "2026-01-15T09:00:00Z",
				"flightEndsAt":   "2026-01-15T11:00:00Z",
				"aircraft":       map[string]interface{}{"callSign": "EC-ABC"},
				"instructor":     map[string]interface{}{"callSign": "INS-1"},
				"student":        map[string]interface{}{"callSign": "STU-1"},
			},
		},
	}

	snapshot, err := newTestBuilder(t, fetcher, "2026-01-15").Build()
	require.NoError(t, err)
	require.Len(t, snapshot.Warnings, 1)
	assert.Contains(t, snapshot.Warnings[0], "b1")
}

func TestMarkRelocation(t *testing.T) {
	builder := newTestBuilder(t, &fakeFetcher{}, "2026-01-15")

	student := &User{Role: RoleStudent, City: "Santa Cruz de Tenerife"}
	builder.markRelocation(student)
	assert.True(t, student.SuspectedRelocation)

	// 邮编前缀同样触发
	student = &User{Role: RoleStudent, Zipcode: "38001"}
	builder.markRelocation(student)
	assert.True(t, student.SuspectedRelocation)

	// 已有含关键字的班级则不再标记
	class := &Class{Name: "zTenerife grupo"}
	student = &User{Role: RoleStudent, City: "Tenerife", Classes: []*Class{class}}
	builder.markRelocation(student)
	assert.False(t, student.SuspectedRelocation)

	// 教员不参与搬迁检测
	instructor := &User{Role: RoleInstructor, City: "Tenerife"}
	builder.markRelocation(instructor)
	assert.False(t, instructor.SuspectedRelocation)
}

func TestSortStudentsUnknownLast(t *testing.T) {
	students := []*User{
		{CallSign: "A", DaysSinceLastFlight: DaysUnknown},
		{CallSign: "B", DaysSinceLastFlight: 10},
		{CallSign: "C", DaysSinceLastFlight: 2},
	}
	sortStudents(students)
	assert.Equal(t, "C", students[0].CallSign)
	assert.Equal(t, "B", students[1].CallSign)
	assert.Equal(t, "A", students[2].CallSign)
}

func TestBookingsFetchedFromSchedulingDateForPastRuns(t *testing.T) {
	fetcher := &fakeFetcher{}
	_, err := newTestBuilder(t, fetcher, "2020-05-10").Build()
	require.NoError(t, err)
	assert.Equal(t, testContext(t, "2020-05-10").Date(), fetcher.bookingsFrom)
}

func TestBookingsFetchedFromTodayForFutureRuns(t *testing.T) {
	location, err := time.LoadLocation("Atlantic/Canary")
	require.NoError(t, err)
	futureDate := time.Now().In(location).AddDate(0, 0, 30).Format("2006-01-02")

	fetcher := &fakeFetcher{}
	builder := newTestBuilder(t, fetcher, futureDate)
	_, err = builder.Build()
	require.NoError(t, err)
	assert.Equal(t, builder.context.DateOf(time.Now()), fetcher.bookingsFrom)
}
