// Package school
package school

import (
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/flightlogger"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/config"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/log"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/utils"
	"slices"
	"sort"
	"strings"
	"time"
)

// Fetcher 快照构建所需的全部远端读取, 由flightlogger.Client实现
type Fetcher interface {
	FetchAircraft() ([]flightlogger.Record, error)
	FetchUsersByRole(role string, pageSize int, availabilityFrom, flightsFrom time.Time) ([]flightlogger.Record, error)
	FetchClasses() ([]flightlogger.Record, error)
	FetchBookings(from time.Time) ([]flightlogger.Record, error)
	FetchTrainings(userIds []string) ([]flightlogger.Record, error)
}

// Snapshot 一次运行的最终产物: 某个排班日的全校一致视图
type Snapshot struct {
	Context     *SchedulingContext `json:"-"`
	Date        time.Time          `json:"date"`
	Fleet       *Fleet             `json:"-"`
	Aircraft    []*Aircraft        `json:"aircraft"`
	Instructors []*User            `json:"instructors"`
	Students    []*User            `json:"students"`
	Classes     []*Class           `json:"-"`
	Warnings    []string           `json:"warnings"`
}

type SnapshotBuilder struct {
	logger       log.LoggerInterface
	fetcher      Fetcher
	flightLogger *config.FlightLoggerConfig
	school       *config.SchoolConfig
	context      *SchedulingContext
	warnings     []string
}

func NewSnapshotBuilder(
	logger log.LoggerInterface,
	fetcher Fetcher,
	flightLogger *config.FlightLoggerConfig,
	school *config.SchoolConfig,
	context *SchedulingContext,
) *SnapshotBuilder {
	return &SnapshotBuilder{
		logger:       logger,
		fetcher:      fetcher,
		flightLogger: flightLogger,
		school:       school,
		context:      context,
	}
}

// Build 按依赖顺序串行抓取并派生, 任何数据完整性错误都中止整次运行,
// 数据质量警告收集到快照里随结果一起返回
func (builder *SnapshotBuilder) Build() (*Snapshot, error) {
	fleet, err := builder.buildFleet()
	if err != nil {
		return nil, err
	}

	instructors, err := builder.buildUsers(RoleInstructor)
	if err != nil {
		return nil, err
	}
	students, err := builder.buildUsers(RoleStudent)
	if err != nil {
		return nil, err
	}
	users := append(append(make([]*User, 0, len(instructors)+len(students)), instructors...), students...)
	byCallSign := make(map[string]*User, len(users))
	byId := make(map[string]*User, len(users))
	for _, user := range users {
		byCallSign[user.CallSign] = user
		byId[user.Id] = user
	}

	classes, err := builder.buildClasses(byCallSign)
	if err != nil {
		return nil, err
	}

	if err := builder.attachBookings(fleet, byCallSign); err != nil {
		return nil, err
	}

	builder.markEligibleFlyers(students)
	if err := builder.attachTrainings(students, byId); err != nil {
		return nil, err
	}

	for _, user := range users {
		deriveAggregates(user, builder.context)
		builder.markRelocation(user)
	}

	sortInstructors(instructors)
	sortStudents(students)

	return &Snapshot{
		Context:     builder.context,
		Date:        builder.context.Date(),
		Fleet:       fleet,
		Aircraft:    fleet.Aircraft,
		Instructors: instructors,
		Students:    students,
		Classes:     classes,
		Warnings:    builder.warnings,
	}, nil
}

func (builder *SnapshotBuilder) buildFleet() (*Fleet, error) {
	builder.logger.Info("Getting aircrafts...")
	nodes, err := builder.fetcher.FetchAircraft()
	if err != nil {
		return nil, err
	}
	aircraft := make([]*Aircraft, 0, len(nodes))
	for _, node := range nodes {
		entry, err := normalizeAircraft(node)
		if err != nil {
			return nil, err
		}
		aircraft = append(aircraft, entry)
	}
	fleet := NewFleet(aircraft)
	fleet.SortByTotalAirborne()
	builder.logger.InfoF("Created %d aircrafts", len(aircraft))
	return fleet, nil
}

// buildUsers 抓取并构建单一角色的用户.
// 教员的飞行回溯到排班月月初, 学员回溯固定天数; 黑名单呼号直接剔除
func (builder *SnapshotBuilder) buildUsers(role Role) ([]*User, error) {
	builder.logger.InfoF("Getting %ss...", strings.ToLower(string(role)))

	flightsFrom := builder.context.MonthStart()
	if role == RoleStudent {
		flightsFrom = builder.context.Date().AddDate(0, 0, -builder.flightLogger.StudentLookbackDays)
	}

	nodes, err := builder.fetcher.FetchUsersByRole(string(role), builder.flightLogger.UserPageSize, builder.context.Date(), flightsFrom)
	if err != nil {
		return nil, err
	}

	users := make([]*User, 0, len(nodes))
	for _, node := range nodes {
		user, err := normalizeUser(node, role)
		if err != nil {
			return nil, err
		}
		if slices.Contains(builder.school.ExcludedCallSigns, user.CallSign) {
			continue
		}
		users = append(users, user)
	}
	builder.logger.InfoF("Created %d %ss", len(users), strings.ToLower(string(role)))
	return users, nil
}

// buildClasses 第二遍链接: 所有用户构建完成后, 班级按呼号精确匹配引用既有用户
func (builder *SnapshotBuilder) buildClasses(byCallSign map[string]*User) ([]*Class, error) {
	builder.logger.Info("Getting classes...")
	nodes, err := builder.fetcher.FetchClasses()
	if err != nil {
		return nil, err
	}

	classes := make([]*Class, 0, len(nodes))
	for _, node := range nodes {
		name, err := node.Str("name")
		if err != nil {
			return nil, err
		}
		class := &Class{Name: name}
		memberNodes, err := node.List("users")
		if err != nil {
			return nil, err
		}
		for _, memberNode := range memberNodes {
			callSign, err := memberNode.Str("callSign")
			if err != nil {
				return nil, err
			}
			if member, ok := byCallSign[callSign]; ok {
				class.Members = append(class.Members, member)
				member.Classes = append(member.Classes, class)
			}
		}
		classes = append(classes, class)
	}
	return classes, nil
}

// attachBookings 每个原始节点只分类构建一次, 同一实例再挂到所有参与方名下
func (builder *SnapshotBuilder) attachBookings(fleet *Fleet, byCallSign map[string]*User) error {
	builder.logger.Info("Getting bookings...")
	nodes, err := builder.fetcher.FetchBookings(builder.bookingsFrom())
	if err != nil {
		return err
	}

	for _, node := range nodes {
		booking, warnings, err := classifyBooking(node, fleet, builder.context)
		if err != nil {
			return err
		}
		builder.warnings = append(builder.warnings, warnings...)
		for _, callSign := range booking.PartyCallSigns() {
			if user, ok := byCallSign[callSign]; ok {
				user.Bookings = append(user.Bookings, booking)
			}
		}
	}
	builder.logger.InfoF("Attached %d bookings", len(nodes))
	return nil
}

func (builder *SnapshotBuilder) markEligibleFlyers(students []*User) {
	for _, student := range students {
		for _, class := range student.Classes {
			if strings.Contains(class.Name, builder.school.EligibleClassKeyword) {
				student.EligibleFlyer = true
				break
			}
		}
	}
}

// attachTrainings 只为可飞学员抓取未飞行训练,
// 训练名与某个预订的计划课程同名时标记为已预订
func (builder *SnapshotBuilder) attachTrainings(students []*User, byId map[string]*User) error {
	userIds := make([]string, 0, len(students))
	for _, student := range students {
		if student.EligibleFlyer {
			userIds = append(userIds, student.Id)
		}
	}
	if len(userIds) == 0 {
		return nil
	}

	builder.logger.Info("Getting trainings...")
	nodes, err := builder.fetcher.FetchTrainings(userIds)
	if err != nil {
		return err
	}

	for _, node := range nodes {
		training, userId, err := normalizeTraining(node)
		if err != nil {
			return err
		}
		user, ok := byId[userId]
		if !ok {
			continue
		}
		for _, booking := range user.Bookings {
			if lesson := booking.Details().PlannedLesson; lesson != "" && lesson == training.Name {
				training.Booked = true
				break
			}
		}
		user.Trainings = append(user.Trainings, training)
	}

	for _, student := range students {
		SortTrainings(student.Trainings)
	}
	return nil
}

func (builder *SnapshotBuilder) markRelocation(user *User) {
	if !user.IsStudent() {
		return
	}
	keyword := strings.ToLower(builder.school.RelocationKeyword)
	if keyword == "" {
		return
	}
	suspected := strings.Contains(strings.ToLower(user.Address), keyword) ||
		strings.Contains(strings.ToLower(user.City), keyword) ||
		(builder.school.RelocationZipPrefix != "" && strings.Contains(user.Zipcode, builder.school.RelocationZipPrefix))
	if !suspected {
		return
	}
	if utils.Find(user.Classes, func(class *Class) bool {
		return strings.Contains(strings.ToLower(class.Name), keyword)
	}) != nil {
		return
	}
	user.SuspectedRelocation = true
}

// bookingsFrom 预订抓取起点: 今天与排班日中较早者.
// 对今天或未来的排班日, 更早的活动已经以飞行的形式存在;
// 回溯运行时则必须从排班日起抓, 否则当天的预订永远不可见
func (builder *SnapshotBuilder) bookingsFrom() time.Time {
	today := builder.context.DateOf(time.Now())
	if builder.context.Date().Before(today) {
		return builder.context.Date()
	}
	return today
}

// sortInstructors 教员按月初至今飞行分钟数降序
func sortInstructors(instructors []*User) {
	sort.SliceStable(instructors, func(i, j int) bool {
		return instructors[i].AirborneTimeMtdMinutes > instructors[j].AirborneTimeMtdMinutes
	})
}

// sortStudents 学员按最近活动从新到旧, 没有任何活动的排在最后
func sortStudents(students []*User) {
	sort.SliceStable(students, func(i, j int) bool {
		first, second := students[i].DaysSinceLastFlight, students[j].DaysSinceLastFlight
		if first == DaysUnknown {
			return false
		}
		if second == DaysUnknown {
			return true
		}
		return first < second
	})
}
