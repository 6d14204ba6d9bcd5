// Package school
package school

import "math"

type Role string

const (
	RoleInstructor Role = "INSTRUCTOR"
	RoleStudent    Role = "STUDENT"
)

// DaysUnknown 表示没有任何活动记录可用来推算最近飞行日,
// 取极小值以免和"今天刚飞过"(0)或未来预订(负数)混淆
const DaysUnknown = math.MinInt32

type User struct {
	CallSign string `json:"call_sign"`
	Id       string `json:"id"`
	Role     Role   `json:"role"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Zipcode  string `json:"zipcode"`

	Programs       []Program          `json:"programs"`
	Flights        []*Flight          `json:"-"`
	Availabilities []AvailabilitySlot `json:"-"`
	Bookings       []Booking          `json:"-"`
	Trainings      []*Training        `json:"trainings,omitempty"`
	Classes        []*Class           `json:"-"`

	IsAvailable               bool    `json:"is_available"`
	DaysSinceLastFlight       int     `json:"days_since_last_flight"`
	AirborneTimeMtdMinutes    float64 `json:"airborne_time_mtd_minutes"`
	AirborneTimeOnDateMinutes float64 `json:"airborne_time_on_scheduling_date"`
	Tiredness                 float64 `json:"tiredness"`
	HasBookingOnDate          bool    `json:"has_booking_on_scheduling_date"`
	EligibleFlyer             bool    `json:"eligible_flyer"`
	SuspectedRelocation       bool    `json:"suspected_relocation"`
}

func (user *User) IsInstructor() bool { return user.Role == RoleInstructor }

func (user *User) IsStudent() bool { return user.Role == RoleStudent }
