package operation

import (
	"time"
)

// SnapshotRun 一次抓取+派生运行的归档记录
type SnapshotRun struct {
	ID              uint            `gorm:"primarykey" json:"-"`
	RunId           string          `gorm:"size:16;uniqueIndex;not null" json:"run_id"`
	SchedulingDate  time.Time       `gorm:"index;not null" json:"scheduling_date"`
	StartedAt       time.Time       `gorm:"not null" json:"started_at"`
	FinishedAt      time.Time       `gorm:"not null" json:"finished_at"`
	AircraftCount   int             `gorm:"default:0;not null" json:"aircraft_count"`
	InstructorCount int             `gorm:"default:0;not null" json:"instructor_count"`
	StudentCount    int             `gorm:"default:0;not null" json:"student_count"`
	BookingCount    int             `gorm:"default:0;not null" json:"booking_count"`
	PersonResults   []*PersonResult `gorm:"foreignKey:SnapshotRunID" json:"-"`
	RunWarnings     []*RunWarning   `gorm:"foreignKey:SnapshotRunID" json:"-"`
	CreatedAt       time.Time       `json:"-"`
	UpdatedAt       time.Time       `json:"-"`
}

// PersonResult 单人在某次运行中的派生属性
type PersonResult struct {
	ID                        uint    `gorm:"primarykey" json:"-"`
	SnapshotRunID             uint    `gorm:"index;not null" json:"-"`
	CallSign                  string  `gorm:"size:64;index;not null" json:"call_sign"`
	Role                      string  `gorm:"size:16;not null" json:"role"`
	IsAvailable               bool    `gorm:"default:0;not null" json:"is_available"`
	DaysSinceLastFlight       int     `gorm:"not null" json:"days_since_last_flight"`
	AirborneTimeMtdMinutes    float64 `gorm:"default:0;not null" json:"airborne_time_mtd_minutes"`
	AirborneTimeOnDateMinutes float64 `gorm:"default:0;not null" json:"airborne_time_on_scheduling_date"`
	Tiredness                 float64 `gorm:"default:0;not null" json:"tiredness"`
	HasBookingOnDate          bool    `gorm:"default:0;not null" json:"has_booking_on_scheduling_date"`
	EligibleFlyer             bool    `gorm:"default:0;not null" json:"eligible_flyer"`
}

// RunWarning 运行中收集的数据质量警告
type RunWarning struct {
	ID            uint   `gorm:"primarykey" json:"-"`
	SnapshotRunID uint   `gorm:"index;not null" json:"-"`
	Message       string `gorm:"type:text;not null" json:"message"`
}
