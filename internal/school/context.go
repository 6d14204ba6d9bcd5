// Package school
package school

import (
	"time"
)

// SchedulingContext 保存本次运行的排班日, 构造后不可变,
// 所有日期判定都在学校时区内进行
type SchedulingContext struct {
	date     time.Time
	location *time.Location
}

func NewSchedulingContext(date time.Time, location *time.Location) *SchedulingContext {
	localDate := date.In(location)
	return &SchedulingContext{
		date:     time.Date(localDate.Year(), localDate.Month(), localDate.Day(), 0, 0, 0, 0, location),
		location: location,
	}
}

func (context *SchedulingContext) Date() time.Time { return context.date }

func (context *SchedulingContext) Location() *time.Location { return context.location }

// MonthStart 排班日所在月份的第一天
func (context *SchedulingContext) MonthStart() time.Time {
	return time.Date(context.date.Year(), context.date.Month(), 1, 0, 0, 0, 0, context.location)
}

// DateOf 将任意时刻截断为学校时区内的日期
func (context *SchedulingContext) DateOf(timestamp time.Time) time.Time {
	local := timestamp.In(context.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, context.location)
}

// SameDate 判断时间戳是否落在排班日当天
func (context *SchedulingContext) SameDate(timestamp time.Time) bool {
	return context.DateOf(timestamp).Equal(context.date)
}

// WithinMonthToDate 判断时间戳日期是否落在[月初, 排班日]闭区间内
func (context *SchedulingContext) WithinMonthToDate(timestamp time.Time) bool {
	date := context.DateOf(timestamp)
	return !date.Before(context.MonthStart()) && !date.After(context.date)
}

// DaysSince 排班日距给定时刻日期的天数, 未来日期会得到负值.
// 差值按日历天计算: 夏令时切换当天在学校时区只有23小时, 直接做时刻相减会少算一天
func (context *SchedulingContext) DaysSince(timestamp time.Time) int {
	return int(utcMidnight(context.date).Sub(utcMidnight(context.DateOf(timestamp))).Hours() / 24)
}

func utcMidnight(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
