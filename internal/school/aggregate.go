// Package school
package school

import (
	"sort"
	"time"
)

// maxDailyDutyHours 疲劳度公式的分母, 按规定一天最多9小时
const maxDailyDutyHours = 9

// deriveAggregates 为单个用户计算所有跟排班日相关的派生标量.
// 取消/单飞剔除只作用于飞行分钟数聚合;
// days_since_last_flight考虑全部预订, has_booking只剔除已取消的预订
func deriveAggregates(user *User, context *SchedulingContext) {
	user.IsAvailable = IsAvailable(user.Availabilities, context)
	user.DaysSinceLastFlight = daysSinceLastActivity(user, context)
	user.AirborneTimeMtdMinutes = airborneMinutes(user, context.WithinMonthToDate)
	user.AirborneTimeOnDateMinutes = airborneMinutes(user, context.SameDate)
	user.HasBookingOnDate = hasBookingOnDate(user, context)
	if user.IsInstructor() {
		user.Tiredness = tiredness(user, context)
	}
}

// daysSinceLastActivity 最近一次活动距排班日的天数.
// 优先取最新预订的开始日期, 没有预订时回退到最新飞行的离场日期,
// 两者都没有时返回DaysUnknown哨兵值
func daysSinceLastActivity(user *User, context *SchedulingContext) int {
	if len(user.Bookings) > 0 {
		bookings := make([]Booking, len(user.Bookings))
		copy(bookings, user.Bookings)
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[i].Details().StartsAt.After(bookings[j].Details().StartsAt)
		})
		return context.DaysSince(bookings[0].Details().StartsAt)
	}
	if len(user.Flights) > 0 {
		// 飞行列表已按离场时间从新到旧排好
		return context.DaysSince(user.Flights[0].OffBlock)
	}
	return DaysUnknown
}

// airborneMinutes 窗口内的飞行分钟数: 离场日期落在窗口内的飞行,
// 加上开始日期落在窗口内且既非单飞也未取消的预订的计划飞行分钟数
func airborneMinutes(user *User, within func(timestamp time.Time) bool) float64 {
	var minutes float64
	for _, flight := range user.Flights {
		if within(flight.OffBlock) {
			minutes += flight.AirborneMinutes
		}
	}
	for _, booking := range user.Bookings {
		details := booking.Details()
		if details.IsCancelled() || details.IsSolo() {
			continue
		}
		if within(details.StartsAt) {
			minutes += details.Flight.AirborneMinutes
		}
	}
	return minutes
}

func hasBookingOnDate(user *User, context *SchedulingContext) bool {
	for _, booking := range user.Bookings {
		details := booking.Details()
		if !details.IsCancelled() && context.SameDate(details.StartsAt) {
			return true
		}
	}
	return false
}

// tiredness 教员疲劳度: ((当日飞行小时数 + 当日有效预订数) / 9) * 100.
// 公式刻意把小时数和预订数直接相加, 保持原有口径
func tiredness(user *User, context *SchedulingContext) float64 {
	qualifying := 0
	for _, booking := range user.Bookings {
		details := booking.Details()
		if details.IsCancelled() || details.IsSolo() {
			continue
		}
		if context.SameDate(details.StartsAt) {
			qualifying++
		}
	}
	if user.AirborneTimeOnDateMinutes == 0 && qualifying == 0 {
		return 0
	}
	return ((user.AirborneTimeOnDateMinutes/60 + float64(qualifying)) / maxDailyDutyHours) * 100
}
