// Package school
package school

import (
	"sort"
)

type Aircraft struct {
	Id                   string  `json:"id"`
	CallSign             string  `json:"call_sign"`
	TotalAirborneMinutes float64 `json:"total_airborne_minutes"` // 全生命周期飞行分钟数, 只增不减
	AircraftClass        string  `json:"aircraft_class"`

	// ScheduledFlightMinutes 排班日已被预订的飞行分钟数,
	// 随引用此飞机的预订被构建而累加, 每次运行从零开始
	ScheduledFlightMinutes float64   `json:"scheduled_flight_minutes"`
	Bookings               []Booking `json:"-"`
}

// registerBooking 把预订登记到飞机上, 只在预订构建时调用一次,
// 排班日之外或已取消的预订不占用飞机当日时间
func (aircraft *Aircraft) registerBooking(booking Booking, context *SchedulingContext) {
	aircraft.Bookings = append(aircraft.Bookings, booking)
	details := booking.Details()
	if details.IsCancelled() {
		return
	}
	if context.SameDate(details.StartsAt) {
		aircraft.ScheduledFlightMinutes += details.Flight.AirborneMinutes
	}
}

// Fleet 持有本次运行的全部飞机并提供呼号索引
type Fleet struct {
	Aircraft []*Aircraft
	index    map[string]*Aircraft
}

func NewFleet(aircraft []*Aircraft) *Fleet {
	fleet := &Fleet{
		Aircraft: aircraft,
		index:    make(map[string]*Aircraft, len(aircraft)),
	}
	for _, entry := range aircraft {
		fleet.index[entry.CallSign] = entry
	}
	return fleet
}

// ByCallSign 呼号精确匹配, 找不到返回nil
func (fleet *Fleet) ByCallSign(callSign string) *Aircraft {
	return fleet.index[callSign]
}

// SortByTotalAirborne 按生命周期飞行分钟数降序排列
func (fleet *Fleet) SortByTotalAirborne() {
	sort.SliceStable(fleet.Aircraft, func(i, j int) bool {
		return fleet.Aircraft[i].TotalAirborneMinutes > fleet.Aircraft[j].TotalAirborneMinutes
	})
}
