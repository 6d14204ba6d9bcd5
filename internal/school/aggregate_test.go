// Package school
package school

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func flightAt(t *testing.T, offBlock string, minutes float64) *Flight {
	t.Helper()
	start, err := time.Parse(time.RFC3339, offBlock)
	if err != nil {
		t.Fatalf("parse off block: %v", err)
	}
	return NewFlight(start, start.Add(time.Duration(minutes)*time.Minute))
}

func rentalAt(t *testing.T, startsAt string, minutes float64, status BookingStatus, comment string) Booking {
	t.Helper()
	start, err := time.Parse(time.RFC3339, startsAt)
	if err != nil {
		t.Fatalf("parse starts at: %v", err)
	}
	return &RentalBooking{
		BookingDetails: BookingDetails{
			Id:       "test",
			StartsAt: start,
			EndsAt:   start.Add(time.Duration(minutes) * time.Minute),
			Status:   status,
			Comment:  comment,
			Flight:   NewFlight(start, start.Add(time.Duration(minutes)*time.Minute)),
		},
		RenterCallSign: "TEST",
	}
}

func TestAirborneTimeMtd(t *testing.T) {
	context := testContext(t, "2026-01-15")
	user := &User{
		Role: RoleInstructor,
		Flights: []*Flight{
			flightAt(t, "2026-01-14T10:00:00Z", 90),
			flightAt(t, "2026-01-01T10:00:00Z", 60),
			// 上个月的飞行不计入
			flightAt(t, "2025-12-31T10:00:00Z", 120),
		},
	}
	deriveAggregates(user, context)
	assert.InDelta(t, 150, user.AirborneTimeMtdMinutes, 0.01)
}

func TestAirborneTimeIncludesFutureBookings(t *testing.T) {
	context := testContext(t, "2026-01-15")
	user := &User{
		Role: RoleInstructor,
		Bookings: []Booking{
			rentalAt(t, "2026-01-10T09:00:00Z", 60, BookingConfirmed, ""),
			// 已取消和单飞预订都不计入分钟数
			rentalAt(t, "2026-01-12T09:00:00Z", 60, BookingCancelled, ""),
			rentalAt(t, "2026-01-13T09:00:00Z", 60, BookingConfirmed, "solo flight"),
		},
	}
	deriveAggregates(user, context)
	assert.InDelta(t, 60, user.AirborneTimeMtdMinutes, 0.01)
}

func TestDaysSinceLastFlightPrefersBookings(t *testing.T) {
	context := testContext(t, "2026-01-15")
	user := &User{
		Role:    RoleStudent,
		Flights: []*Flight{flightAt(t, "2026-01-01T10:00:00Z", 60)},
		Bookings: []Booking{
			rentalAt(t, "2026-01-12T09:00:00Z", 60, BookingCancelled, ""),
			rentalAt(t, "2026-01-05T09:00:00Z", 60, BookingConfirmed, ""),
		},
	}
	deriveAggregates(user, context)
	// 最新预订是1月12日的, 即使已取消也算最近活动
	assert.Equal(t, 3, user.DaysSinceLastFlight)
}

func TestDaysSinceLastFlightFallsBackToFlights(t *testing.T) {
	context := testContext(t, "2026-01-15")
	user := &User{
		Role:    RoleStudent,
		Flights: []*Flight{flightAt(t, "2026-01-10T10:00:00Z", 60)},
	}
	deriveAggregates(user, context)
	assert.Equal(t, 5, user.DaysSinceLastFlight)
}

func TestDaysSinceLastFlightUnknown(t *testing.T) {
	context := testContext(t, "2026-01-15")
	user := &User{Role: RoleStudent}
	deriveAggregates(user, context)
	assert.Equal(t, DaysUnknown, user.DaysSinceLastFlight)
}

func TestHasBookingOnDateExcludesCancelled(t *testing.T) {
	context := testContext(t, "2026-01-15")

	user := &User{
		Role: RoleStudent,
		Bookings: []Booking{
			rentalAt(t, "2026-01-15T09:00:00Z", 60, BookingCancelled, ""),
		},
	}
	deriveAggregates(user, context)
	assert.False(t, user.HasBookingOnDate)

	// 单飞预订仍然占用当日日程
	user = &User{
		Role: RoleStudent,
		Bookings: []Booking{
			rentalAt(t, "2026-01-15T09:00:00Z", 60, BookingConfirmed, "solo"),
		},
	}
	deriveAggregates(user, context)
	assert.True(t, user.HasBookingOnDate)
}

func TestTiredness(t *testing.T) {
	context := testContext(t, "2026-01-15")
	user := &User{
		Role: RoleInstructor,
		Flights: []*Flight{
			flightAt(t, "2026-01-15T08:00:00Z", 300),
		},
		Bookings: []Booking{
			rentalAt(t, "2026-01-15T14:00:00Z", 0, BookingConfirmed, ""),
			rentalAt(t, "2026-01-15T16:00:00Z", 0, BookingConfirmed, ""),
		},
	}
	deriveAggregates(user, context)
	// ((5h + 2 bookings) / 9) * 100
	assert.InDelta(t, 77.78, user.Tiredness, 0.01)
}

func TestTirednessZeroWithoutActivity(t *testing.T) {
	context := testContext(t, "2026-01-15")
	user := &User{Role: RoleInstructor}
	deriveAggregates(user, context)
	assert.Zero(t, user.Tiredness)
}

func TestTirednessOnlyComputedForInstructors(t *testing.T) {
	context := testContext(t, "2026-01-15")
	user := &User{
		Role:    RoleStudent,
		Flights: []*Flight{flightAt(t, "2026-01-15T08:00:00Z", 300)},
	}
	deriveAggregates(user, context)
	assert.Zero(t, user.Tiredness)
}
