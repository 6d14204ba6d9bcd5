// Package school
package school

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/flightlogger"
)

func bookingNode(typeName, id string) flightlogger.Record {
	return flightlogger.Record{
		"__typename":     typeName,
		"id":             id,
		"startsAt":       "2026-01-10T09:00:00Z",
		"endsAt":         "2026-01-10T11:00:00Z",
		"status":         "CONFIRMED",
		"flightStartsAt": "2026-01-10T09:15:00Z",
		"flightEndsAt":   "2026-01-10T10:45:00Z",
		"aircraft":       map[string]interface{}{"callSign": "EC-ABC"},
	}
}

func testFleet() *Fleet {
	return NewFleet([]*Aircraft{{Id: "1", CallSign: "EC-ABC", AircraftClass: "SEP"}})
}

func TestClassifySingleStudentBooking(t *testing.T) {
	node := bookingNode(typeSingleStudentBooking, "b1")
	node["instructor"] = map[string]interface{}{"callSign": "INS-1"}
	node["student"] = map[string]interface{}{"callSign": "STU-1"}
	node["plannedLesson"] = map[string]interface{}{
		"lecture": map[string]interface{}{"name": "Lesson 14"},
	}

	booking, warnings, err := classifyBooking(node, testFleet(), testContext(t, "2026-01-10"))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	single, ok := booking.(*SingleStudentBooking)
	require.True(t, ok)
	assert.Equal(t, "INS-1", single.InstructorCallSign)
	assert.Equal(t, "STU-1", single.StudentCallSign)
	assert.Equal(t, "Lesson 14", single.Details().PlannedLesson)
	assert.ElementsMatch(t, []string{"INS-1", "STU-1"}, booking.PartyCallSigns())
	assert.InDelta(t, 90, single.Details().Flight.AirborneMinutes, 0.01)
}

func TestClassifySingleStudentBookingWithoutLessonWarns(t *testing.T) {
	node := bookingNode(typeSingleStudentBooking, "b2")
	node["instructor"] = map[string]interface{}{"callSign": "INS-1"}
	node["student"] = map[string]interface{}{"callSign": "STU-1"}

	booking, warnings, err := classifyBooking(node, testFleet(), testContext(t, "2026-01-10"))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "b2")
	assert.Empty(t, booking.Details().PlannedLesson)
}

func TestClassifyRentalBookingPopulatesRenterOnly(t *testing.T) {
	node := bookingNode(typeRentalBooking, "b3")
	node["renter"] = map[string]interface{}{"callSign": "REN-1"}

	booking, _, err := classifyBooking(node, testFleet(), testContext(t, "2026-01-10"))
	require.NoError(t, err)

	rental, ok := booking.(*RentalBooking)
	require.True(t, ok)
	assert.Equal(t, "REN-1", rental.RenterCallSign)
	assert.Equal(t, []string{"REN-1"}, booking.PartyCallSigns())
}

func TestClassifyOperationBooking(t *testing.T) {
	node := bookingNode(typeOperationBooking, "b4")
	node["pic"] = map[string]interface{}{"callSign": "PIC-1"}

	booking, _, err := classifyBooking(node, testFleet(), testContext(t, "2026-01-10"))
	require.NoError(t, err)
	assert.Equal(t, []string{"PIC-1"}, booking.PartyCallSigns())
}

func TestClassifyUnknownTypeIsFatal(t *testing.T) {
	node := bookingNode("MaintenanceBooking", "b5")

	_, _, err := classifyBooking(node, testFleet(), testContext(t, "2026-01-10"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaintenanceBooking")
}

func TestClassifyUnknownAircraftIsFatal(t *testing.T) {
	node := bookingNode(typeRentalBooking, "b6")
	node["aircraft"] = map[string]interface{}{"callSign": "EC-ZZZ"}
	node["renter"] = map[string]interface{}{"callSign": "REN-1"}

	_, _, err := classifyBooking(node, testFleet(), testContext(t, "2026-01-10"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EC-ZZZ")
}

func TestClassifyRegistersBookingOnAircraft(t *testing.T) {
	fleet := testFleet()
	node := bookingNode(typeRentalBooking, "b7")
	node["renter"] = map[string]interface{}{"callSign": "REN-1"}

	_, _, err := classifyBooking(node, fleet, testContext(t, "2026-01-10"))
	require.NoError(t, err)

	aircraft := fleet.ByCallSign("EC-ABC")
	require.Len(t, aircraft.Bookings, 1)
	assert.InDelta(t, 90, aircraft.ScheduledFlightMinutes, 0.01)
}

func TestClassifyCancelledBookingDoesNotOccupyAircraft(t *testing.T) {
	fleet := testFleet()
	node := bookingNode(typeRentalBooking, "b8")
	node["status"] = "CANCELLED"
	node["renter"] = map[string]interface{}{"callSign": "REN-1"}

	_, _, err := classifyBooking(node, fleet, testContext(t, "2026-01-10"))
	require.NoError(t, err)

	aircraft := fleet.ByCallSign("EC-ABC")
	assert.Len(t, aircraft.Bookings, 1)
	assert.Zero(t, aircraft.ScheduledFlightMinutes)
}

func TestIsSoloMatchesCommentAndLesson(t *testing.T) {
	details := &BookingDetails{Comment: "First SOLO flight"}
	assert.True(t, details.IsSolo())

	details = &BookingDetails{PlannedLesson: "Lesson 12 - Solo circuit"}
	assert.True(t, details.IsSolo())

	details = &BookingDetails{Comment: "dual check", PlannedLesson: "Lesson 3"}
	assert.False(t, details.IsSolo())
}
