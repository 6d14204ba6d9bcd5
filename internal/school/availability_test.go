// Package school
package school

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, date string) *SchedulingContext {
	t.Helper()
	location, err := time.LoadLocation("Atlantic/Canary")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	parsed, err := time.ParseInLocation("2006-01-02", date, location)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return NewSchedulingContext(parsed, location)
}

func slot(starts, ends string, unavailable bool) AvailabilitySlot {
	startsAt, _ := time.Parse(time.RFC3339, starts)
	endsAt, _ := time.Parse(time.RFC3339, ends)
	return AvailabilitySlot{StartsAt: startsAt, EndsAt: endsAt, Unavailable: unavailable}
}

func TestIsAvailableOpenSlotOnDate(t *testing.T) {
	context := testContext(t, "2026-01-10")
	slots := []AvailabilitySlot{
		slot("2026-01-10T09:00:00Z", "2026-01-10T17:00:00Z", false),
	}
	assert.True(t, IsAvailable(slots, context))
}

func TestIsAvailableDateOutsideSlot(t *testing.T) {
	context := testContext(t, "2026-01-11")
	slots := []AvailabilitySlot{
		slot("2026-01-10T09:00:00Z", "2026-01-10T17:00:00Z", false),
	}
	assert.False(t, IsAvailable(slots, context))
}

func TestIsAvailableBoundaryDatesInclusive(t *testing.T) {
	slots := []AvailabilitySlot{
		slot("2026-01-05T09:00:00Z", "2026-01-08T17:00:00Z", false),
	}
	assert.True(t, IsAvailable(slots, testContext(t, "2026-01-05")))
	assert.True(t, IsAvailable(slots, testContext(t, "2026-01-08")))
	assert.False(t, IsAvailable(slots, testContext(t, "2026-01-04")))
	assert.False(t, IsAvailable(slots, testContext(t, "2026-01-09")))
}

func TestIsAvailableMonthBlockOverridesDay(t *testing.T) {
	context := testContext(t, "2026-01-10")
	slots := []AvailabilitySlot{
		slot("2026-01-10T09:00:00Z", "2026-01-10T17:00:00Z", false),
		slot("2026-01-01T00:00:00Z", "2026-01-31T23:59:59Z", true),
	}
	assert.False(t, IsAvailable(slots, context))
}

func TestIsAvailablePartialBlockDoesNotOverride(t *testing.T) {
	context := testContext(t, "2026-01-10")
	slots := []AvailabilitySlot{
		slot("2026-01-10T09:00:00Z", "2026-01-10T17:00:00Z", false),
		// 不可用时段没有完整包含开放时段, 不构成覆盖
		slot("2026-01-10T10:00:00Z", "2026-01-10T12:00:00Z", true),
	}
	assert.True(t, IsAvailable(slots, context))
}

func TestIsAvailableNoSlots(t *testing.T) {
	assert.False(t, IsAvailable(nil, testContext(t, "2026-01-10")))
}
