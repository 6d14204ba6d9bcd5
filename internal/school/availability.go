// Package school
package school

import "time"

type AvailabilitySlot struct {
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Unavailable bool      `json:"unavailable"`
}

// IsAvailable 判断某人在排班日是否有空.
// 规则: 存在至少一个未标记unavailable的时段, 排班日落在其[开始日期, 结束日期]闭区间内,
// 且该时段没有被另一个标记unavailable的时段完整包含(整月封锁会覆盖掉单日开放).
// 没有任何时段时视为没空
func IsAvailable(slots []AvailabilitySlot, context *SchedulingContext) bool {
	for _, slot := range slots {
		if slot.Unavailable {
			continue
		}
		if context.Date().Before(context.DateOf(slot.StartsAt)) || context.Date().After(context.DateOf(slot.EndsAt)) {
			continue
		}
		if !overriddenByBlock(slot, slots) {
			return true
		}
	}
	return false
}

// overriddenByBlock 检查时段是否被某个不可用时段完整包含
func overriddenByBlock(slot AvailabilitySlot, slots []AvailabilitySlot) bool {
	for _, other := range slots {
		if !other.Unavailable {
			continue
		}
		if !other.StartsAt.After(slot.StartsAt) && !other.EndsAt.Before(slot.EndsAt) {
			return true
		}
	}
	return false
}
