// Package school
package school

import "time"

// Flight 一次已完成或已计划的飞行, 构建后不可变
type Flight struct {
	OffBlock        time.Time `json:"off_block"`
	OnBlock         time.Time `json:"on_block"`
	AirborneMinutes float64   `json:"airborne_minutes"`
}

func NewFlight(offBlock, onBlock time.Time) *Flight {
	return &Flight{
		OffBlock:        offBlock,
		OnBlock:         onBlock,
		AirborneMinutes: onBlock.Sub(offBlock).Minutes(),
	}
}
