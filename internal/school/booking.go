// Package school
package school

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// BookingDetails 三种预订变体共有的字段
type BookingDetails struct {
	Id            string        `json:"id"`
	StartsAt      time.Time     `json:"starts_at"`
	EndsAt        time.Time     `json:"ends_at"`
	Comment       string        `json:"comment"`
	Status        BookingStatus `json:"status"`
	Flight        *Flight       `json:"flight"`
	Aircraft      *Aircraft     `json:"-"`
	PlannedLesson string        `json:"planned_lesson"` // 计划课程的课名, 没有计划课程时为空
}

func (details *BookingDetails) IsCancelled() bool {
	return details.Status == BookingCancelled
}

// IsSolo 备注或计划课程名中出现solo(不区分大小写)即视为单飞
func (details *BookingDetails) IsSolo() bool {
	return strings.Contains(strings.ToLower(details.Comment), "solo") ||
		strings.Contains(strings.ToLower(details.PlannedLesson), "solo")
}

// Booking 预订的标签联合, 参与方字段只存在于匹配的变体类型上,
// 消费方必须先断言具体变体再读取参与方
type Booking interface {
	Details() *BookingDetails
	// PartyCallSigns 此预订应出现在哪些人的日程里
	PartyCallSigns() []string
}

// SingleStudentBooking 单学员带飞: 教员+学员+计划课程
type SingleStudentBooking struct {
	BookingDetails
	InstructorCallSign string `json:"instructor_call_sign"`
	StudentCallSign    string `json:"student_call_sign"`
}

func (booking *SingleStudentBooking) Details() *BookingDetails { return &booking.BookingDetails }

func (booking *SingleStudentBooking) PartyCallSigns() []string {
	return []string{booking.InstructorCallSign, booking.StudentCallSign}
}

// RentalBooking 租机: 仅承租人
type RentalBooking struct {
	BookingDetails
	RenterCallSign string `json:"renter_call_sign"`
}

func (booking *RentalBooking) Details() *BookingDetails { return &booking.BookingDetails }

func (booking *RentalBooking) PartyCallSigns() []string {
	return []string{booking.RenterCallSign}
}

// OperationBooking 运营飞行: 仅机长
type OperationBooking struct {
	BookingDetails
	PicCallSign string `json:"pic_call_sign"`
}

func (booking *OperationBooking) Details() *BookingDetails { return &booking.BookingDetails }

func (booking *OperationBooking) PartyCallSigns() []string {
	return []string{booking.PicCallSign}
}
