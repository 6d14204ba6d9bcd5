// Package school
package school

import (
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/flightlogger"
)

const (
	typeSingleStudentBooking = "SingleStudentBooking"
	typeRentalBooking        = "RentalBooking"
	typeOperationBooking     = "OperationBooking"
)

// classifyBooking 根据判别标签构建对应的预订变体, 并把预订登记到所引用的飞机上.
// 每个原始节点只构建一次, 登记因此对单个预订实例天然幂等.
// 未知判别标签和找不到对应飞机的孤儿预订都是致命错误,
// 单学员预订缺少计划课程记为数据质量警告
func classifyBooking(node flightlogger.Record, fleet *Fleet, context *SchedulingContext) (Booking, []string, error) {
	details, err := bookingDetails(node, fleet)
	if err != nil {
		return nil, nil, err
	}

	var booking Booking
	var warnings []string

	switch node.TypeName() {
	case typeSingleStudentBooking:
		instructor, err := partyCallSign(node, "instructor")
		if err != nil {
			return nil, nil, err
		}
		student, err := partyCallSign(node, "student")
		if err != nil {
			return nil, nil, err
		}
		if plannedLesson := node.OptSub("plannedLesson"); plannedLesson != nil {
			lecture, err := plannedLesson.Sub("lecture")
			if err != nil {
				return nil, nil, err
			}
			if details.PlannedLesson, err = lecture.Str("name"); err != nil {
				return nil, nil, err
			}
		} else {
			warnings = append(warnings, fmt.Sprintf("single student booking %s has no planned lesson", details.Id))
		}
		booking = &SingleStudentBooking{BookingDetails: *details, InstructorCallSign: instructor, StudentCallSign: student}
	case typeRentalBooking:
		renter, err := partyCallSign(node, "renter")
		if err != nil {
			return nil, nil, err
		}
		booking = &RentalBooking{BookingDetails: *details, RenterCallSign: renter}
	case typeOperationBooking:
		pic, err := partyCallSign(node, "pic")
		if err != nil {
			return nil, nil, err
		}
		booking = &OperationBooking{BookingDetails: *details, PicCallSign: pic}
	default:
		return nil, nil, fmt.Errorf("booking %s has unknown type %q", details.Id, node.TypeName())
	}

	booking.Details().Aircraft.registerBooking(booking, context)

	return booking, warnings, nil
}

func bookingDetails(node flightlogger.Record, fleet *Fleet) (*BookingDetails, error) {
	id, err := node.Str("id")
	if err != nil {
		return nil, err
	}
	startsAt, err := node.Time("startsAt")
	if err != nil {
		return nil, err
	}
	endsAt, err := node.Time("endsAt")
	if err != nil {
		return nil, err
	}
	status, err := node.Str("status")
	if err != nil {
		return nil, err
	}
	flightStartsAt, err := node.Time("flightStartsAt")
	if err != nil {
		return nil, err
	}
	flightEndsAt, err := node.Time("flightEndsAt")
	if err != nil {
		return nil, err
	}

	aircraftNode, err := node.Sub("aircraft")
	if err != nil {
		return nil, err
	}
	aircraftCallSign, err := aircraftNode.Str("callSign")
	if err != nil {
		return nil, err
	}
	// 找不到对应飞机说明两次抓取之间数据不一致, 不能静默丢弃
	aircraft := fleet.ByCallSign(aircraftCallSign)
	if aircraft == nil {
		return nil, fmt.Errorf("booking %s references unknown aircraft %q", id, aircraftCallSign)
	}

	return &BookingDetails{
		Id:       id,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Comment:  node.OptStr("comment"),
		Status:   BookingStatus(status),
		Flight:   NewFlight(flightStartsAt, flightEndsAt),
		Aircraft: aircraft,
	}, nil
}

func partyCallSign(node flightlogger.Record, party string) (string, error) {
	partyNode, err := node.Sub(party)
	if err != nil {
		return "", err
	}
	return partyNode.Str("callSign")
}
