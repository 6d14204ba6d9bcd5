// Package school
package school

import (
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/flightlogger"
	"sort"
)

// normalizeAircraft 原始节点到飞机实体的直接投影
func normalizeAircraft(node flightlogger.Record) (*Aircraft, error) {
	id, err := node.Str("id")
	if err != nil {
		return nil, err
	}
	callSign, err := node.Str("callSign")
	if err != nil {
		return nil, err
	}
	totalAirborneMinutes, err := node.Float("totalAirborneMinutes")
	if err != nil {
		return nil, err
	}
	return &Aircraft{
		Id:                   id,
		CallSign:             callSign,
		TotalAirborneMinutes: totalAirborneMinutes,
		AircraftClass:        node.OptStr("aircraftClass"),
	}, nil
}

func normalizeFlight(node flightlogger.Record) (*Flight, error) {
	offBlock, err := node.Time("offBlock")
	if err != nil {
		return nil, err
	}
	onBlock, err := node.Time("onBlock")
	if err != nil {
		return nil, err
	}
	return NewFlight(offBlock, onBlock), nil
}

func normalizeSlot(node flightlogger.Record) (AvailabilitySlot, error) {
	startsAt, err := node.Time("startsAt")
	if err != nil {
		return AvailabilitySlot{}, err
	}
	endsAt, err := node.Time("endsAt")
	if err != nil {
		return AvailabilitySlot{}, err
	}
	return AvailabilitySlot{
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		Unavailable: node.Bool("unavailable"),
	}, nil
}

// normalizeUser 构建用户及其拥有的课程/飞行/空闲时段,
// 飞行按离场时间从新到旧排序, 空闲时段保持抓取顺序
func normalizeUser(node flightlogger.Record, role Role) (*User, error) {
	callSign, err := node.Str("callSign")
	if err != nil {
		return nil, err
	}
	id, err := node.Str("id")
	if err != nil {
		return nil, err
	}

	user := &User{
		CallSign:            callSign,
		Id:                  id,
		Role:                role,
		DaysSinceLastFlight: DaysUnknown,
	}

	if contact := node.OptSub("contact"); contact != nil {
		user.Address = contact.OptStr("address")
		user.City = contact.OptStr("city")
		user.Zipcode = contact.OptStr("zipcode")
	}

	programNodes, err := node.Nodes("userPrograms")
	if err != nil {
		return nil, err
	}
	for _, programNode := range programNodes {
		program, err := programNode.Sub("program")
		if err != nil {
			return nil, err
		}
		name, err := program.Str("name")
		if err != nil {
			return nil, err
		}
		user.Programs = append(user.Programs, Program{Name: name})
	}

	flightNodes, err := node.Nodes("flights")
	if err != nil {
		return nil, err
	}
	for _, flightNode := range flightNodes {
		flight, err := normalizeFlight(flightNode)
		if err != nil {
			return nil, err
		}
		user.Flights = append(user.Flights, flight)
	}
	sort.SliceStable(user.Flights, func(i, j int) bool {
		return user.Flights[i].OffBlock.After(user.Flights[j].OffBlock)
	})

	slotNodes, err := node.Nodes("availabilities")
	if err != nil {
		return nil, err
	}
	for _, slotNode := range slotNodes {
		slot, err := normalizeSlot(slotNode)
		if err != nil {
			return nil, err
		}
		user.Availabilities = append(user.Availabilities, slot)
	}

	return user, nil
}

// normalizeTraining 构建训练并返回其所属用户的id
func normalizeTraining(node flightlogger.Record) (*Training, string, error) {
	id, err := node.Str("id")
	if err != nil {
		return nil, "", err
	}
	name, err := node.Str("name")
	if err != nil {
		return nil, "", err
	}
	status, err := node.Str("status")
	if err != nil {
		return nil, "", err
	}

	owner, err := node.Sub("user")
	if err != nil {
		return nil, "", err
	}
	userId, err := owner.Str("id")
	if err != nil {
		return nil, "", err
	}

	program, err := node.Sub("program")
	if err != nil {
		return nil, "", err
	}
	programName, err := program.Str("name")
	if err != nil {
		return nil, "", err
	}

	lectureNode, err := node.Sub("lecture")
	if err != nil {
		return nil, "", err
	}
	lecture := LectureMinutes{
		VfrDual: lectureNode.OptFloat("vfrDualMinutes"),
		IfrDual: lectureNode.OptFloat("ifrDualMinutes"),
		VfrSolo: lectureNode.OptFloat("vfrSoloMinutes"),
		VfrSim:  lectureNode.OptFloat("vfrSimMinutes"),
		IfrSim:  lectureNode.OptFloat("ifrSimMinutes"),
		IfrSpic: lectureNode.OptFloat("ifrSpicMinutes"),
		VfrSpic: lectureNode.OptFloat("vfrSpicMinutes"),
	}

	return NewTraining(id, name, status, Program{Name: programName}, lecture), userId, nil
}
