// Package flightlogger
package flightlogger

import (
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/global"
	"time"
)

const aircraftQuery = `
query Aircraft($after: String) {
	aircraft(after: $after) {
		pageInfo {
			endCursor
			hasNextPage
		}
		nodes {
			id
			callSign
			totalAirborneMinutes
			aircraftClass
		}
	}
}`

// usersQueryTemplate 的日期参数是schema里的字面量, 无法作为变量传递, 所以格式化进查询文本
const usersQueryTemplate = `
query Users($roles: [UserRoleEnum!], $num_users: Int, $after: String) {
	users(first: $num_users, roles: $roles, after: $after) {
		pageInfo {
			endCursor
			hasNextPage
		}
		nodes {
			callSign
			id
			contact {
				address
				city
				zipcode
			}
			userPrograms {
				nodes {
					program {
						name
					}
				}
			}
			availabilities(from: "%s") {
				nodes {
					startsAt
					endsAt
					unavailable
				}
			}
			flights(all: true, from: "%s") {
				nodes {
					offBlock
					onBlock
				}
			}
		}
	}
}`

const classesQuery = `
query Classes($after: String) {
	classes(after: $after) {
		pageInfo {
			endCursor
			hasNextPage
		}
		nodes {
			name
			users {
				callSign
			}
		}
	}
}`

const bookingsQueryTemplate = `
query Bookings($after: String) {
	bookings(all: true, from: "%s", subtypes: [SINGLE_STUDENT, RENTAL, OPERATION], after: $after) {
		pageInfo {
			endCursor
			hasNextPage
		}
		nodes {
			__typename
			... on SingleStudentBooking {
				startsAt
				endsAt
				comment
				id
				status
				instructor {
					callSign
				}
				student {
					callSign
				}
				flightStartsAt
				flightEndsAt
				plannedLesson {
					lecture {
						name
					}
				}
				aircraft {
					callSign
				}
			}
			... on RentalBooking {
				startsAt
				endsAt
				comment
				id
				status
				renter {
					callSign
				}
				flightStartsAt
				flightEndsAt
				aircraft {
					callSign
				}
			}
			... on OperationBooking {
				startsAt
				endsAt
				comment
				id
				status
				pic {
					callSign
				}
				flightStartsAt
				flightEndsAt
				aircraft {
					callSign
				}
			}
		}
	}
}`

const trainingsQuery = `
query Trainings($user_ids: [ID!], $after: String) {
	trainings(userIds: $user_ids, statuses: [NOT_FLOWN], after: $after) {
		pageInfo {
			endCursor
			hasNextPage
		}
		nodes {
			id
			name
			status
			user {
				id
				callSign
			}
			program {
				name
			}
			lecture {
				vfrDualMinutes
				ifrDualMinutes
				vfrSoloMinutes
				vfrSimMinutes
				ifrSimMinutes
				ifrSpicMinutes
				vfrSpicMinutes
			}
		}
	}
}`

// FetchAircraft 获取全部飞机节点
func (client *Client) FetchAircraft() ([]Record, error) {
	return client.FetchAll(aircraftQuery, nil)
}

// FetchUsersByRole 按角色获取用户节点, availabilities限定在排班日之后,
// flights的回溯窗口由调用方按角色给定(教员自月初, 学员回溯若干天)
func (client *Client) FetchUsersByRole(role string, pageSize int, availabilityFrom, flightsFrom time.Time) ([]Record, error) {
	query := fmt.Sprintf(usersQueryTemplate,
		availabilityFrom.Format(global.DateLayout),
		flightsFrom.Format(global.DateLayout),
	)
	variables := map[string]interface{}{
		"roles":     []string{role},
		"num_users": pageSize,
	}
	return client.FetchAll(query, variables)
}

// FetchClasses 获取全部班级节点
func (client *Client) FetchClasses() ([]Record, error) {
	return client.FetchAll(classesQuery, nil)
}

// FetchBookings 获取从给定日期起的全部预订节点, 三种子类型都带判别标签
func (client *Client) FetchBookings(from time.Time) ([]Record, error) {
	query := fmt.Sprintf(bookingsQueryTemplate, from.Format(global.DateLayout))
	return client.FetchAll(query, nil)
}

// FetchTrainings 获取给定用户集合的未飞行训练节点
func (client *Client) FetchTrainings(userIds []string) ([]Record, error) {
	variables := map[string]interface{}{
		"user_ids": userIds,
	}
	return client.FetchAll(trainingsQuery, variables)
}
