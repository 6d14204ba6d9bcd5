// Package school
package school

import (
	"sort"
	"strings"
)

// LectureMinutes 课程的飞行分钟数拆分
type LectureMinutes struct {
	VfrDual float64 `json:"vfr_dual_minutes"`
	IfrDual float64 `json:"ifr_dual_minutes"`
	VfrSolo float64 `json:"vfr_solo_minutes"`
	VfrSim  float64 `json:"vfr_sim_minutes"`
	IfrSim  float64 `json:"ifr_sim_minutes"`
	IfrSpic float64 `json:"ifr_spic_minutes"`
	VfrSpic float64 `json:"vfr_spic_minutes"`
}

// FirstAirTime 按固定优先级取第一个非零的分钟数字段
func (minutes *LectureMinutes) FirstAirTime() float64 {
	ordered := []float64{
		minutes.VfrDual,
		minutes.IfrDual,
		minutes.VfrSolo,
		minutes.VfrSim,
		minutes.IfrSim,
		minutes.IfrSpic,
		minutes.VfrSpic,
	}
	for _, value := range ordered {
		if value != 0 {
			return value
		}
	}
	return 0
}

type Training struct {
	Id             string         `json:"id"`
	Name           string         `json:"name"`
	Status         string         `json:"status"`
	Program        Program        `json:"program"`
	Lecture        LectureMinutes `json:"lecture"`
	Order          int            `json:"order"`
	AirTimeMinutes float64        `json:"air_time_minutes"`
	Booked         bool           `json:"booked"`
}

func NewTraining(id, name, status string, program Program, lecture LectureMinutes) *Training {
	return &Training{
		Id:             id,
		Name:           name,
		Status:         status,
		Program:        program,
		Lecture:        lecture,
		Order:          trainingOrder(program.Name, name),
		AirTimeMinutes: lecture.FirstAirTime(),
	}
}

// trainingOrder 把课程按教学大纲阶段排出优先级, 规则按序匹配, 先中先得.
// 注意Skill的剔除只嵌在IR-MEPL和CPL两个分支里, PPL分支不受训练名里的Skill影响
func trainingOrder(programName, trainingName string) int {
	switch {
	case strings.Contains(programName, "PPL") || strings.Contains(programName, "LAPL"):
		return 1
	case strings.Contains(programName, "TIME BUILDING"):
		return 2
	case strings.Contains(programName, "IR") && strings.Contains(programName, "BASIC"):
		return 3
	case strings.Contains(programName, "NIGHT"):
		return 4
	case strings.Contains(programName, "MEP") && strings.Contains(programName, "Initial"):
		return 5
	case strings.Contains(programName, "IR-MEPL") && !strings.Contains(trainingName, "Skill"):
		return 6
	case strings.Contains(programName, "CPL") && !strings.Contains(trainingName, "Skill"):
		return 7
	case strings.Contains(trainingName, "Skill"):
		return 8
	case strings.Contains(programName, "ATP"):
		return 99
	case strings.Contains(programName, "FI"):
		return 100
	default:
		return 0
	}
}

// SortTrainings 按(优先级, 名称)升序排列
func SortTrainings(trainings []*Training) {
	sort.SliceStable(trainings, func(i, j int) bool {
		if trainings[i].Order != trainings[j].Order {
			return trainings[i].Order < trainings[j].Order
		}
		return trainings[i].Name < trainings[j].Name
	})
}
