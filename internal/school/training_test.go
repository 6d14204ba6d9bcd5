// Package school
package school

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstAirTimePriority(t *testing.T) {
	minutes := &LectureMinutes{VfrSolo: 45, IfrSim: 60}
	assert.InDelta(t, 45, minutes.FirstAirTime(), 0.01)

	minutes = &LectureMinutes{VfrDual: 90, VfrSolo: 45}
	assert.InDelta(t, 90, minutes.FirstAirTime(), 0.01)

	minutes = &LectureMinutes{VfrSpic: 30}
	assert.InDelta(t, 30, minutes.FirstAirTime(), 0.01)

	minutes = &LectureMinutes{}
	assert.Zero(t, minutes.FirstAirTime())
}

func TestTrainingOrder(t *testing.T) {
	tests := []struct {
		program  string
		training string
		expected int
	}{
		{"PPL(A)", "Lesson 5", 1},
		{"LAPL(A)", "Lesson 2", 1},
		// PPL分支优先于Skill检查
		{"PPL(A)", "Skill Test", 1},
		{"TIME BUILDING", "Block 1", 2},
		{"IR(A) BASIC", "Lesson 1", 3},
		{"NIGHT RATING", "NVFR 2", 4},
		{"MEP Initial", "Lesson 1", 5},
		{"IR-MEPL", "Lesson 4", 6},
		{"IR-MEPL", "Skill Test", 8},
		{"CPL(A)", "Lesson 9", 7},
		{"CPL(A)", "Skill Test", 8},
		{"ATP Integrated", "Phase 1", 99},
		{"FI(A)", "Teaching 1", 100},
		{"Something else", "Lesson 1", 0},
	}
	for _, test := range tests {
		order := trainingOrder(test.program, test.training)
		assert.Equal(t, test.expected, order, "program %q training %q", test.program, test.training)
	}
}

func TestSortTrainings(t *testing.T) {
	trainings := []*Training{
		NewTraining("1", "Skill Test", "NOT_FLOWN", Program{Name: "CPL(A)"}, LectureMinutes{}),
		NewTraining("2", "Lesson 2", "NOT_FLOWN", Program{Name: "PPL(A)"}, LectureMinutes{}),
		NewTraining("3", "Lesson 1", "NOT_FLOWN", Program{Name: "PPL(A)"}, LectureMinutes{}),
		NewTraining("4", "Block 3", "NOT_FLOWN", Program{Name: "TIME BUILDING"}, LectureMinutes{}),
	}
	SortTrainings(trainings)

	names := make([]string, 0, len(trainings))
	for _, training := range trainings {
		names = append(names, training.Name)
	}
	assert.Equal(t, []string{"Lesson 1", "Lesson 2", "Block 3", "Skill Test"}, names)
}
