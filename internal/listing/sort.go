package listing

import (
	"sort"
	"strings"

	"github.com/noah-isme/edu-admin-client/internal/models"
)

// SortField names a sortable student column.
type SortField string

const (
	SortByName         SortField = "name"
	SortByEmail        SortField = "email"
	SortByCoursesCount SortField = "coursesCount"
	SortByCreatedAt    SortField = "createdAt"
	SortByStatus       SortField = "status"
)

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func (d Direction) multiplier() int {
	if d == Desc {
		return -1
	}
	return 1
}

var studentComparators = map[SortField]func(a, b models.Student) int{
	SortByName: func(a, b models.Student) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	},
	SortByEmail: func(a, b models.Student) int {
		return strings.Compare(strings.ToLower(a.Email), strings.ToLower(b.Email))
	},
	SortByCoursesCount: func(a, b models.Student) int { return a.CoursesCount - b.CoursesCount },
	SortByCreatedAt:    func(a, b models.Student) int { return a.CreatedAt.Compare(b.CreatedAt) },
	SortByStatus:       func(a, b models.Student) int { return strings.Compare(a.Status, b.Status) },
}

// SortStudents returns a stably sorted copy. Unknown fields leave the order
// untouched.
func SortStudents(students []models.Student, field SortField, dir Direction) []models.Student {
	out := make([]models.Student, len(students))
	copy(out, students)
	cmp, ok := studentComparators[field]
	if !ok {
		return out
	}
	m := dir.multiplier()
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j])*m < 0
	})
	return out
}
