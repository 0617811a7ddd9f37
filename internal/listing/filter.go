// Package listing filters and sorts lists already held in memory.
package listing

import (
	"strings"

	"github.com/noah-isme/edu-admin-client/internal/models"
)

// Predicate reports whether an item is kept.
type Predicate[T any] func(T) bool

// All combines predicates with AND. Nil predicates are skipped.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	return func(item T) bool {
		for _, p := range active {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Match returns the items accepted by pred in their original order.
func Match[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred == nil || pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Skip reports whether a filter value means "no filter".
func Skip(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, models.All)
}

// Exact keeps items whose field equals want, ignoring case. It returns nil
// when want is empty or the "all" sentinel.
func Exact[T any](want string, field func(T) string) Predicate[T] {
	if Skip(want) {
		return nil
	}
	want = strings.TrimSpace(want)
	return func(item T) bool {
		return strings.EqualFold(field(item), want)
	}
}

// Equal keeps items whose id field equals want. Zero means no filter.
func Equal[T any](want int64, field func(T) int64) Predicate[T] {
	if want == 0 {
		return nil
	}
	return func(item T) bool {
		return field(item) == want
	}
}

// Contains keeps items where any field contains term, ignoring case. It
// returns nil for a blank term.
func Contains[T any](term string, fields ...func(T) string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return func(item T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(item)), term) {
				return true
			}
		}
		return false
	}
}

// FilterStudents applies search, status, country and family filters.
func FilterStudents(students []models.Student, f models.StudentFilter) []models.Student {
	return Match(students, All(
		Contains(f.Search,
			func(s models.Student) string { return s.Name },
			func(s models.Student) string { return s.Email },
			func(s models.Student) string { return s.Phone },
		),
		Exact(f.Status, func(s models.Student) string { return s.Status }),
		Exact(f.Country, func(s models.Student) string { return s.Country }),
		Equal(f.FamilyID, func(s models.Student) int64 { return deref(s.FamilyID) }),
	))
}

// FilterTeachers applies search, status and specialty filters.
func FilterTeachers(teachers []models.Teacher, f models.TeacherFilter) []models.Teacher {
	return Match(teachers, All(
		Contains(f.Search,
			func(t models.Teacher) string { return t.Name },
			func(t models.Teacher) string { return t.Email },
			func(t models.Teacher) string { return t.Specialty },
		),
		Exact(f.Status, func(t models.Teacher) string { return t.Status }),
		Exact(f.Specialty, func(t models.Teacher) string { return t.Specialty }),
	))
}

// FilterLeads applies search, status, source, country and assignee filters.
func FilterLeads(leads []models.Lead, f models.LeadFilter) []models.Lead {
	return Match(leads, All(
		Contains(f.Search,
			func(l models.Lead) string { return l.Name },
			func(l models.Lead) string { return l.Email },
			func(l models.Lead) string { return l.Phone },
		),
		Exact(f.Status, func(l models.Lead) string { return string(l.Status) }),
		Exact(f.Source, func(l models.Lead) string { return l.Source }),
		Exact(f.Country, func(l models.Lead) string { return l.Country }),
		Equal(f.AssignedTo, func(l models.Lead) int64 { return deref(l.AssignedTo) }),
	))
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
