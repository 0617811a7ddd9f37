package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionItemAction(t *testing.T) {
	assert.Equal(t, "/admin/students", Collection(ScopeAdmin, Students))
	assert.Equal(t, "/teacher/classes/9", Item(ScopeTeacher, Classes, 9))
	assert.Equal(t, "/admin/leads/3/convert", Action(ScopeAdmin, Leads, 3, "convert"))
}

func TestTemplates(t *testing.T) {
	assert.Equal(t, "/admin/students/12/profile", WithID(StudentProfile, 12))
	assert.Equal(t, "/auth/reset-password/a%2Fb", WithToken(AuthResetPassword, "a/b"))
	assert.Equal(t, "/teacher/trials/4/review", TrialReview(ScopeTeacher, 4))
	assert.Equal(t, "/admin/reports/5/pdf", ReportPDF(ScopeAdmin, 5))
	assert.Equal(t, "/teacher/timetables/export", ScheduleExport(ScopeTeacher))
}
