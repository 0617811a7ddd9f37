package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
)

// Services bundles every admin panel service around one client.
type Services struct {
	Auth       *AuthService
	Students   *StudentService
	Teachers   *TeacherService
	Courses    *CourseService
	Families   *FamilyService
	Leads      *LeadService
	Trials     *TrialService
	Packages   *PackageService
	Roles      *RoleService
	Salaries   *SalaryService
	Financials *FinancialService
	Activity   *ActivityService
	Reports    *ReportService
	Users      *UserService
	Timetables *TimetableService
	Classes    *ClassService
}

// New builds the admin panel services.
func New(client apiClient, opts ...Option) *Services {
	opts = shared(opts, endpoints.ScopeAdmin)
	return &Services{
		Auth:       NewAuthService(client, opts...),
		Students:   NewStudentService(client, opts...),
		Teachers:   NewTeacherService(client, opts...),
		Courses:    NewCourseService(client, opts...),
		Families:   NewFamilyService(client, opts...),
		Leads:      NewLeadService(client, opts...),
		Trials:     NewTrialService(client, opts...),
		Packages:   NewPackageService(client, opts...),
		Roles:      NewRoleService(client, opts...),
		Salaries:   NewSalaryService(client, opts...),
		Financials: NewFinancialService(client, opts...),
		Activity:   NewActivityService(client, opts...),
		Reports:    NewReportService(client, opts...),
		Users:      NewUserService(client, opts...),
		Timetables: NewTimetableService(client, opts...),
		Classes:    NewClassService(client, opts...),
	}
}

// TeacherPanel bundles the services the teacher panel reaches under /teacher.
type TeacherPanel struct {
	Classes    *ClassService
	Timetables *TimetableService
	Reports    *ReportService
	Salaries   *SalaryService
	Trials     *TrialService
}

// NewTeacherPanel builds the teacher-scoped services.
func NewTeacherPanel(client apiClient, opts ...Option) *TeacherPanel {
	opts = shared(opts, endpoints.ScopeTeacher)
	return &TeacherPanel{
		Classes:    NewClassService(client, opts...),
		Timetables: NewTimetableService(client, opts...),
		Reports:    NewReportService(client, opts...),
		Salaries:   NewSalaryService(client, opts...),
		Trials:     NewTrialService(client, opts...),
	}
}

// shared gives every service of a bundle one validator and the bundle scope.
func shared(opts []Option, scope endpoints.Scope) []Option {
	out := make([]Option, 0, len(opts)+2)
	out = append(out, WithValidator(validator.New()))
	out = append(out, opts...)
	return append(out, WithScope(scope))
}
