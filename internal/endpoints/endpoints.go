// Package endpoints is the static registry of backend URL templates.
package endpoints

import (
	"net/url"
	"strconv"
	"strings"
)

// Scope selects the panel prefix a resource is served under.
type Scope string

const (
	ScopeAdmin   Scope = "admin"
	ScopeTeacher Scope = "teacher"
)

// Auth endpoints.
const (
	AuthLogin          = "/auth/login"
	AuthLogout         = "/auth/logout"
	AuthRefresh        = "/auth/refresh"
	AuthMe             = "/auth/me"
	AuthForgotPassword = "/auth/forgot-password"
	AuthResetPassword  = "/auth/reset-password/:token"
)

// Resource names used in /{scope}/{resource} paths.
const (
	Students   = "students"
	Teachers   = "teachers"
	Courses    = "courses"
	Families   = "families"
	Leads      = "leads"
	Trials     = "trials"
	Packages   = "packages"
	Roles      = "roles"
	Salaries   = "salaries"
	Expenses   = "expenses"
	Activity   = "activity"
	Reports    = "reports"
	Users      = "users"
	Timetables = "timetables"
	Classes    = "classes"
)

// Admin-only templates that do not follow the plain collection/item shape.
const (
	StudentProfile    = "/admin/students/:id/profile"
	TeacherProfile    = "/admin/teachers/:id/profile"
	LeadStatus        = "/admin/leads/:id/status"
	LeadConvert       = "/admin/leads/:id/convert"
	LeadsBulkStatus   = "/admin/leads/bulk-status"
	UserStatus        = "/admin/users/:id/status"
	UserRole          = "/admin/users/:id/role"
	Permissions       = "/admin/permissions"
	PagePermissions   = "/admin/permissions/pages"
	FinancialSummary  = "/admin/financials/summary"
	ExchangeRates     = "/admin/financials/exchange-rates"
	ReportsBulkNotify = "/admin/reports/bulk-notify"
	SalaryMarkPaid    = "/admin/salaries/:id/mark-paid"
	SharedReport      = "/reports/shared/:token"
)

// Templates parametrised by scope.
const (
	trialStatus    = "/:scope/trials/:id/status"
	trialReview    = "/:scope/trials/:id/review"
	trialConvert   = "/:scope/trials/:id/convert"
	reportPDF      = "/:scope/reports/:id/pdf"
	timetablePDF   = "/:scope/timetables/:id/pdf"
	scheduleExport = "/:scope/timetables/export"
	classStatus    = "/:scope/classes/:id/status"
)

// Collection returns /{scope}/{resource}.
func Collection(scope Scope, resource string) string {
	return "/" + string(scope) + "/" + resource
}

// Item returns /{scope}/{resource}/{id}.
func Item(scope Scope, resource string, id int64) string {
	return Collection(scope, resource) + "/" + strconv.FormatInt(id, 10)
}

// Action returns /{scope}/{resource}/{id}/{action}.
func Action(scope Scope, resource string, id int64, action string) string {
	return Item(scope, resource, id) + "/" + action
}

// WithID substitutes :id in template.
func WithID(template string, id int64) string {
	return strings.Replace(template, ":id", strconv.FormatInt(id, 10), 1)
}

// WithToken substitutes :token in template, escaping it as a path segment.
func WithToken(template, token string) string {
	return strings.Replace(template, ":token", url.PathEscape(token), 1)
}

func scoped(template string, scope Scope, id int64) string {
	return WithID(strings.Replace(template, ":scope", string(scope), 1), id)
}

// TrialStatus is the trial status transition endpoint.
func TrialStatus(scope Scope, id int64) string { return scoped(trialStatus, scope, id) }

// TrialReview is the teacher review endpoint of a trial.
func TrialReview(scope Scope, id int64) string { return scoped(trialReview, scope, id) }

// TrialConvert enrols the student of a reviewed trial.
func TrialConvert(scope Scope, id int64) string { return scoped(trialConvert, scope, id) }

// ReportPDF streams a report as PDF.
func ReportPDF(scope Scope, id int64) string { return scoped(reportPDF, scope, id) }

// TimetablePDF streams a class schedule as PDF.
func TimetablePDF(scope Scope, id int64) string { return scoped(timetablePDF, scope, id) }

// ScheduleExport streams the filtered schedule as PDF.
func ScheduleExport(scope Scope) string { return scoped(scheduleExport, scope, 0) }

// ClassStatus updates the state of one class occurrence.
func ClassStatus(scope Scope, id int64) string { return scoped(classStatus, scope, id) }
