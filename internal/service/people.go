package service

import (
	"context"
	"net/http"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
	"github.com/noah-isme/edu-admin-client/internal/models"
)

// StudentService wraps /admin/students.
type StudentService struct {
	crud[models.Student, models.StudentFilter, models.StudentInput]
}

// NewStudentService constructs the student service.
func NewStudentService(client apiClient, opts ...Option) *StudentService {
	return &StudentService{crud: newCRUD[models.Student, models.StudentFilter, models.StudentInput](client, endpoints.Students, "student", opts)}
}

// Profile returns the student with courses, packages, upcoming classes and stats.
func (s *StudentService) Profile(ctx context.Context, id int64) (*models.StudentProfile, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	return fetchOne[models.StudentProfile](ctx, s.base, endpoints.WithID(endpoints.StudentProfile, id), nil, "student not found")
}

// TeacherService wraps /admin/teachers.
type TeacherService struct {
	crud[models.Teacher, models.TeacherFilter, models.TeacherInput]
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(client apiClient, opts ...Option) *TeacherService {
	return &TeacherService{crud: newCRUD[models.Teacher, models.TeacherFilter, models.TeacherInput](client, endpoints.Teachers, "teacher", opts)}
}

// Profile returns the teacher with courses, students and stats.
func (s *TeacherService) Profile(ctx context.Context, id int64) (*models.TeacherProfile, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	return fetchOne[models.TeacherProfile](ctx, s.base, endpoints.WithID(endpoints.TeacherProfile, id), nil, "teacher not found")
}

// FamilyService wraps /admin/families.
type FamilyService struct {
	crud[models.Family, models.FamilyFilter, models.FamilyInput]
}

// NewFamilyService constructs the family service.
func NewFamilyService(client apiClient, opts ...Option) *FamilyService {
	return &FamilyService{crud: newCRUD[models.Family, models.FamilyFilter, models.FamilyInput](client, endpoints.Families, "family", opts)}
}

// UserService wraps /admin/users.
type UserService struct {
	crud[models.User, models.UserFilter, models.UserInput]
}

// NewUserService constructs the user service.
func NewUserService(client apiClient, opts ...Option) *UserService {
	return &UserService{crud: newCRUD[models.User, models.UserFilter, models.UserInput](client, endpoints.Users, "user", opts)}
}

// ToggleStatus flips a user between active and inactive. Users are never
// deleted from the dashboard.
func (s *UserService) ToggleStatus(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	return send[models.User](ctx, s.base, http.MethodPut, endpoints.WithID(endpoints.UserStatus, id), nil, "failed to change user status")
}

// AssignRole replaces the role of a user.
func (s *UserService) AssignRole(ctx context.Context, id int64, role string) (*models.User, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	body := map[string]string{"role": role}
	return send[models.User](ctx, s.base, http.MethodPut, endpoints.WithID(endpoints.UserRole, id), body, "failed to assign role")
}
