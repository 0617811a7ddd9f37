package service

import (
	"context"
	"net/http"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
	"github.com/noah-isme/edu-admin-client/internal/models"
)

// CourseService wraps /admin/courses.
type CourseService struct {
	crud[models.Course, models.CourseFilter, models.CourseInput]
}

// NewCourseService constructs the course service.
func NewCourseService(client apiClient, opts ...Option) *CourseService {
	return &CourseService{crud: newCRUD[models.Course, models.CourseFilter, models.CourseInput](client, endpoints.Courses, "course", opts)}
}

// PackageService wraps /admin/packages.
type PackageService struct {
	crud[models.Package, models.PackageFilter, models.PackageInput]
}

// NewPackageService constructs the package service.
func NewPackageService(client apiClient, opts ...Option) *PackageService {
	return &PackageService{crud: newCRUD[models.Package, models.PackageFilter, models.PackageInput](client, endpoints.Packages, "package", opts)}
}

// RoleService wraps /admin/roles and the permission catalogue.
type RoleService struct {
	crud[models.Role, models.RoleFilter, models.RoleInput]
}

// NewRoleService constructs the role service.
func NewRoleService(client apiClient, opts ...Option) *RoleService {
	return &RoleService{crud: newCRUD[models.Role, models.RoleFilter, models.RoleInput](client, endpoints.Roles, "role", opts)}
}

// Permissions returns the full permission catalogue.
func (s *RoleService) Permissions(ctx context.Context) ([]models.Permission, error) {
	perms, err := fetchOne[[]models.Permission](ctx, s.base, endpoints.Permissions, nil, "failed to load permissions")
	if err != nil {
		return nil, err
	}
	return *perms, nil
}

// PagePermissions returns the page to required-permission map.
func (s *RoleService) PagePermissions(ctx context.Context) (models.PagePermissions, error) {
	pages, err := fetchOne[models.PagePermissions](ctx, s.base, endpoints.PagePermissions, nil, "failed to load page permissions")
	if err != nil {
		return nil, err
	}
	return *pages, nil
}

// SyncPermissions replaces the permission keys granted to a role.
func (s *RoleService) SyncPermissions(ctx context.Context, id int64, keys []string) (*models.Role, error) {
	if keys == nil {
		keys = []string{}
	}
	body := map[string][]string{"permissions": keys}
	return action[models.Role](ctx, s.crud, http.MethodPut, id, "permissions", body, "failed to update role permissions")
}
