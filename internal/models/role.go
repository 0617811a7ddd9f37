package models

// Permission is an opaque grantable key grouped by module for display.
type Permission struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Module      string `json:"module"`
	Description string `json:"description,omitempty"`
}

// PermissionGroup is the permission catalogue of one module.
type PermissionGroup struct {
	Module      string       `json:"module"`
	Permissions []Permission `json:"permissions"`
}

// PagePermissions maps a dashboard page to the keys required to open it.
type PagePermissions map[string][]string

// Role is a named bundle of permission keys.
type Role struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name,omitempty"`
	Description      string   `json:"description,omitempty"`
	Permissions      []string `json:"permissions"`
	UsersCount       int      `json:"users_count"`
	PermissionsCount int      `json:"permissions_count"`
	IsSystem         bool     `json:"is_system,omitempty"`
}

// CanDelete reports whether the delete action should be offered. The backend
// remains the authority and rejects deletes of roles still assigned to users.
func (r Role) CanDelete() bool {
	return r.UsersCount == 0 && !r.IsSystem
}

// RoleFilter captures list parameters for roles.
type RoleFilter struct {
	ListParams
}

// RoleInput is the create/update payload for roles.
type RoleInput struct {
	Name        string   `json:"name" validate:"required"`
	DisplayName string   `json:"display_name,omitempty"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions" validate:"required,min=1"`
}
