package forms

import (
	"context"

	"github.com/noah-isme/edu-admin-client/internal/models"
)

// Submit validates input and only then hands it to onSave. A validation
// failure returns without calling onSave.
func Submit[I, R any](ctx context.Context, v *Validator, input I, onSave func(context.Context, I) (R, error)) (R, error) {
	var zero R
	if err := v.Check(input); err != nil {
		return zero, err
	}
	return onSave(ctx, input)
}

// CourseForm is the create/edit course form.
type CourseForm struct {
	Input     models.CourseInput
	validator *Validator
}

// NewCourseForm binds input to v.
func NewCourseForm(v *Validator, input models.CourseInput) *CourseForm {
	return &CourseForm{Input: input, validator: v}
}

// courseFields adds the blank check on the name the dashboard requires.
type courseFields struct {
	Name string `json:"name" validate:"notblank"`
}

// Submit validates the course and calls onSave with it.
func (f *CourseForm) Submit(ctx context.Context, onSave func(context.Context, models.CourseInput) (*models.Course, error)) (*models.Course, error) {
	if err := f.validator.Check(f.Input); err != nil {
		return nil, err
	}
	if err := f.validator.Check(courseFields{Name: f.Input.Name}); err != nil {
		return nil, err
	}
	return onSave(ctx, f.Input)
}

// RoleForm is the create/edit role form.
type RoleForm struct {
	Input     models.RoleInput
	validator *Validator
}

// NewRoleForm binds input to v.
func NewRoleForm(v *Validator, input models.RoleInput) *RoleForm {
	return &RoleForm{Input: input, validator: v}
}

// Submit validates the role and calls onSave with it.
func (f *RoleForm) Submit(ctx context.Context, onSave func(context.Context, models.RoleInput) (*models.Role, error)) (*models.Role, error) {
	return Submit(ctx, f.validator, f.Input, onSave)
}

// UserForm is the create user form.
type UserForm struct {
	Input     models.UserInput
	validator *Validator
}

// NewUserForm binds input to v.
func NewUserForm(v *Validator, input models.UserInput) *UserForm {
	return &UserForm{Input: input, validator: v}
}

// Submit validates the account and calls onSave with it.
func (f *UserForm) Submit(ctx context.Context, onSave func(context.Context, models.UserInput) (*models.User, error)) (*models.User, error) {
	return Submit(ctx, f.validator, f.Input, onSave)
}
