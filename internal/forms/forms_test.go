package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-client/internal/models"
	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestCourseFormRejectsEmptyName(t *testing.T) {
	v := newValidator(t)
	called := false
	form := NewCourseForm(v, models.CourseInput{Price: 100})

	course, err := form.Submit(context.Background(), func(context.Context, models.CourseInput) (*models.Course, error) {
		called = true
		return &models.Course{}, nil
	})

	require.Error(t, err)
	assert.Nil(t, course)
	assert.False(t, called)
	assert.True(t, appErrors.IsValidation(err))

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"name is a required field"}, appErr.Fields["name"])
	assert.Equal(t, "name is a required field", appErr.Message)
}

func TestCourseFormRejectsBlankName(t *testing.T) {
	v := newValidator(t)
	called := false
	form := NewCourseForm(v, models.CourseInput{Name: "   "})

	_, err := form.Submit(context.Background(), func(context.Context, models.CourseInput) (*models.Course, error) {
		called = true
		return nil, nil
	})

	require.Error(t, err)
	assert.False(t, called)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"name cannot be blank"}, appErr.Fields["name"])
}

func TestCourseFormRejectsNegativePrice(t *testing.T) {
	v := newValidator(t)
	form := NewCourseForm(v, models.CourseInput{Name: "Tajweed", Price: -1})

	_, err := form.Submit(context.Background(), func(context.Context, models.CourseInput) (*models.Course, error) {
		t.Fatal("onSave must not run")
		return nil, nil
	})

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "price")
}

func TestCourseFormSavesValidInput(t *testing.T) {
	v := newValidator(t)
	input := models.CourseInput{Name: "Tajweed", Price: 120, Currency: "USD"}
	form := NewCourseForm(v, input)

	var saved models.CourseInput
	course, err := form.Submit(context.Background(), func(_ context.Context, in models.CourseInput) (*models.Course, error) {
		saved = in
		return &models.Course{ID: 7, Name: in.Name}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, input, saved)
	assert.Equal(t, int64(7), course.ID)
}

func TestCourseFormPropagatesSaveError(t *testing.T) {
	v := newValidator(t)
	form := NewCourseForm(v, models.CourseInput{Name: "Tajweed"})
	saveErr := appErrors.Clone(appErrors.ErrConflict, "course already exists")

	_, err := form.Submit(context.Background(), func(context.Context, models.CourseInput) (*models.Course, error) {
		return nil, saveErr
	})

	assert.ErrorIs(t, err, appErrors.ErrConflict)
}

func TestRoleFormRequiresNameAndPermission(t *testing.T) {
	v := newValidator(t)
	form := NewRoleForm(v, models.RoleInput{})

	_, err := form.Submit(context.Background(), func(context.Context, models.RoleInput) (*models.Role, error) {
		t.Fatal("onSave must not run")
		return nil, nil
	})

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "permissions")
}

func TestRoleFormRejectsEmptyPermissionList(t *testing.T) {
	v := newValidator(t)
	form := NewRoleForm(v, models.RoleInput{Name: "support", Permissions: []string{}})

	_, err := form.Submit(context.Background(), func(context.Context, models.RoleInput) (*models.Role, error) {
		t.Fatal("onSave must not run")
		return nil, nil
	})

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.NotContains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "permissions")
}

func TestRoleFormSavesValidInput(t *testing.T) {
	v := newValidator(t)
	form := NewRoleForm(v, models.RoleInput{Name: "support", Permissions: []string{"students.view"}})

	role, err := form.Submit(context.Background(), func(_ context.Context, in models.RoleInput) (*models.Role, error) {
		return &models.Role{ID: 3, Name: in.Name, Permissions: in.Permissions}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "support", role.Name)
	assert.Equal(t, []string{"students.view"}, role.Permissions)
}

func TestUserFormRequiresNameEmailAndRole(t *testing.T) {
	v := newValidator(t)
	form := NewUserForm(v, models.UserInput{Email: "not-an-email"})

	_, err := form.Submit(context.Background(), func(context.Context, models.UserInput) (*models.User, error) {
		t.Fatal("onSave must not run")
		return nil, nil
	})

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "role")
	assert.Equal(t, []string{"email must be a valid email address"}, appErr.Fields["email"])
}

func TestUserFormSavesValidInput(t *testing.T) {
	v := newValidator(t)
	input := models.UserInput{Name: "Huda", Email: "huda@example.com", Role: models.RoleTeacher}
	form := NewUserForm(v, input)

	user, err := form.Submit(context.Background(), func(_ context.Context, in models.UserInput) (*models.User, error) {
		return &models.User{ID: 12, Name: in.Name, Email: in.Email, Role: in.Role}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), user.ID)
	assert.Equal(t, models.RoleTeacher, user.Role)
}
