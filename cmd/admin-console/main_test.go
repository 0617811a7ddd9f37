package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-client/internal/models"
	"github.com/noah-isme/edu-admin-client/internal/testutil"
	"github.com/noah-isme/edu-admin-client/pkg/response"
)

func setup(t *testing.T) (*testutil.Backend, string) {
	t.Helper()
	backend := testutil.NewBackend(t)
	backend.AddUser(models.User{ID: 1, Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin, Permissions: []string{"students.view"}}, "secret")

	dir := t.TempDir()
	t.Setenv("API_BASE_URL", backend.URL())
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_PATH", filepath.Join(dir, "state.json"))
	t.Setenv("DOWNLOADS_DIR", filepath.Join(dir, "downloads"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEFAULT_LANGUAGE", "en")
	return backend, dir
}

func exec(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out)
	return out.String(), err
}

func TestLoginWhoamiLogout(t *testing.T) {
	backend, _ := setup(t)

	out, err := exec(t, "login", "-email", "admin@example.com", "-password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Admin")
	assert.Contains(t, out, "redirect: /admin/dashboard")

	out, err = exec(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "admin@example.com")
	assert.Contains(t, out, "students.view")

	out, err = exec(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")
	assert.Equal(t, 1, backend.Count("/auth/logout"))

	_, err = exec(t, "whoami")
	assert.Error(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setup(t)

	_, err := exec(t, "login", "-email", "admin@example.com", "-password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestStudentsListsAndSortsPage(t *testing.T) {
	backend, _ := setup(t)
	backend.Handle(http.MethodGet, "/admin/students", backend.Authenticated(), func(c *gin.Context) {
		response.JSON(c, http.StatusOK, []models.Student{
			{ID: 1, Name: "Omar", Email: "omar@example.com", Status: "active", CoursesCount: 2},
			{ID: 2, Name: "Amina", Email: "amina@example.com", Status: "inactive", CoursesCount: 1},
		}, &response.Meta{CurrentPage: 1, LastPage: 3, PerPage: 2, Total: 6})
	})

	_, err := exec(t, "login", "-email", "admin@example.com", "-password", "secret")
	require.NoError(t, err)

	out, err := exec(t, "students", "-search", "a", "-sort", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "Students")
	assert.Contains(t, out, "page 1/3, 6 total")
	assert.Less(t, strings.Index(out, "Amina"), strings.Index(out, "Omar"))
	assert.Contains(t, out, "Inactive")

	req, ok := backend.Last("/admin/students")
	require.True(t, ok)
	assert.Equal(t, "a", req.Query.Get("search"))
	assert.NotEmpty(t, req.Authorization)
}

func TestDownloadReportSavesFile(t *testing.T) {
	backend, dir := setup(t)
	backend.Handle(http.MethodGet, "/admin/reports/:id/pdf", backend.Authenticated(), func(c *gin.Context) {
		c.Header("Content-Disposition", `attachment; filename="report-9.pdf"`)
		c.Data(http.StatusOK, "application/pdf", []byte("%PDF-1.4 test"))
	})

	_, err := exec(t, "login", "-email", "admin@example.com", "-password", "secret")
	require.NoError(t, err)

	out, err := exec(t, "download-report", "-id", "9")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "downloads", "report-9.pdf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))
}

func TestExportSalariesWritesCSV(t *testing.T) {
	backend, _ := setup(t)
	backend.Handle(http.MethodGet, "/admin/salaries", backend.Authenticated(), func(c *gin.Context) {
		response.JSON(c, http.StatusOK, []models.Salary{
			{ID: 4, Month: "2026-09", BaseAmount: 500, TotalAmount: 500, Currency: "USD", Status: models.SalaryPending},
		}, &response.Meta{CurrentPage: 1, LastPage: 1, PerPage: 100, Total: 1})
	})

	_, err := exec(t, "login", "-email", "admin@example.com", "-password", "secret")
	require.NoError(t, err)

	out, err := exec(t, "export-salaries", "-month", "2026-09")
	require.NoError(t, err)

	data, err := os.ReadFile(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2026-09")
	assert.Contains(t, string(data), "500.00")

	req, ok := backend.Last("/admin/salaries")
	require.True(t, ok)
	assert.Equal(t, "2026-09", req.Query.Get("month"))
}

func TestLanguagePersistsBetweenRuns(t *testing.T) {
	setup(t)

	out, err := exec(t, "lang", "AR")
	require.NoError(t, err)
	assert.Equal(t, "ar (rtl)\n", out)

	out, err = exec(t, "lang")
	require.NoError(t, err)
	assert.Equal(t, "ar (rtl)\n", out)

	_, err = exec(t, "lang", "fr")
	assert.Error(t, err)
}

func TestSidebarToggle(t *testing.T) {
	setup(t)
	t.Setenv("VIEWPORT_WIDTH", "1280")

	out, err := exec(t, "sidebar")
	require.NoError(t, err)
	assert.Equal(t, "open\n", out)

	out, err = exec(t, "sidebar", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "closed\n", out)

	out, err = exec(t, "sidebar")
	require.NoError(t, err)
	assert.Equal(t, "closed\n", out)
}

func TestUsageErrors(t *testing.T) {
	_, err := exec(t)
	assert.ErrorIs(t, err, errUsage)

	_, err = exec(t, "enrol")
	assert.ErrorIs(t, err, errUsage)
}
