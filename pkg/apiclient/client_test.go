package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-client/internal/models"
	"github.com/noah-isme/edu-admin-client/internal/testutil"
	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
	"github.com/noah-isme/edu-admin-client/pkg/kvstore"
	"github.com/noah-isme/edu-admin-client/pkg/metrics"
	"github.com/noah-isme/edu-admin-client/pkg/requestid"
	"github.com/noah-isme/edu-admin-client/pkg/response"
)

func newTestClient(t *testing.T, backend *testutil.Backend, autoRefresh bool, opts ...Option) (*Client, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	client, err := New(Config{BaseURL: backend.URL(), Timeout: 5 * time.Second, UserAgent: "test-agent", AutoRefresh: autoRefresh}, store, opts...)
	require.NoError(t, err)
	return client, store
}

func protectedStudents(backend *testutil.Backend) {
	backend.Handle(http.MethodGet, "/admin/students", backend.Authenticated(), func(c *gin.Context) {
		response.JSON(c, http.StatusOK, []models.Student{{ID: 1, Name: "Amina"}}, &response.Meta{CurrentPage: 1, LastPage: 3, PerPage: 15, Total: 40})
	})
}

func TestNewRequiresBaseURLAndStore(t *testing.T) {
	_, err := New(Config{}, kvstore.NewMemoryStore())
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "http://localhost"}, nil)
	assert.Error(t, err)
}

func TestGetAttachesHeadersAndParsesEnvelope(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.AddUser(models.User{ID: 7, Email: "admin@example.com", Role: models.RoleAdmin}, "secret")
	protectedStudents(backend)

	client, _ := newTestClient(t, backend, false)
	ctx := requestid.WithValue(context.Background(), "req-123")
	require.NoError(t, client.SetTokens(ctx, backend.IssueToken(7, time.Hour), "refresh"))

	env, err := client.Get(ctx, "/admin/students", url.Values{"status": {"active"}})
	require.NoError(t, err)
	assert.True(t, env.OK())
	require.NotNil(t, env.Meta)
	assert.Equal(t, 40, env.Meta.Total)
	assert.Contains(t, string(env.Data), `"name":"Amina"`)

	req, ok := backend.Last("/admin/students")
	require.True(t, ok)
	assert.Equal(t, "active", req.Query.Get("status"))
	assert.Equal(t, "req-123", req.RequestID)
	assert.Contains(t, req.Authorization, "Bearer ")
}

func TestRequestWithoutTokenOmitsAuthorization(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/public", func(c *gin.Context) {
		response.Message(c, "ok")
	})
	client, _ := newTestClient(t, backend, false)

	env, err := client.Get(context.Background(), "/public", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", env.Message)

	req, ok := backend.Last("/public")
	require.True(t, ok)
	assert.Empty(t, req.Authorization)
	assert.NotEmpty(t, req.RequestID)
}

func TestPostSendsJSONBody(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/admin/courses", func(c *gin.Context) {
		var in models.CourseInput
		assert.NoError(t, c.ShouldBindJSON(&in))
		response.JSON(c, http.StatusCreated, models.Course{ID: 5, Name: in.Name}, nil)
	})
	client, _ := newTestClient(t, backend, false)

	env, err := client.Post(context.Background(), "/admin/courses", models.CourseInput{Name: "Tajweed"})
	require.NoError(t, err)
	assert.Contains(t, string(env.Data), `"Tajweed"`)

	req, _ := backend.Last("/admin/courses")
	assert.JSONEq(t, `{"name":"Tajweed","price":0}`, string(req.Body))
}

func TestBusinessErrorCarriesBackendMessage(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodDelete, "/admin/roles/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Cannot delete role with assigned users"})
	})
	client, _ := newTestClient(t, backend, false)

	_, err := client.Delete(context.Background(), "/admin/roles/3")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrFetch.Code, appErr.Code)
	assert.Equal(t, "Cannot delete role with assigned users", appErr.Message)
}

func TestStatusCodesMapToTypedErrors(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/admin/students/:id", func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Student not found", nil)
	})
	backend.Handle(http.MethodPut, "/admin/students/:id", func(c *gin.Context) {
		response.Error(c, http.StatusUnprocessableEntity, "The email has already been taken.", map[string][]string{
			"email": {"The email has already been taken."},
		})
	})
	backend.Handle(http.MethodGet, "/admin/broken", func(c *gin.Context) {
		c.String(http.StatusBadGateway, "<html>bad gateway</html>")
	})
	client, _ := newTestClient(t, backend, false)
	ctx := context.Background()

	_, err := client.Get(ctx, "/admin/students/99", nil)
	assert.True(t, appErrors.IsNotFound(err))
	assert.Equal(t, "Student not found", appErrors.FromError(err).Message)

	_, err = client.Put(ctx, "/admin/students/1", map[string]string{"email": "dup@example.com"})
	require.True(t, appErrors.IsValidation(err))
	assert.Equal(t, []string{"The email has already been taken."}, appErrors.FromError(err).Fields["email"])

	_, err = client.Get(ctx, "/admin/broken", nil)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrFetch.Code, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.Equal(t, "Bad Gateway", appErr.Message)
}

func TestNetworkFailureIsTyped(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	client, err := New(Config{BaseURL: base, Timeout: time.Second}, kvstore.NewMemoryStore())
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/admin/students", nil)
	require.Error(t, err)
	assert.True(t, appErrors.IsNetwork(err))
}

func TestCancelledContextAbortsRequest(t *testing.T) {
	backend := testutil.NewBackend(t)
	protectedStudents(backend)
	client, _ := newTestClient(t, backend, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Get(ctx, "/admin/students", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenLifecycle(t *testing.T) {
	backend := testutil.NewBackend(t)
	client, store := newTestClient(t, backend, false)
	ctx := context.Background()

	require.NoError(t, client.SetTokens(ctx, "access-1", "refresh-1"))
	assert.Equal(t, "access-1", client.AccessToken(ctx))
	assert.Equal(t, "refresh-1", client.RefreshToken(ctx))

	require.NoError(t, client.SetTokens(ctx, "access-2", ""))
	assert.Equal(t, "access-2", client.AccessToken(ctx))
	assert.Equal(t, "refresh-1", client.RefreshToken(ctx))

	require.NoError(t, client.ClearTokens(ctx))
	assert.Empty(t, client.AccessToken(ctx))
	_, err := store.Get(ctx, kvstore.KeyRefreshToken)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestUnauthorizedWithoutAutoRefreshPropagates(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.AddUser(models.User{ID: 1, Email: "a@example.com"}, "pw")
	backend.RefreshTokenFor(1, "refresh-ok")
	protectedStudents(backend)

	client, _ := newTestClient(t, backend, false)
	ctx := context.Background()
	require.NoError(t, client.SetTokens(ctx, backend.IssueToken(1, -time.Minute), "refresh-ok"))

	_, err := client.Get(ctx, "/admin/students", nil)
	assert.True(t, appErrors.IsUnauthorized(err))
	assert.Zero(t, backend.Count("/auth/refresh"))
}

func TestAutoRefreshRetriesOnce(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.AddUser(models.User{ID: 1, Email: "a@example.com"}, "pw")
	backend.RefreshTokenFor(1, "refresh-ok")
	protectedStudents(backend)

	client, _ := newTestClient(t, backend, true)
	ctx := context.Background()
	expired := backend.IssueToken(1, -time.Minute)
	require.NoError(t, client.SetTokens(ctx, expired, "refresh-ok"))

	env, err := client.Get(ctx, "/admin/students", nil)
	require.NoError(t, err)
	assert.True(t, env.OK())
	assert.Equal(t, 1, backend.Count("/auth/refresh"))
	assert.Equal(t, 2, backend.Count("/admin/students"))
	assert.NotEqual(t, expired, client.AccessToken(ctx))
	assert.Equal(t, "refresh-ok", client.RefreshToken(ctx))
}

func TestAutoRefreshFailureReturnsOriginalError(t *testing.T) {
	backend := testutil.NewBackend(t)
	protectedStudents(backend)

	client, _ := newTestClient(t, backend, true)
	ctx := context.Background()
	require.NoError(t, client.SetTokens(ctx, "garbage", "unknown-refresh"))

	_, err := client.Get(ctx, "/admin/students", nil)
	assert.True(t, appErrors.IsUnauthorized(err))
	assert.Equal(t, 1, backend.Count("/auth/refresh"))
	assert.Equal(t, 1, backend.Count("/admin/students"))
}

func TestAuthEndpointsNeverRefresh(t *testing.T) {
	backend := testutil.NewBackend(t)
	client, _ := newTestClient(t, backend, true)
	ctx := context.Background()
	require.NoError(t, client.SetTokens(ctx, "garbage", "refresh"))

	_, err := client.Get(ctx, "/auth/me", nil)
	assert.True(t, appErrors.IsUnauthorized(err))
	assert.Zero(t, backend.Count("/auth/refresh"))
}

func TestDownloadReturnsRawBytes(t *testing.T) {
	backend := testutil.NewBackend(t)
	pdf := []byte("%PDF-1.4 fake")
	backend.Handle(http.MethodGet, "/admin/reports/:id/pdf", func(c *gin.Context) {
		c.Header("Content-Disposition", `attachment; filename="report-4.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	})
	rec := metrics.NewRecorder()
	client, _ := newTestClient(t, backend, false, WithMetrics(rec))

	dl, err := client.Download(context.Background(), "/admin/reports/4/pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, pdf, dl.Data)
	assert.Equal(t, "application/pdf", dl.ContentType)
	assert.Equal(t, "report-4.pdf", dl.Filename)

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `endpoint="/api/admin/reports/:id/pdf"`)
	assert.Contains(t, w.Body.String(), "api_client_download_bytes_total 13")
}

func TestDownloadRefreshesOnUnauthorized(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.AddUser(models.User{ID: 1, Email: "a@example.com"}, "pw")
	backend.RefreshTokenFor(1, "refresh-ok")
	backend.Handle(http.MethodGet, "/admin/timetables/:id/pdf", backend.Authenticated(), func(c *gin.Context) {
		c.Data(http.StatusOK, "application/pdf", []byte("%PDF-1.4 schedule"))
	})

	client, _ := newTestClient(t, backend, true)
	ctx := context.Background()
	expired := backend.IssueToken(1, -time.Minute)
	require.NoError(t, client.SetTokens(ctx, expired, "refresh-ok"))

	dl, err := client.Download(ctx, "/admin/timetables/3/pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 schedule", string(dl.Data))
	assert.Equal(t, 1, backend.Count("/auth/refresh"))
	assert.Equal(t, 2, backend.Count("/admin/timetables/3/pdf"))
	assert.NotEqual(t, expired, client.AccessToken(ctx))
}

func TestDownloadWithoutAutoRefreshPropagatesUnauthorized(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.AddUser(models.User{ID: 1, Email: "a@example.com"}, "pw")
	backend.RefreshTokenFor(1, "refresh-ok")
	backend.Handle(http.MethodGet, "/admin/timetables/:id/pdf", backend.Authenticated(), func(c *gin.Context) {
		c.Data(http.StatusOK, "application/pdf", []byte("%PDF"))
	})

	client, _ := newTestClient(t, backend, false)
	ctx := context.Background()
	require.NoError(t, client.SetTokens(ctx, backend.IssueToken(1, -time.Minute), "refresh-ok"))

	_, err := client.Download(ctx, "/admin/timetables/3/pdf", nil)
	assert.True(t, appErrors.IsUnauthorized(err))
	assert.Zero(t, backend.Count("/auth/refresh"))
}

func TestDownloadErrorUsesEnvelopeMessage(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/teacher/reports/:id/pdf", func(c *gin.Context) {
		response.Error(c, http.StatusForbidden, "This report belongs to another teacher", nil)
	})
	rec := metrics.NewRecorder()
	client, _ := newTestClient(t, backend, false, WithMetrics(rec))

	_, err := client.Download(context.Background(), "/teacher/reports/2/pdf", nil)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
	assert.Equal(t, "This report belongs to another teacher", appErr.Message)

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `api_client_request_errors_total{code="FORBIDDEN"} 1`)
}

func TestDecodeEnvelopeEmptyBody(t *testing.T) {
	env, err := decodeEnvelope(http.StatusNoContent, nil)
	require.NoError(t, err)
	assert.True(t, env.OK())

	_, err = decodeEnvelope(http.StatusUnauthorized, nil)
	assert.True(t, appErrors.IsUnauthorized(err))

	_, err = decodeEnvelope(http.StatusOK, []byte("not json"))
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestRouteLabel(t *testing.T) {
	cases := map[string]string{
		"/api/admin/students":          "/api/admin/students",
		"/api/admin/students/12":       "/api/admin/students/:id",
		"/api/admin/leads/3/convert":   "/api/admin/leads/:id/convert",
		"/api/admin/roles/1/2":         "/api/admin/roles/:id/:id",
		"/api/admin/students?page=2":   "/api/admin/students",
		"/api/admin/reports/v2/shared": "/api/admin/reports/v2/shared",
	}
	for in, want := range cases {
		assert.Equal(t, want, routeLabel(in), in)
	}
}

func TestWithQueryAppends(t *testing.T) {
	assert.Equal(t, "/a", withQuery("/a", nil))
	assert.Equal(t, "/a?x=1", withQuery("/a", url.Values{"x": {"1"}}))
	assert.Equal(t, "/a?y=2&x=1", withQuery("/a?y=2", url.Values{"x": {"1"}}))
}
