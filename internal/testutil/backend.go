// Package testutil provides an in-process fake of the dashboard backend that
// speaks the envelope contract, for exercising the client end to end.
package testutil

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/noah-isme/edu-admin-client/internal/models"
	"github.com/noah-isme/edu-admin-client/pkg/response"
)

const userKey = "testutil.user"

// Request is a request observed by the backend.
type Request struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	RequestID     string
	Body          []byte
}

type account struct {
	password string
	user     models.User
}

// Backend is a gin-powered fake of the REST API mounted under /api.
type Backend struct {
	Engine *gin.Engine
	Server *httptest.Server
	API    *gin.RouterGroup

	// AccessTTL controls the lifetime of issued access tokens.
	AccessTTL time.Duration
	// RedirectURL is returned by login when set.
	RedirectURL string
	// FailLogout makes the logout endpoint answer 500.
	FailLogout bool

	secret []byte

	mu       sync.Mutex
	requests []Request
	accounts map[string]account
	refresh  map[string]int64
}

// NewBackend starts a fake backend that is closed when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := &Backend{
		Engine:    gin.New(),
		AccessTTL: time.Hour,
		secret:    []byte("test-secret"),
		accounts:  make(map[string]account),
		refresh:   make(map[string]int64),
	}
	b.Engine.Use(b.record)
	b.API = b.Engine.Group("/api")
	b.registerAuth()

	b.Server = httptest.NewServer(b.Engine)
	t.Cleanup(b.Server.Close)
	return b
}

// URL is the API base URL to configure clients with.
func (b *Backend) URL() string {
	return b.Server.URL + "/api"
}

// AddUser registers an account that can log in.
func (b *Backend) AddUser(user models.User, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[user.Email] = account{password: password, user: user}
}

// Handle registers an extra route under /api.
func (b *Backend) Handle(method, path string, handlers ...gin.HandlerFunc) {
	b.API.Handle(method, path, handlers...)
}

// Requests returns a snapshot of every request received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// Last returns the most recent request whose path matches.
func (b *Backend) Last(path string) (Request, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	full := "/api" + path
	for i := len(b.requests) - 1; i >= 0; i-- {
		if b.requests[i].Path == full {
			return b.requests[i], true
		}
	}
	return Request{}, false
}

// Count returns how many requests hit path.
func (b *Backend) Count(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	full := "/api" + path
	n := 0
	for _, r := range b.requests {
		if r.Path == full {
			n++
		}
	}
	return n
}

// IssueToken signs an access token for userID expiring after ttl. A negative
// ttl yields an already expired token.
func (b *Backend) IssueToken(userID int64, ttl time.Duration) string {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
	if err != nil {
		panic(fmt.Sprintf("sign token: %v", err))
	}
	return signed
}

// Authenticated rejects requests without a valid bearer token and stores the
// matching user on the context.
func (b *Backend) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" || raw == header {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated.", nil)
			return
		}
		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return b.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Token expired or invalid.", nil)
			return
		}
		id, _ := strconv.ParseInt(claims.Subject, 10, 64)
		user, ok := b.userByID(id)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Unknown user.", nil)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

func (b *Backend) userByID(id int64) (models.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, acc := range b.accounts {
		if acc.user.ID == id {
			return acc.user, true
		}
	}
	return models.User{}, false
}

func (b *Backend) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	b.mu.Lock()
	b.requests = append(b.requests, Request{
		Method:        c.Request.Method,
		Path:          c.Request.URL.Path,
		Query:         c.Request.URL.Query(),
		Authorization: c.GetHeader("Authorization"),
		RequestID:     c.GetHeader("X-Request-ID"),
		Body:          body,
	})
	b.mu.Unlock()
	c.Next()
}

func (b *Backend) registerAuth() {
	b.API.POST("/auth/login", b.login)
	b.API.POST("/auth/refresh", b.refreshToken)
	b.API.POST("/auth/logout", b.logout)
	b.API.GET("/auth/me", b.Authenticated(), func(c *gin.Context) {
		user, _ := c.Get(userKey)
		response.JSON(c, http.StatusOK, user, nil)
	})
}

func (b *Backend) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "The given data was invalid.", map[string][]string{
			"email": {"The email field is required."},
		})
		return
	}
	b.mu.Lock()
	acc, ok := b.accounts[req.Email]
	b.mu.Unlock()
	if !ok || acc.password != req.Password {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	user := acc.user
	response.JSON(c, http.StatusOK, models.LoginResponse{
		AccessToken:  b.IssueToken(user.ID, b.AccessTTL),
		RefreshToken: b.newRefreshToken(user.ID),
		RedirectURL:  b.RedirectURL,
		User:         &user,
	}, nil)
}

func (b *Backend) refreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		response.Error(c, http.StatusUnauthorized, "Refresh token missing.", nil)
		return
	}
	b.mu.Lock()
	id, ok := b.refresh[req.RefreshToken]
	b.mu.Unlock()
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Refresh token invalid.", nil)
		return
	}
	response.JSON(c, http.StatusOK, models.RefreshResponse{AccessToken: b.IssueToken(id, b.AccessTTL)}, nil)
}

func (b *Backend) logout(c *gin.Context) {
	if b.FailLogout {
		response.Error(c, http.StatusInternalServerError, "Logout failed.", nil)
		return
	}
	response.Message(c, "Logged out")
}

func (b *Backend) newRefreshToken(userID int64) string {
	token := uuid.NewString()
	b.mu.Lock()
	b.refresh[token] = userID
	b.mu.Unlock()
	return token
}

// RefreshTokenFor registers token as a valid refresh token for userID.
func (b *Backend) RefreshTokenFor(userID int64, token string) {
	b.mu.Lock()
	b.refresh[token] = userID
	b.mu.Unlock()
}
