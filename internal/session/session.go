// Package session holds the signed-in user and the token lifecycle shared by
// every screen of the dashboard.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-client/internal/models"
	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
)

// Navigation targets.
const (
	LoginPath   = "/login"
	AdminHome   = "/admin/dashboard"
	TeacherHome = "/teacher/dashboard"
)

type authAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
}

type tokenStore interface {
	SetTokens(ctx context.Context, access, refresh string) error
	ClearTokens(ctx context.Context) error
	AccessToken(ctx context.Context) string
}

// Navigator performs a hard navigation, e.g. back to the login view.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

// Navigate calls f(path).
func (f NavigatorFunc) Navigate(path string) { f(path) }

// Option customises a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNavigator sets where logout sends the user.
func WithNavigator(n Navigator) Option {
	return func(s *Session) {
		if n != nil {
			s.nav = n
		}
	}
}

// WithClock overrides the clock used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// Session is the auth context. Methods may be called concurrently; the last
// write to the user wins.
type Session struct {
	auth   authAPI
	tokens tokenStore
	nav    Navigator
	logger *zap.Logger
	now    func() time.Time

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

// New constructs a session in the loading state; call Init to resolve it.
func New(auth authAPI, tokens tokenStore, opts ...Option) *Session {
	s := &Session{
		auth:    auth,
		tokens:  tokens,
		nav:     NavigatorFunc(func(string) {}),
		logger:  zap.NewNop(),
		now:     time.Now,
		loading: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsLoading reports whether Init has not finished yet.
func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Init restores the session from a persisted token. A missing or expired
// token resolves to signed out without a network call; a failed user lookup
// clears the tokens and is returned.
func (s *Session) Init(ctx context.Context) error {
	defer s.setLoading(false)

	token := s.tokens.AccessToken(ctx)
	if token == "" {
		s.setUser(nil)
		return nil
	}
	if s.expired(token) {
		s.logger.Info("persisted access token expired")
		s.signOutLocally(ctx)
		return nil
	}
	if err := s.RefreshUser(ctx); err != nil {
		s.signOutLocally(ctx)
		return err
	}
	return nil
}

// Login exchanges credentials for tokens, loads the user and returns where to
// navigate next.
func (s *Session) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := s.auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	if err := s.tokens.SetTokens(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	user := resp.User
	if user == nil {
		user, err = s.auth.Me(ctx)
		if err != nil {
			s.signOutLocally(ctx)
			return "", err
		}
	}
	s.setUser(user)
	s.logger.Info("signed in", zap.Int64("user_id", user.ID), zap.String("role", user.Role))

	if resp.RedirectURL != "" {
		return resp.RedirectURL, nil
	}
	return HomeFor(user.Role), nil
}

// Logout invalidates the session on the backend best-effort, then always
// clears local state and navigates to the login view.
func (s *Session) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Warn("backend logout failed", zap.Error(err))
	}
	s.signOutLocally(ctx)
	s.nav.Navigate(LoginPath)
}

// RefreshUser reloads the current user from the backend.
func (s *Session) RefreshUser(ctx context.Context) error {
	user, err := s.auth.Me(ctx)
	if err != nil {
		if appErrors.IsUnauthorized(err) {
			s.setUser(nil)
		}
		return err
	}
	s.setUser(user)
	return nil
}

// HasPermission reports whether the signed-in user holds key.
func (s *Session) HasPermission(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.HasPermission(key)
}

// HasRole reports whether the signed-in user has any of roles.
func (s *Session) HasRole(roles ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, r := range roles {
		if strings.EqualFold(s.user.Role, r) {
			return true
		}
	}
	return false
}

// CanAccessPage checks page against the page permission map. A page is open
// when it lists no keys or the user holds any of them. When access is denied
// the returned path is where to send the user instead.
func (s *Session) CanAccessPage(page string, pages models.PagePermissions) (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false, LoginPath
	}
	required := pages[page]
	if len(required) == 0 {
		return true, ""
	}
	for _, key := range required {
		if s.user.HasPermission(key) {
			return true, ""
		}
	}
	return false, HomeFor(s.user.Role)
}

// HomeFor is the landing page of role.
func HomeFor(role string) string {
	if role == models.RoleTeacher {
		return TeacherHome
	}
	return AdminHome
}

func (s *Session) signOutLocally(ctx context.Context) {
	if err := s.tokens.ClearTokens(ctx); err != nil {
		s.logger.Warn("clear tokens failed", zap.Error(err))
	}
	s.setUser(nil)
}

func (s *Session) setUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// expired reports whether token is a JWT whose exp lies in the past. Opaque
// tokens are left for the backend to judge.
func (s *Session) expired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.Time.After(s.now())
}
