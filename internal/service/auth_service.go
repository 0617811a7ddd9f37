package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
	"github.com/noah-isme/edu-admin-client/internal/models"
	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
)

// AuthService wraps the /auth endpoints. Token persistence belongs to the
// session, not to this service.
type AuthService struct {
	base
}

// NewAuthService constructs the auth service.
func NewAuthService(client apiClient, opts ...Option) *AuthService {
	return &AuthService{base: newBase(client, opts)}
}

// Login exchanges credentials for a token pair.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.check(req, "email and password are required"); err != nil {
		return nil, err
	}
	resp, err := send[models.LoginResponse](ctx, s.base, http.MethodPost, endpoints.AuthLogin, req, "login failed")
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "login returned no access token")
	}
	return resp, nil
}

// Logout invalidates the current token on the backend.
func (s *AuthService) Logout(ctx context.Context) error {
	if _, err := s.client.Post(ctx, endpoints.AuthLogout, nil); err != nil {
		return s.fail(err, "logout failed")
	}
	return nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "refresh token is required")
	}
	body := map[string]string{"refresh_token": refreshToken}
	return send[models.RefreshResponse](ctx, s.base, http.MethodPost, endpoints.AuthRefresh, body, "token refresh failed")
}

// Me returns the authenticated user.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	return fetchOne[models.User](ctx, s.base, endpoints.AuthMe, nil, "failed to load current user")
}

// ForgotPassword asks the backend to email a reset link.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "a valid email is required")
	}
	if _, err := s.client.Post(ctx, endpoints.AuthForgotPassword, map[string]string{"email": email}); err != nil {
		return s.fail(err, "failed to request password reset")
	}
	return nil
}

// ResetPassword completes a reset using the emailed token.
func (s *AuthService) ResetPassword(ctx context.Context, token string, req models.ResetPasswordRequest) error {
	if strings.TrimSpace(token) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "reset token is required")
	}
	if err := s.check(req, "invalid password reset payload"); err != nil {
		return err
	}
	if _, err := s.client.Post(ctx, endpoints.WithToken(endpoints.AuthResetPassword, token), req); err != nil {
		return s.fail(err, "failed to reset password")
	}
	return nil
}
