package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transitpulse/transit-api/internal/api/metrics"
	"github.com/transitpulse/transit-api/internal/core/domain"
	"github.com/transitpulse/transit-api/internal/core/ports"
)

// LoginLimiter throttles repeated login failures per username. Implemented by
// the Redis-backed throttle; nil disables throttling.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

type AuthHandler struct {
	authService ports.AuthService
	limiter     LoginLimiter
}

func NewAuthHandler(authService ports.AuthService, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Username    string `json:"username"`
}

// Login authenticates a user and returns a bearer token bound to their role.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	ctx := c.Request().Context()

	if h.limiter != nil {
		// Throttle errors fail open: a degraded Redis must not lock
		// everyone out.
		if ok, err := h.limiter.Allow(ctx, req.Username); err == nil && !ok {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many login attempts"})
		}
	}

	token, user, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if h.limiter != nil {
			_ = h.limiter.RecordFailure(ctx, req.Username)
		}
		// One message for every failure cause; the caller must not be
		// able to probe which usernames exist.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid username or password"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	if h.limiter != nil {
		_ = h.limiter.Reset(ctx, req.Username)
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		Role:        user.Role,
		Username:    user.Username,
	})
}

// Logout acknowledges the client's logout. Tokens are self-contained and not
// revocable server-side: the presented token stays valid until its expiry and
// the client is expected to discard it.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "logout successful"})
}

// Profile returns the identity resolved from the presented token.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	username, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"username":   username,
		"role":       role,
		"login_time": time.Now().Format(time.RFC3339),
	})
}
