package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-gateway/internal/api/metrics"
	"github.com/localspot/directory-gateway/internal/core/domain"
	"github.com/localspot/directory-gateway/internal/core/ports"
	"github.com/localspot/directory-gateway/internal/pkg/token"
)

// AuthHandler owns the session endpoints: login, register, logout, and
// session introspection. All state changes go through the session service.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login authenticates against the remote API and persists the session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "validation_error").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.sessions.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", authFailureLabel(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return c.JSON(http.StatusOK, h.sessionView())
}

// Register creates an account and logs it straight in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Profile"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "validation_error").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	}
	if err := h.sessions.Register(c.Request().Context(), input); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", authFailureLabel(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return c.JSON(http.StatusCreated, h.sessionView())
}

// Logout clears the session. Always succeeds; logging out twice is fine.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state.
//
// @Summary      Session introspection
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sessionView())
}

// LoginView is the landing target for guard redirects.
func (h *AuthHandler) LoginView(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "sign in required"})
}

func (h *AuthHandler) sessionView() sessionResponse {
	snap := h.sessions.Snapshot()
	resp := sessionResponse{
		State:         snap.State,
		Authenticated: snap.IsAuthenticated(),
		User:          snap.User,
	}
	if exp, ok := token.ExpiresAt(snap.Token); ok {
		resp.TokenExpiresAt = &exp
	}
	return resp
}

func authFailureLabel(err error) string {
	switch {
	case isValidationError(err):
		return "validation_error"
	case err == domain.ErrMalformedResponse:
		return "malformed"
	case isTransportError(err):
		return "rejected"
	default:
		return "error"
	}
}
