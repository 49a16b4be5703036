package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/efriedrich/movie-api/internal/auth"
	"github.com/efriedrich/movie-api/internal/config"
	"github.com/efriedrich/movie-api/internal/model"
)

// AuthHandler owns the login flow: credential verification followed by token
// issuance.  No other endpoint issues tokens.
type AuthHandler struct {
	Cfg      config.Config
	Verifier *auth.Verifier
}

func NewAuthHandler(cfg config.Config, v *auth.Verifier) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Verifier: v}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResp is the success body: the sanitized user (password hash is
// excluded by the model's json tags) and the bearer token.
type loginResp struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// loginFailure mirrors the wire shape clients expect on a failed login:
// the message text and an explicitly null user.
type loginFailure struct {
	Message string      `json:"message"`
	User    interface{} `json:"user"`
}

// Login verifies the supplied credentials and, on success, returns the user
// together with a freshly signed bearer token.  Both unknown usernames and
// wrong passwords answer 400; only the message text differs.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, loginFailure{Message: "invalid body", User: nil})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Verifier.Verify(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnknownUsername) || errors.Is(err, auth.ErrWrongPassword) {
			return c.JSON(http.StatusBadRequest, loginFailure{Message: auth.LoginMessage(err), User: nil})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}

	ttl := time.Duration(h.Cfg.TokenTTLDays) * 24 * time.Hour
	token, err := auth.IssueToken(h.Cfg.JWTSecret, u, ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, loginResp{User: u, Token: token})
}
