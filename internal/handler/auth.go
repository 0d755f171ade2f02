package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-engine/internal/utils"
)

// AuthHandler issues admin access tokens.  There is no user store: the
// single admin identity is configured through the environment as a login
// name and a bcrypt password hash, and a successful login yields a
// short-lived HS256 JWT with the ADMIN role.  Catalog mutation routes
// require that token.
type AuthHandler struct {
	Secret        string // JWT signing secret
	AccessTTLMin  int    // token lifetime in minutes
	AdminUser     string // accepted login name
	AdminPassHash string // bcrypt hash of the admin password
}

// NewAuthHandler constructs an AuthHandler from configuration values.
func NewAuthHandler(secret string, ttlMin int, adminUser, adminPassHash string) *AuthHandler {
	return &AuthHandler{Secret: secret, AccessTTLMin: ttlMin, AdminUser: adminUser, AdminPassHash: adminPassHash}
}

// Login handles POST /v1/auth/login.  The body must contain a JSON
// object with "username" and "password".  On success it returns a 200
// response with the signed access token and its expiration; any
// credential mismatch yields 401 without revealing which field was
// wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	username := strings.TrimSpace(body.Username)
	if username == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}
	if username != h.AdminUser || !utils.VerifyPassword(h.AdminPassHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAccessToken(h.Secret, username, "ADMIN", h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp.UTC().Format(time.RFC3339),
	})
}
