package http

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService ports.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      Registers a user
// @Description  Creates the account and returns an access token for it
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      credentialsRequest  true  "Credentials"
// @Success      201          {object}  domain.AuthResult
// @Failure      400
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Login godoc
// @Summary      Logs a user in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      credentialsRequest  true  "Credentials"
// @Success      200          {object}  domain.AuthResult
// @Failure      400
// @Failure      401
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeError(w, r, h.logger, domain.NewValidationError("", "username and password are required"))
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
