package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
	logger  *zap.Logger
}

func NewUserHandler(service ports.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// GetMe godoc
// @Summary      Gets the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.UserSummary
// @Failure      401
// @Failure      404
// @Security     BearerAuth
// @Router       /me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "missing user context")
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
