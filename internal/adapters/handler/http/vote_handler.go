package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
	logger  *zap.Logger
}

func NewVoteHandler(service ports.VoteService, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		logger:  logger,
	}
}

type voteRequest struct {
	OptionID string `json:"option_id"`
}

// Vote godoc
// @Summary      Votes on a poll option
// @Description  One vote per user and option. Requires a bearer token.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        poll_id  path      string       true  "Poll ID"
// @Param        vote     body      voteRequest  true  "Vote"
// @Success      200      {object}  messageResponse
// @Failure      400
// @Failure      401
// @Failure      404
// @Security     BearerAuth
// @Router       /polls/{poll_id}/vote [post]
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "poll_id"))
	if err != nil {
		writeError(w, r, h.logger, domain.NewValidationError("poll_id", "invalid poll id"))
		return
	}

	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.OptionID == "" {
		writeError(w, r, h.logger, domain.NewValidationError("option_id", "is required"))
		return
	}
	optionID, err := uuid.Parse(req.OptionID)
	if err != nil {
		writeError(w, r, h.logger, domain.NewValidationError("option_id", "invalid option id"))
		return
	}

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "missing user context")
		return
	}

	_, err = h.service.CastVote(r.Context(), ports.VoteInput{
		UserID:   userID,
		PollID:   pollID,
		OptionID: optionID,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeMessage(w, http.StatusOK, "Vote recorded successfully")
}
