package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
	results ports.ResultService
	logger  *zap.Logger
}

func NewPollHandler(service ports.PollService, results ports.ResultService, logger *zap.Logger) *PollHandler {
	return &PollHandler{
		service: service,
		results: results,
		logger:  logger,
	}
}

type createPollRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	EndDate     string   `json:"end_date"`
	Options     []string `json:"options"`
}

type createPollResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// ListPolls godoc
// @Summary      Lists all polls
// @Description  Returns every poll with its options, oldest first
// @Tags         polls
// @Produce      json
// @Success      200  {array}  domain.Poll
// @Failure      500
// @Router       /polls [get]
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.ListPolls(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, polls)
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Description  Creates a poll with its options. Requires a bearer token.
// @Tags         polls
// @Accept       json
// @Produce      json
// @Param        poll  body      createPollRequest  true  "Poll"
// @Success      201   {object}  createPollResponse
// @Failure      400
// @Failure      401
// @Security     BearerAuth
// @Router       /polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	poll, err := h.service.Create(r.Context(), ports.CreatePollInput{
		Title:       req.Title,
		Description: req.Description,
		EndDate:     req.EndDate,
		Options:     req.Options,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, createPollResponse{
		Message: "Poll created successfully",
		ID:      poll.ID,
	})
}

// GetPoll godoc
// @Summary      Gets a poll
// @Tags         polls
// @Produce      json
// @Param        poll_id  path      string  true  "Poll ID"
// @Success      200      {object}  domain.Poll
// @Failure      400
// @Failure      404
// @Router       /polls/{poll_id} [get]
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.service.GetPoll(r.Context(), chi.URLParam(r, "poll_id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, poll)
}

// GetResults godoc
// @Summary      Gets the results of a poll
// @Description  Vote count per option, options without votes included
// @Tags         polls
// @Produce      json
// @Param        poll_id  path      string  true  "Poll ID"
// @Success      200      {array}   domain.OptionResult
// @Failure      400
// @Failure      404
// @Router       /polls/{poll_id}/results [get]
func (h *PollHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.results.GetResults(r.Context(), chi.URLParam(r, "poll_id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
