package http

import (
	"errors"
	"net/http"

	"github.com/vncsmyrnk/projectvote/internal/core/domain"
	"github.com/vncsmyrnk/projectvote/internal/core/ports"
	"github.com/vncsmyrnk/projectvote/internal/logging"
)

const alreadyVotedMessage = "Already voted!"

type VoteHandler struct {
	service ports.VoteService
	cookie  CookieOptions
	log     logging.Logger
}

func NewVoteHandler(service ports.VoteService, cookie CookieOptions, log logging.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		cookie:  cookie,
		log:     log,
	}
}

type voteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type myVotesResponse struct {
	ProjectIDs []int64 `json:"project_ids"`
}

func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	projectID, err := projectIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.CastVote(r.Context(), h.cookie.token(r), projectID)
	if result != nil && result.Token != "" {
		h.cookie.setToken(w, result.Token, result.ExpiresAt)
	}
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidProjectID) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.log.Error(r.Context(), "failed to cast vote", "project_id", projectID, "error", err)
		writeError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	if !result.Success {
		writeJSON(w, http.StatusOK, voteResponse{Message: alreadyVotedMessage})
		return
	}

	h.log.Info(r.Context(), "vote recorded", "project_id", projectID, "token_issued", result.TokenIssued)
	writeJSON(w, http.StatusOK, voteResponse{Success: true})
}

func (h *VoteHandler) MyVotes(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.MyVotes(r.Context(), h.cookie.token(r))
	if err != nil {
		h.log.Error(r.Context(), "failed to list votes", "error", err)
		writeError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	writeJSON(w, http.StatusOK, myVotesResponse{ProjectIDs: ids})
}
