package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/blkoutuk/ivor/internal/api"
	"github.com/blkoutuk/ivor/internal/domain"
	"github.com/blkoutuk/ivor/internal/service"
)

// anonymousCaller scopes rate limiting for requests without a user id.
const anonymousCaller = "anonymous"

type ChatPipeline interface {
	Respond(ctx context.Context, query, callerID string) service.PipelineResult
}

type ChatHandler struct {
	pipeline ChatPipeline
}

func NewChatHandler(pipeline ChatPipeline) *ChatHandler {
	return &ChatHandler{pipeline: pipeline}
}

type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

type ChatResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Sources   []string `json:"sources,omitempty"`
	ErrorKind string   `json:"error_kind,omitempty"`
}

// Chat runs one pipeline request. The body always carries the pipeline
// result, including on failure paths: the message text is the user-facing
// response in every terminal state.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Message == "" {
		api.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	callerID := req.UserID
	if callerID == "" {
		callerID = anonymousCaller
	}

	result := h.pipeline.Respond(r.Context(), req.Message, callerID)

	api.JSON(w, statusForErrorKind(result.ErrorKind), ChatResponse{
		Success:   result.Success,
		Message:   result.Message,
		Sources:   result.Sources,
		ErrorKind: result.ErrorKind,
	})
}

// statusForErrorKind maps a pipeline error kind through the shared domain
// error translation, so chat statuses stay aligned with the rest of the API.
func statusForErrorKind(kind string) int {
	if kind == "" {
		return http.StatusOK
	}
	return api.DomainErrorToHTTP(domain.NewDomainError(kind, "pipeline error"))
}
