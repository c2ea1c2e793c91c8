package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/joestump/replydraft/internal/reply"
	"github.com/joestump/replydraft/internal/scenario"
)

// repliesAPIHandler provides the POST /api/v1/replies endpoint.
type repliesAPIHandler struct {
	gen *reply.Generator
}

// Create drafts a reply for the given scenario and order details.
// POST /api/v1/replies
//
// @Summary      Draft a reply
// @Description  Composes the scenario prompt and asks the configured completion service for a reply. With dry_run the composed prompt is returned instead.
// @Tags         Replies
// @Accept       json
// @Produce      json
// @Param        request  body      CreateReplyRequest  true  "Scenario and order details"
// @Success      200      {object}  ReplyResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Failure      503      {object}  ErrorResponse
// @Router       /replies [post]
func (h *repliesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	kind, err := scenario.ParseKind(req.Scenario)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_SCENARIO")
		return
	}

	sreq := scenario.Request{
		Kind:         kind,
		CustomerName: req.CustomerName,
		OrderID:      req.OrderID,
		Notes:        req.Notes,
	}
	if kind.AcceptsTracking() {
		sreq.TrackingID = req.TrackingID
		sreq.CourierURL = req.CourierURL
	}

	if req.DryRun {
		composed, err := h.gen.Compose(sreq)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
			return
		}
		writeJSON(w, http.StatusOK, ReplyResponse{
			RequestID: uuid.NewString(),
			Scenario:  kind.Slug(),
			Prompt:    &PromptResponse{System: composed.System, User: composed.User},
		})
		return
	}

	res := h.gen.Generate(r.Context(), sreq)
	switch res.Kind {
	case "":
		writeJSON(w, http.StatusOK, ReplyResponse{
			RequestID: res.RequestID,
			Scenario:  kind.Slug(),
			Reply:     res.Text,
		})
	case reply.KindValidation:
		writeError(w, http.StatusBadRequest, res.Message, "VALIDATION_ERROR")
	case reply.KindConfiguration:
		writeError(w, http.StatusServiceUnavailable, res.Message, "LLM_NOT_CONFIGURED")
	default:
		writeError(w, http.StatusBadGateway, res.Message, "LLM_ERROR")
	}
}
