package pipeline

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/docpipe/triage/internal/documents"
	"github.com/docpipe/triage/internal/triage"
	"github.com/docpipe/triage/pkg/handlers"
	"github.com/docpipe/triage/pkg/routes"
)

// ErrInvalidRequest indicates a malformed triage request body.
var ErrInvalidRequest = errors.New("invalid triage request")

// Handler provides HTTP endpoints for pipeline execution.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "triage"),
	}
}

// Routes returns the route group definition for triage endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/triage",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Run},
			{Method: "POST", Pattern: "/{documentId}", Handler: h.RunDocument},
		},
	}
}

// RunRequest is the body for path-based triage execution.
type RunRequest struct {
	Path string `json:"path"`
}

type validationBody struct {
	Decision             triage.Decision `json:"decision"`
	MatchedRules         []string        `json:"matched_rules"`
	MissingRequiredRules []string        `json:"missing_required_rules"`
	ForbiddenHits        []string        `json:"forbidden_hits"`
	Justification        string          `json:"justification"`
}

type response struct {
	Route        triage.RouteDecision `json:"route"`
	DocumentType triage.DocumentType  `json:"document_type,omitempty"`
	Confidence   float64              `json:"confidence_score"`
	Details      triage.Details       `json:"classification_details"`
	Validation   *validationBody      `json:"validation,omitempty"`
	Error        string               `json:"error,omitempty"`
}

// Run executes the pipeline over a local file path supplied in the body.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.Run(r.Context(), req.Path)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	h.respond(w, result)
}

// RunDocument executes the pipeline over a registered document identified
// by the documentId path parameter.
func (h *Handler) RunDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("documentId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.RunDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			handlers.RespondError(w, h.logger, documents.MapHTTPStatus(err), err)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	h.respond(w, result)
}

// respond renders the result triple. Domain failures keep their resolved
// route in the body while the status comes from the error taxonomy mapping.
func (h *Handler) respond(w http.ResponseWriter, result *Result) {
	body := response{
		Route:        result.Route,
		DocumentType: result.Record.DocumentType,
		Confidence:   result.Record.Confidence,
		Details:      result.Record.Details,
	}

	status := http.StatusOK

	if result.Validation != nil {
		body.Validation = &validationBody{
			Decision:             result.Validation.Decision,
			MatchedRules:         result.Validation.MatchedRules,
			MissingRequiredRules: result.Validation.MissingRequiredRules,
			ForbiddenHits:        result.Validation.ForbiddenRuleHits,
			Justification:        result.Validation.Justification,
		}
	}

	if result.Err != nil {
		body.Error = result.Err.Error()
		status = triage.MapHTTPStatus(result.Err)
	}

	handlers.RespondJSON(w, status, body)
}
