package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/summarizer-console/internal/domain/summarizer"
	"github.com/yanqian/summarizer-console/internal/infra/summaryapi"
	"github.com/yanqian/summarizer-console/internal/infra/viewstate"
	apperrors "github.com/yanqian/summarizer-console/pkg/errors"
)

// Submitter starts summarization requests.
type Submitter interface {
	Start(ctx context.Context, text string, length summarizer.Length, model string) (summarizer.Outcome, error)
	State() summarizer.Outcome
}

// Actions are the auxiliary presenter actions.
type Actions interface {
	Copy(ctx context.Context)
	SelectModel(model string) bool
}

// ViewSource exposes what is currently displayed.
type ViewSource interface {
	Snapshot() viewstate.Snapshot
}

// HealthProber checks the summarization backend.
type HealthProber interface {
	Health(ctx context.Context) (summaryapi.Health, error)
}

// Handler wires the HTTP transport to the controller and presenter.
type Handler struct {
	submitter Submitter
	actions   Actions
	view      ViewSource
	backend   HealthProber
	catalog   summarizer.Catalog
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(submitter Submitter, actions Actions, view ViewSource, backend HealthProber, catalog summarizer.Catalog, logger *slog.Logger) *Handler {
	return &Handler{
		submitter: submitter,
		actions:   actions,
		view:      view,
		backend:   backend,
		catalog:   catalog,
		logger:    logger.With("component", "http.handler"),
	}
}

type submitRequest struct {
	Text   string `json:"text"`
	Length string `json:"length"`
	Model  string `json:"model"`
}

type selectModelRequest struct {
	Model string `json:"model"`
}

type viewResponse struct {
	Phase        summarizer.Phase   `json:"phase"`
	SubmissionID string             `json:"submissionId,omitempty"`
	View         viewstate.Snapshot `json:"view"`
}

// Submit starts a summarization request and returns immediately.
func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	length, err := summarizer.ParseLength(req.Length)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if req.Model != "" && !h.catalog.Has(req.Model) {
		abortWithError(c, fromAppError(apperrors.Wrap(apperrors.CodeUnknownModel, "unknown model: "+req.Model, nil)))
		return
	}

	out, err := h.submitter.Start(c.Request.Context(), req.Text, length, req.Model)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	if out.Phase == summarizer.PhaseFailure {
		abortWithError(c, fromAppError(apperrors.Wrap(apperrors.CodeInvalidInput, out.Message, nil)))
		return
	}

	c.JSON(http.StatusAccepted, h.viewOf(out))
}

// View returns the current display state.
func (h *Handler) View(c *gin.Context) {
	c.JSON(http.StatusOK, h.viewOf(h.submitter.State()))
}

// Copy runs the copy action; the page reads the copied text from the view.
func (h *Handler) Copy(c *gin.Context) {
	h.actions.Copy(c.Request.Context())
	c.JSON(http.StatusOK, h.viewOf(h.submitter.State()))
}

// SelectModel recomputes the slow model advisory.
func (h *Handler) SelectModel(c *gin.Context) {
	var req selectModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if !h.catalog.Has(req.Model) {
		abortWithError(c, fromAppError(apperrors.Wrap(apperrors.CodeUnknownModel, "unknown model: "+req.Model, nil)))
		return
	}
	advisory := h.actions.SelectModel(req.Model)
	c.JSON(http.StatusOK, gin.H{"model": req.Model, "advisory": advisory})
}

// Models lists the selectable models and lengths.
func (h *Handler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

// BackendHealth probes the summarization backend.
func (h *Handler) BackendHealth(c *gin.Context) {
	health, err := h.backend.Health(c.Request.Context())
	if err != nil {
		abortWithError(c, fromAppError(apperrors.Wrap(apperrors.CodeBackendUnavailable, "summarization backend is unavailable", err)))
		return
	}
	c.JSON(http.StatusOK, health)
}

func (h *Handler) viewOf(out summarizer.Outcome) viewResponse {
	return viewResponse{
		Phase:        out.Phase,
		SubmissionID: out.SubmissionID,
		View:         h.view.Snapshot(),
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
