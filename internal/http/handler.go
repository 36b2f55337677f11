package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/devnunnez/Dev/internal/catalog"
	"github.com/devnunnez/Dev/internal/config"
	"github.com/devnunnez/Dev/internal/domain"
	"github.com/devnunnez/Dev/internal/metrics"
	"github.com/devnunnez/Dev/internal/observability"
)

const (
	recentConversationsLimit = 50
	maxRequestBodyBytes      = 1 << 20
)

// Handler handles HTTP requests.
type Handler struct {
	generator     *domain.CodeGenerator
	previews      *domain.PreviewService
	conversations domain.ConversationLog
	catalog       *catalog.Catalog
	registry      domain.ProviderRegistry
	locale        domain.Locale
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	generator *domain.CodeGenerator,
	previews *domain.PreviewService,
	conversations domain.ConversationLog,
	templates *catalog.Catalog,
	registry domain.ProviderRegistry,
	generation *config.GenerationConfig,
) *Handler {
	return &Handler{
		generator:     generator,
		previews:      previews,
		conversations: conversations,
		catalog:       templates,
		registry:      registry,
		locale:        domain.LocaleFor(generation.Locale),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type serviceDescriptor struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Model     string   `json:"model"`
	Providers []string `json:"providers"`
	Locale    string   `json:"locale"`
}

type previewRequest struct {
	Code string `json:"code"`
}

type previewResponse struct {
	Success    bool   `json:"success"`
	PreviewURL string `json:"previewUrl,omitempty"`
	PreviewID  string `json:"previewId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// HandleRoot describes the service and its provider chain.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	providers, err := h.registry.List(ctx)
	if err != nil {
		h.internalError(ctx, w, "failed to list providers", err)
		return
	}

	model := domain.TemplateModelLabel
	if len(providers) > 0 {
		model = providers[0]
	}

	writeJSON(ctx, w, http.StatusOK, serviceDescriptor{
		Message:   h.locale.ServiceMessage,
		Status:    "running",
		Model:     model,
		Providers: providers,
		Locale:    h.locale.Code,
	})
}

// HandleGenerate runs the fallback chain and records the exchange.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.GenerationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("generation request received",
		observability.String("project_type", string(req.ProjectType)),
		observability.Int("history", len(req.History)))

	result, err := h.generator.Generate(ctx, &req)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			writeError(ctx, w, http.StatusBadRequest, validationErr.Reason)
			return
		}
		h.internalError(ctx, w, "generation failed", err)
		return
	}

	metrics.GenerationsTotal.WithLabelValues(result.Model).Inc()
	logger.Info("generation succeeded",
		observability.String("model", result.Model),
		observability.Int("code_bytes", len(result.Code)))

	h.recordConversation(ctx, &req, result)

	writeJSON(ctx, w, http.StatusOK, result)
}

// recordConversation persists the exchange. Failures never reach the caller.
func (h *Handler) recordConversation(ctx context.Context, req *domain.GenerationRequest, result *domain.GenerationResult) {
	projectType := req.ProjectType
	if projectType == "" {
		projectType = domain.ProjectComponent
	}

	conversation := &domain.Conversation{
		ID:          uuid.New().String(),
		Message:     req.Prompt,
		ProjectType: projectType,
		Result:      result,
		Timestamp:   time.Now().UTC(),
	}

	if err := h.conversations.Append(context.WithoutCancel(ctx), conversation); err != nil {
		metrics.PersistenceFailuresTotal.WithLabelValues("conversation").Inc()
		observability.FromContext(ctx).Error("failed to save conversation", observability.Error(err))
	}
}

// HandleCreatePreview stores a code snapshot and returns its locator.
func (h *Handler) HandleCreatePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req previewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	preview, err := h.previews.Create(ctx, req.Code)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			writeError(ctx, w, http.StatusBadRequest, validationErr.Reason)
			return
		}

		metrics.PersistenceFailuresTotal.WithLabelValues("preview").Inc()
		observability.FromContext(ctx).Error("failed to create preview", observability.Error(err))
		writeJSON(ctx, w, http.StatusInternalServerError, previewResponse{
			Success: false,
			Error:   "Failed to create preview",
		})
		return
	}

	writeJSON(ctx, w, http.StatusOK, previewResponse{
		Success:    true,
		PreviewURL: domain.PreviewURL(preview.ID),
		PreviewID:  preview.ID,
	})
}

// HandleGetPreview returns a stored preview record.
func (h *Handler) HandleGetPreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	preview, err := h.previews.Get(ctx, r.PathValue("id"))
	if errors.Is(err, domain.ErrPreviewNotFound) {
		writeError(ctx, w, http.StatusNotFound, "Preview not found")
		return
	}
	if err != nil {
		h.internalError(ctx, w, "failed to read preview", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, preview)
}

// HandleConversations returns the most recent exchanges, newest first.
func (h *Handler) HandleConversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conversations, err := h.conversations.Recent(ctx, recentConversationsLimit)
	if err != nil {
		h.internalError(ctx, w, "failed to read conversations", err)
		return
	}

	if conversations == nil {
		conversations = []*domain.Conversation{}
	}

	writeJSON(ctx, w, http.StatusOK, conversations)
}

// HandleTemplates returns the example project catalog.
func (h *Handler) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.catalog.List())
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// HandleOptions answers any OPTIONS request that is not a CORS preflight.
func (h *Handler) HandleOptions(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// HandleNotFound reports an unmatched route.
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(r.Context(), w, http.StatusNotFound, "Route "+r.URL.Path+" not found")
}

func (h *Handler) internalError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	observability.FromContext(ctx).Error(msg, observability.Error(err))
	writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, w, status, errorResponse{Error: msg})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}
