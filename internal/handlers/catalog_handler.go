package handlers

import (
	"log/slog"
	"net/http"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/service"
	"reel_lingo_backend/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *slog.Logger
}

func NewCatalogHandler(catalogService service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// GetCategories lists all categories with their levels and the caller's
// completion flags.
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCategories"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	categories, err := h.catalogService.ListCategories(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing categories in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, categories, logger)
}

// GetCategoryLevels lists the levels of one category with unlock state.
func (h *CatalogHandler) GetCategoryLevels(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCategoryLevels"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	slug := chi.URLParam(r, "slug")
	category, statuses, err := h.catalogService.LevelsForCategory(r.Context(), userID, slug)
	if err != nil {
		logger.Warn("Error resolving category levels in service", slog.String("slug", slug), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"category": map[string]interface{}{
			"id":   category.CategoryID,
			"slug": category.Slug,
			"name": category.Name,
			"kind": category.Kind,
		},
		"levels": statuses,
	}, logger)
}

// levelIDParam is shared by the per-kind listing handlers.
func levelIDParam(r *http.Request) (uuid.UUID, error) {
	return pathUUID(r, "level_id")
}
