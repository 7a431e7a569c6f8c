package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shaibs3/pagecatalog/internal/lookup"
	"go.uber.org/zap"
)

// HealthHandler reports whether the catalog backend answers
type HealthHandler struct {
	provider lookup.CatalogProvider
	logger   *zap.Logger
}

func NewHealthHandler(provider lookup.CatalogProvider) *HealthHandler {
	return &HealthHandler{provider: provider, logger: zap.NewNop()}
}

// RegisterRoutes registers the routes for this handler
func (h *HealthHandler) RegisterRoutes(router *mux.Router, logger *zap.Logger) {
	h.logger = logger.Named("health")
	router.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, req *http.Request) {
	categories, err := h.provider.Categories(req.Context())
	if err != nil {
		h.logger.Warn("catalog backend unhealthy", zap.Error(err))
		respondJSON(w, h.logger, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unavailable",
		})
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"categories": len(categories),
	})
}
