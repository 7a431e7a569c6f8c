package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/lookup"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	respondJSON(w, logger, status, errorResponse{Error: msg})
}

// findCategory looks id up among the categories the provider serves
func findCategory(ctx context.Context, provider lookup.CatalogProvider, id catalog.CategoryID) (catalog.Category, bool, error) {
	categories, err := provider.Categories(ctx)
	if err != nil {
		return catalog.Category{}, false, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, true, nil
		}
	}
	return catalog.Category{}, false, nil
}
