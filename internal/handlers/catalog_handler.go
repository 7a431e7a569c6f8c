package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/lookup"
	"go.uber.org/zap"
)

// CatalogHandler serves the catalog as a JSON API
type CatalogHandler struct {
	provider lookup.CatalogProvider
	logger   *zap.Logger
}

func NewCatalogHandler(provider lookup.CatalogProvider) *CatalogHandler {
	return &CatalogHandler{provider: provider, logger: zap.NewNop()}
}

type pageResponse struct {
	catalog.Page
	Path string `json:"path"`
}

type categoryResponse struct {
	catalog.Category
	PageCount int                   `json:"page_count"`
	Path      string                `json:"path"`
	Style     catalog.CategoryStyle `json:"style"`
}

type categoryDetailResponse struct {
	categoryResponse
	Pages []pageResponse `json:"pages"`
}

func toPageResponses(pages []catalog.Page) []pageResponse {
	out := make([]pageResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, pageResponse{Page: p, Path: catalog.ExamplePath(p)})
	}
	return out
}

func toCategoryResponse(c catalog.Category, count int) categoryResponse {
	return categoryResponse{
		Category:  c,
		PageCount: count,
		Path:      catalog.CategoryPath(c.ID),
		Style:     catalog.StyleFor(c.ID),
	}
}

// RegisterRoutes registers the routes for this handler
func (h *CatalogHandler) RegisterRoutes(router *mux.Router, logger *zap.Logger) {
	h.logger = logger.Named("catalog_api")
	router.HandleFunc("/v1/categories", h.handleListCategories).Methods(http.MethodGet)
	router.HandleFunc("/v1/categories/{categoryId}", h.handleGetCategory).Methods(http.MethodGet)
	router.HandleFunc("/v1/pages", h.handleListPages).Methods(http.MethodGet)
	router.HandleFunc("/v1/pages/{pageId}", h.handleGetPage).Methods(http.MethodGet)
	router.HandleFunc("/v1/stats", h.handleStats).Methods(http.MethodGet)
}

func (h *CatalogHandler) handleListCategories(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	categories, err := h.provider.Categories(ctx)
	if err != nil {
		h.logger.Error("failed to fetch categories", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	pages, err := h.provider.Pages(ctx)
	if err != nil {
		h.logger.Error("failed to fetch pages", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch pages")
		return
	}

	stats := catalog.Summarize(categories, pages)
	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c, stats.ByCategory[c.ID]))
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"categories": out})
}

func (h *CatalogHandler) handleGetCategory(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	raw := mux.Vars(req)["categoryId"]

	id, ok := catalog.ParseCategoryID(raw)
	if !ok {
		respondError(w, h.logger, http.StatusNotFound, "Unknown category: "+raw)
		return
	}
	c, found, err := findCategory(ctx, h.provider, id)
	if err != nil {
		h.logger.Error("failed to fetch categories", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	if !found {
		respondError(w, h.logger, http.StatusNotFound, "Unknown category: "+raw)
		return
	}

	pages, err := h.provider.PagesByCategory(ctx, id)
	if err != nil {
		h.logger.Error("failed to fetch pages", zap.String("category", raw), zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch pages")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, categoryDetailResponse{
		categoryResponse: toCategoryResponse(c, len(pages)),
		Pages:            toPageResponses(pages),
	})
}

func (h *CatalogHandler) handleListPages(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	filter := catalog.Filter{Tag: q.Get("tag")}

	if raw := q.Get("category"); raw != "" {
		id, ok := catalog.ParseCategoryID(raw)
		if !ok {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid category: "+raw)
			return
		}
		filter.Category = id
	}
	if raw := q.Get("difficulty"); raw != "" {
		d, ok := catalog.ParseDifficulty(raw)
		if !ok {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid difficulty: "+raw)
			return
		}
		filter.Difficulty = d
	}

	pages, err := h.provider.Pages(req.Context())
	if err != nil {
		h.logger.Error("failed to fetch pages", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch pages")
		return
	}

	matched := catalog.FilterPages(pages, filter)
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"count": len(matched),
		"pages": toPageResponses(matched),
	})
}

func (h *CatalogHandler) handleGetPage(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["pageId"]

	page, ok, err := h.provider.PageByID(req.Context(), id)
	if err != nil {
		h.logger.Error("failed to fetch page", zap.String("page_id", id), zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch page")
		return
	}
	if !ok {
		respondError(w, h.logger, http.StatusNotFound, "Page not found: "+id)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, pageResponse{Page: page, Path: catalog.ExamplePath(page)})
}

func (h *CatalogHandler) handleStats(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	categories, err := h.provider.Categories(ctx)
	if err != nil {
		h.logger.Error("failed to fetch categories", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	pages, err := h.provider.Pages(ctx)
	if err != nil {
		h.logger.Error("failed to fetch pages", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch pages")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, catalog.Summarize(categories, pages))
}
