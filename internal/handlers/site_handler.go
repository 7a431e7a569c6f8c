package handlers

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/lookup"
	"github.com/shaibs3/pagecatalog/internal/site"
	"go.uber.org/zap"
)

// SiteHandler serves the server-rendered catalog pages
type SiteHandler struct {
	provider lookup.CatalogProvider
	renderer *site.Renderer
	logger   *zap.Logger
}

func NewSiteHandler(provider lookup.CatalogProvider, renderer *site.Renderer) *SiteHandler {
	return &SiteHandler{provider: provider, renderer: renderer, logger: zap.NewNop()}
}

// RegisterRoutes registers the routes for this handler
func (h *SiteHandler) RegisterRoutes(router *mux.Router, logger *zap.Logger) {
	h.logger = logger.Named("site")
	router.HandleFunc(catalog.HomePath, h.handleHome).Methods(http.MethodGet)
	router.HandleFunc(catalog.CatalogPath, h.handleCatalog).Methods(http.MethodGet)
	router.HandleFunc(catalog.CatalogPath+"/category/{categoryId}", h.handleCategory).Methods(http.MethodGet)
	router.HandleFunc("/examples/{category}/{pageId}", h.handleExample).Methods(http.MethodGet)
}

func (h *SiteHandler) handleHome(w http.ResponseWriter, req *http.Request) {
	http.Redirect(w, req, catalog.CatalogPath, http.StatusFound)
}

func (h *SiteHandler) handleCatalog(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	categories, err := h.provider.Categories(ctx)
	if err != nil {
		h.fail(w, "failed to fetch categories", err)
		return
	}
	pages, err := h.provider.Pages(ctx)
	if err != nil {
		h.fail(w, "failed to fetch pages", err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderCatalog(&buf, categories, pages); err != nil {
		h.fail(w, "failed to render catalog", err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *SiteHandler) handleCategory(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, ok := catalog.ParseCategoryID(mux.Vars(req)["categoryId"])
	if !ok {
		http.NotFound(w, req)
		return
	}
	c, found, err := findCategory(ctx, h.provider, id)
	if err != nil {
		h.fail(w, "failed to fetch categories", err)
		return
	}
	if !found {
		http.NotFound(w, req)
		return
	}
	pages, err := h.provider.PagesByCategory(ctx, id)
	if err != nil {
		h.fail(w, "failed to fetch pages", err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderCategory(&buf, c, pages); err != nil {
		h.fail(w, "failed to render category", err)
		return
	}
	writeHTML(w, buf.Bytes())
}

// handleExample 404s unless the page exists and is filed under the category in the path
func (h *SiteHandler) handleExample(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	vars := mux.Vars(req)

	page, ok, err := h.provider.PageByID(ctx, vars["pageId"])
	if err != nil {
		h.fail(w, "failed to fetch page", err)
		return
	}
	if !ok || !catalog.MatchesExample(page, vars["category"]) {
		http.NotFound(w, req)
		return
	}
	c, found, err := findCategory(ctx, h.provider, page.Category)
	if err != nil {
		h.fail(w, "failed to fetch categories", err)
		return
	}
	if !found {
		http.NotFound(w, req)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderExample(&buf, c, page); err != nil {
		h.fail(w, "failed to render example", err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *SiteHandler) fail(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
