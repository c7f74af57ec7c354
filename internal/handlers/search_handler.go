package handlers

import (
	"net/http"

	"jtaclogs/internal/services"
)

// SearchHandler proxies catalog searches to the upstream API. The response
// body is forwarded as-is.
type SearchHandler struct {
	catalog services.CatalogClient
}

func NewSearchHandler(catalog services.CatalogClient) *SearchHandler {
	return &SearchHandler{catalog: catalog}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	if params.Get("query") == "" {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "A search query is required")
		return
	}

	result, err := h.catalog.Search(r.Context(), params)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadGateway, "search_failed", "Catalog search is currently unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(result)
}
