package catalog

import (
	"encoding/json"
	"net/http"
)

// Handler serves the catalog queries that populate the grade/size selectors.
type Handler struct{}

func (h *Handler) Grades(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Grades())
}

func (h *Handler) Sizes(w http.ResponseWriter, r *http.Request) {
	sizes := Sizes(r.URL.Query().Get("grade"))
	if sizes == nil {
		sizes = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sizes)
}

func (h *Handler) Spec(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec, ok := Lookup(q.Get("grade"), q.Get("size"))
	if !ok {
		http.Error(w, "Unknown grade or size", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spec)
}
