package history

import (
	"encoding/json"
	"net/http"

	boltgroup "Boltex/internal/calc/boltgroup"
)

type Handler struct {
	Store *Store
}

type SaveRequest struct {
	Name  string          `json:"name"`
	Input boltgroup.Input `json:"input"`
}

// Save evaluates the input and appends the snapshot to the history.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := boltgroup.Calculate(req.Input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	saved := h.Store.Append(req.Name, req.Input, res)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items := h.Store.List()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}
