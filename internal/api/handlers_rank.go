package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AbdulNafisa/adobe-hackathon/internal/collection"
)

type rankRequest struct {
	// CollectionPath is a directory on the server containing the
	// collection input config and its PDFs directory.
	CollectionPath string `json:"collection_path"`
	// Order is "rank" (default, per-document rank interleave) or
	// "score" (global descending relevance).
	Order string `json:"order,omitempty"`
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.CollectionPath == "" {
		jsonError(w, "collection_path is required", http.StatusBadRequest)
		return
	}

	rk := *s.ranker
	switch req.Order {
	case "", string(collection.OrderByRank):
		rk.Order = collection.OrderByRank
	case string(collection.OrderByScore):
		rk.Order = collection.OrderByScore
	default:
		jsonError(w, "order must be \"rank\" or \"score\"", http.StatusBadRequest)
		return
	}

	out, err := rk.Process(req.CollectionPath)
	if err != nil {
		if errors.Is(err, collection.ErrConfigurationMissing) {
			jsonError(w, err.Error(), http.StatusNotFound)
			return
		}
		s.log.Error("collection ranking failed", "path", req.CollectionPath, "error", err)
		jsonError(w, "ranking failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
