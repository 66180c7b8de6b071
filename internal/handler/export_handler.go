package handler

import (
	"encoding/json"
	"fmt"
	"go-admin-dashboard/internal/data"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// exportable lists the keys whose stored documents can be downloaded.
var exportable = map[string]bool{
	data.KeyAchievements: true,
	data.KeyActivities:   true,
	data.KeyNews:         true,
	data.KeyFAQ:          true,
	data.KeyRecycleBin:   true,
	data.KeyLog:          true,
}

// ExportHandler holds dependencies for the export and crawler handlers.
type ExportHandler struct {
	kv data.KV
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(kv data.KV) *ExportHandler {
	return &ExportHandler{kv: kv}
}

// robotsHandler keeps crawlers away from the dashboard.
func (h *ExportHandler) robotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "User-agent: *")
	fmt.Fprintln(w, "Disallow: /")
}

// exportHandler serves the stored JSON document of one collection key as a
// download, exactly as it is stored.
func (h *ExportHandler) exportHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !exportable[key] {
		http.NotFound(w, r)
		return
	}
	e, err := h.kv.Get(r.Context(), key)
	if err != nil {
		http.Error(w, "Failed to read "+key, http.StatusInternalServerError)
		return
	}
	payload := []byte("[]")
	if e != nil {
		if !json.Valid(e.Payload) {
			http.Error(w, "Stored document is malformed", http.StatusInternalServerError)
			return
		}
		payload = e.Payload
	}

	filename := fmt.Sprintf("%s-%s.json", key, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(payload)
}
