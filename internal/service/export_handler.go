package service

import (
	"log/slog"
	"net/http"

	"github.com/mmynk/creditline/internal/export"
	"github.com/mmynk/creditline/internal/records"
)

// ExportPath is where the CSV download is mounted.
const ExportPath = "/export/records.csv"

// ExportHandler serves the record listing as a CSV download. The optional
// search, sort_by and descending query parameters select rows the same way
// ListRecords does.
type ExportHandler struct {
	store RecordStore
}

// NewExportHandler creates an ExportHandler reading from store.
func NewExportHandler(store RecordStore) *ExportHandler {
	return &ExportHandler{store: store}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := r.URL.Query()
	sortBy, err := records.ParseSortKey(params.Get("sort_by"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	all, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("Export failed - could not load records", "error", err)
		http.Error(w, "failed to load records", http.StatusInternalServerError)
		return
	}

	q := records.Query{
		Search:     params.Get("search"),
		SortBy:     sortBy,
		Descending: params.Get("descending") == "true",
	}
	body, err := export.RecordsCSV(q.Apply(all))
	if err != nil {
		slog.Error("Export failed - could not render csv", "error", err)
		http.Error(w, "failed to render csv", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", export.ContentDisposition(export.DefaultFilename))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Warn("Export write failed", "error", err)
	}

	slog.Info("Records exported", "stored", len(all))
}
