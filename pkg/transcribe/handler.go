package transcribe

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Store supplies the transcriptions of a record, ordered as stored; the
// client sorts by the explicit order field.
type Store interface {
	Transcriptions(ctx context.Context, recordID int64) ([]Transcription, error)
}

// RoutePath is the component route relative to the record base path.
const RoutePath = "/{recordID}/transcriptions"

// Handler serves the transcription list for a record as a JSON array in the
// wire shape the loader consumes.
func Handler(store Store, logger *zap.Logger) http.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		recordID, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		items, err := store.Transcriptions(r.Context(), recordID)
		if err != nil {
			logger.Error("list transcriptions",
				zap.Int64("record_id", recordID), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(toWire(items))
	}
}

// RegisterRoutes mounts the transcription endpoint under basePath on the
// router and returns the mounted pattern.
func RegisterRoutes(r chi.Router, basePath string, store Store, logger *zap.Logger) string {
	pattern := basePath + RoutePath
	r.Get(pattern, Handler(store, logger))
	return pattern
}
