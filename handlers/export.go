package handlers

import (
	"net/http"
)

// ExportHandler returns the serializable session snapshot consumed by the
// PDF builder.
func ExportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s, err := sessionFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.Snapshot())
}
