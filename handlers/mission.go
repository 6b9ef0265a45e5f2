package handlers

import (
	"encoding/json"
	"net/http"

	"storycrew/models"
)

type MissionRequest struct {
	SessionID string `json:"session_id"`
	Mission   string `json:"mission"`
}

type MissionResponse struct {
	Mission string       `json:"mission"`
	Story   models.Story `json:"story"`
}

// MissionHandler activates a mission and installs the generated story.
// An empty mission uses the current mission example.
func MissionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	s, err := sessions.Get(req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	st, err := s.ActivateMission(r.Context(), req.Mission)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MissionResponse{Mission: s.Mission, Story: st})
}
