package handlers

import (
	"encoding/json"
	"net/http"

	"storycrew/models"
)

type StartSessionRequest struct {
	CreativeName string `json:"creative_name"`
}

type StartSessionResponse struct {
	SessionID       string   `json:"session_id"`
	CreativeName    string   `json:"creative_name"`
	NameSuggestions []string `json:"name_suggestions"`
}

// StartSessionHandler creates a new session for a creative name
func StartSessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	s, err := sessions.Start(req.CreativeName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StartSessionResponse{
		SessionID:       s.ID,
		CreativeName:    s.CreativeName,
		NameSuggestions: s.CreativeNameSuggestions(),
	})
}

type SessionView struct {
	SessionID    string           `json:"session_id"`
	CreativeName string           `json:"creative_name"`
	Mission      string           `json:"mission"`
	Agents       []models.Agent   `json:"agents"`
	Story        *models.Story    `json:"story,omitempty"`
	QAHistory    []models.QAEntry `json:"qa_history"`
}

// SessionHandler returns the current session state
func SessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s, err := sessionFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SessionView{
		SessionID:    s.ID,
		CreativeName: s.CreativeName,
		Mission:      s.Mission,
		Agents:       s.Registry.List(),
		Story:        s.Story,
		QAHistory:    s.QAHistory,
	})
}

type RenameRequest struct {
	SessionID    string `json:"session_id"`
	CreativeName string `json:"creative_name"`
}

// RenameHandler changes the user's creative name, which resets the session
func RenameHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	s, err := sessions.Get(req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.Rename(req.CreativeName); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"creative_name": s.CreativeName})
}
