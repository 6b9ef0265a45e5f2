package handlers

import (
	"encoding/json"
	"net/http"

	"storycrew/models"
)

type QuestionRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

type QuestionResponse struct {
	Entry       models.QAEntry `json:"entry"`
	NextExample string         `json:"next_example"`
}

// QuestionHandler answers a follow-up question about the current story.
// An empty question uses the current question example.
func QuestionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	s, err := sessions.Get(req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := s.AskQuestion(r.Context(), req.Question)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QuestionResponse{
		Entry:       entry,
		NextExample: s.QuestionExample(r.Context()),
	})
}
