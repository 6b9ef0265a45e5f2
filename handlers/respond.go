package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"storycrew/agent"
	"storycrew/llm"
	"storycrew/session"
)

var sessions *session.Manager

// Init wires the handlers to the session manager
func Init(m *session.Manager) {
	sessions = m
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps engine errors onto HTTP statuses and a JSON envelope
func writeError(w http.ResponseWriter, err error) {
	var transportErr *llm.TransportError
	var malformedErr *llm.MalformedResponseError

	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error: fmt.Sprintf("No LLM credential found. Set the %s environment variable or add the key to %s.",
				llm.EnvKeyName("openai"), llm.DefaultCredentialsPath()),
		})
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, agent.ErrAgentNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, session.ErrEmptyCreativeName),
		errors.Is(err, session.ErrNotEnoughAgents),
		errors.Is(err, session.ErrNoStory):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &transportErr), errors.As(err, &malformedErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

// sessionFromQuery resolves the session from the session_id query parameter
func sessionFromQuery(r *http.Request) (*session.Session, error) {
	return sessions.Get(r.URL.Query().Get("session_id"))
}
