package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

type AgentRequest struct {
	SessionID   string `json:"session_id"`
	Description string `json:"description"`
}

// AgentsHandler creates an agent (POST) or lists the live agents (GET)
func AgentsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		createAgent(w, r)
	case http.MethodGet:
		listAgents(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func createAgent(w http.ResponseWriter, r *http.Request) {
	var req AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	s, err := sessions.Get(req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	a, err := s.CreateAgent(r.Context(), req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func listAgents(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Registry.List())
}

// AgentDetailRESTHandler handles RESTful paths like /agents/ID for edit
// and delete.
func AgentDetailRESTHandler(w http.ResponseWriter, r *http.Request) {
	// Extract agent ID from path
	path := strings.TrimPrefix(r.URL.Path, "/agents/")
	if path == "" || path == r.URL.Path {
		http.Error(w, "Agent ID is required", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(path)
	if err != nil {
		http.Error(w, "Invalid agent ID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		editAgent(w, r, id)
	case http.MethodDelete:
		deleteAgent(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func editAgent(w http.ResponseWriter, r *http.Request, id int) {
	var req AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	s, err := sessions.Get(req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	a, err := s.EditAgent(r.Context(), id, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func deleteAgent(w http.ResponseWriter, r *http.Request, id int) {
	s, err := sessionFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.DeleteAgent(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
