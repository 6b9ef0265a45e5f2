package handlers

import (
	"net/http"
)

type ExampleResponse struct {
	Kind    string   `json:"kind"`
	Example string   `json:"example,omitempty"`
	Names   []string `json:"names,omitempty"`
}

// ExamplesHandler serves the next placeholder example for a category:
// kind=agent|mission|question|creative_name
func ExamplesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s, err := sessionFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	kind := r.URL.Query().Get("kind")
	resp := ExampleResponse{Kind: kind}

	switch kind {
	case "agent":
		resp.Example = s.AgentExample()
	case "mission":
		resp.Example = s.MissionExample()
	case "question":
		resp.Example = s.QuestionExample(r.Context())
	case "creative_name":
		resp.Names = s.CreativeNameSuggestions()
	default:
		http.Error(w, "Unknown example kind", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
