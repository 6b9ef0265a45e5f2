package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycrew/llm"
	"storycrew/llm/llmtest"
	"storycrew/models"
	"storycrew/session"
)

const testBody = `The team left home at sunrise. They walked and sang together. Luna carried the map all day. Max fixed the squeaky wagon wheel. Everyone felt happy and brave.

The road crossed a sunny meadow. Bees buzzed around the flowers. The friends waved at every bird. Luna found a shortcut through the grass. Max timed their steps with a stopwatch.

A big hill stood in their way. They climbed it one step at a time. Luna cheered for Max near the top. Max pulled Luna up the last rock. Together they reached the very peak.

The mission ended with a great view. The friends clapped and laughed loudly. They ate sandwiches on the hilltop. It was a day to remember forever. Best friends make the best teams.`

func setupFlow(t *testing.T) string {
	t.Helper()

	profile := func(name string) llmtest.Step {
		payload, _ := json.Marshal(map[string]string{
			"name":        name,
			"description": name + " is a cheerful helper.",
			"character":   name + " loves adventures and always helps friends.",
		})
		return llmtest.Respond(string(payload))
	}
	storyStep, _ := json.Marshal(map[string]string{"title": "The Sunny Hill Mission Story", "story": testBody})

	provider := llmtest.NewScriptedProvider(
		profile("Luna"),
		profile("Max"),
		llmtest.Respond(string(storyStep)),
		llmtest.Respond("Luna was the bravest, Captain Stardust!"),
		llmtest.Respond("What did Max fix on the wagon?"),
	)
	Init(session.NewManager(llm.NewClient(provider)))

	w := doJSON(t, StartSessionHandler, http.MethodPost, "/session", map[string]string{"creative_name": "Captain Stardust"})
	require.Equal(t, http.StatusOK, w.Code)

	var started StartSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	require.NotEmpty(t, started.SessionID)
	require.Len(t, started.NameSuggestions, 3)
	return started.SessionID
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestFullSessionFlow(t *testing.T) {
	id := setupFlow(t)

	// two agents
	w := doJSON(t, AgentsHandler, http.MethodPost, "/agents", AgentRequest{SessionID: id, Description: "a stargazer"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, AgentsHandler, http.MethodPost, "/agents", AgentRequest{SessionID: id, Description: "an inventor"})
	require.Equal(t, http.StatusOK, w.Code)

	// mission installs a story
	w = doJSON(t, MissionHandler, http.MethodPost, "/mission", MissionRequest{SessionID: id, Mission: "climb the sunny hill"})
	require.Equal(t, http.StatusOK, w.Code)

	var mission MissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mission))
	assert.Equal(t, "The Sunny Hill Mission Story", mission.Story.Title)
	assert.Len(t, mission.Story.Paragraphs(), 4)

	// a follow-up question
	w = doJSON(t, QuestionHandler, http.MethodPost, "/question", QuestionRequest{SessionID: id, Question: "Who was the bravest?"})
	require.Equal(t, http.StatusOK, w.Code)

	var answered QuestionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &answered))
	assert.Contains(t, answered.Entry.Answer, "Captain Stardust")
	assert.NotEqual(t, "Who was the bravest?", answered.NextExample)

	// export snapshot
	req := httptest.NewRequest(http.MethodGet, "/export?session_id="+id, nil)
	rec := httptest.NewRecorder()
	ExportHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap models.SessionSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "Captain Stardust", snap.Author)
	assert.Len(t, snap.Agents, 2)
	assert.Len(t, snap.Paragraphs, 4)
	assert.Len(t, snap.QA, 1)
}

func TestStartSessionRequiresName(t *testing.T) {
	Init(session.NewManager(llm.NewClient(llmtest.NewScriptedProvider())))

	w := doJSON(t, StartSessionHandler, http.MethodPost, "/session", map[string]string{"creative_name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownSession(t *testing.T) {
	Init(session.NewManager(llm.NewClient(llmtest.NewScriptedProvider())))

	req := httptest.NewRequest(http.MethodGet, "/session?session_id=nope", nil)
	w := httptest.NewRecorder()
	SessionHandler(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMissingCredentialMessage(t *testing.T) {
	provider := llmtest.NewScriptedProvider(llmtest.Fail(llm.ErrMissingCredential))
	Init(session.NewManager(llm.NewClient(provider)))

	w := doJSON(t, StartSessionHandler, http.MethodPost, "/session", map[string]string{"creative_name": "Captain Stardust"})
	require.Equal(t, http.StatusOK, w.Code)
	var started StartSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	w = doJSON(t, AgentsHandler, http.MethodPost, "/agents", AgentRequest{SessionID: started.SessionID, Description: "a stargazer"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "OPENAI_API_KEY")
}

func TestAgentDetailRejectsBadID(t *testing.T) {
	Init(session.NewManager(llm.NewClient(llmtest.NewScriptedProvider())))

	req := httptest.NewRequest(http.MethodDelete, "/agents/notanumber", nil)
	w := httptest.NewRecorder()
	AgentDetailRESTHandler(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExamplesHandlerKinds(t *testing.T) {
	id := setupFlow(t)

	for _, kind := range []string{"agent", "mission", "creative_name"} {
		req := httptest.NewRequest(http.MethodGet, "/examples?session_id="+id+"&kind="+kind, nil)
		w := httptest.NewRecorder()
		ExamplesHandler(w, req)
		require.Equal(t, http.StatusOK, w.Code, kind)

		var resp ExampleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		if kind == "creative_name" {
			assert.Len(t, resp.Names, 3)
		} else {
			assert.NotEmpty(t, resp.Example)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/examples?session_id="+id+"&kind=bogus", nil)
	w := httptest.NewRecorder()
	ExamplesHandler(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
