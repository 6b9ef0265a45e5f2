package agent_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycrew/agent"
	"storycrew/llm"
	"storycrew/llm/llmtest"
)

func profileJSON(name string) string {
	payload, _ := json.Marshal(map[string]any{
		"name":        name,
		"description": fmt.Sprintf("%s is a cheerful helper.", name),
		"character":   fmt.Sprintf("%s loves adventures. %s always helps friends. %s never gives up.", name, name, name),
	})
	return string(payload)
}

func newRegistry(steps ...llmtest.Step) (*agent.Registry, *llmtest.ScriptedProvider) {
	provider := llmtest.NewScriptedProvider(steps...)
	return agent.NewSeededRegistry(llm.NewClient(provider), 7), provider
}

func TestCreateAssignsIDAndNumber(t *testing.T) {
	r, _ := newRegistry(
		llmtest.Respond(profileJSON("Luna")),
		llmtest.Respond(profileJSON("Max")),
		llmtest.Respond(profileJSON("Ruby")),
	)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		before := r.Len()
		a, err := r.Create(ctx, "a brave explorer")
		require.NoError(t, err)
		assert.Equal(t, before, a.ID, "id equals registry length before the call")
		assert.GreaterOrEqual(t, a.Number, 100)
		assert.LessOrEqual(t, a.Number, 999)
		assert.Equal(t, "a brave explorer", a.FullDescription)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Character)
	}

	numbers := make(map[int]bool)
	for _, a := range r.List() {
		assert.False(t, numbers[a.Number], "live agents must not share a number")
		numbers[a.Number] = true
	}
	assert.Equal(t, numbers, r.UsedNumbers())
}

func TestCreatePassesExistingNamesToPrompt(t *testing.T) {
	r, provider := newRegistry(
		llmtest.Respond(profileJSON("Luna")),
		llmtest.Respond(profileJSON("Max")),
	)
	ctx := context.Background()

	_, err := r.Create(ctx, "an explorer")
	require.NoError(t, err)
	_, err = r.Create(ctx, "an inventor")
	require.NoError(t, err)

	require.Len(t, provider.Requests, 2)
	assert.Contains(t, provider.Requests[1].System, "luna")
}

func TestCreateFailureAppendsNothing(t *testing.T) {
	r, _ := newRegistry(llmtest.Fail(&llm.TransportError{Provider: "scripted", Err: errors.New("boom")}))

	_, err := r.Create(context.Background(), "an explorer")
	require.Error(t, err)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.UsedNumbers())
}

func TestCreateMissingNameIsMalformed(t *testing.T) {
	r, _ := newRegistry(llmtest.Respond(`{"description": "nice", "character": "kind"}`))

	_, err := r.Create(context.Background(), "an explorer")

	var malformed *llm.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 0, r.Len())
}

func TestEditPreservesIDAndNumber(t *testing.T) {
	r, provider := newRegistry(
		llmtest.Respond(profileJSON("Luna")),
		llmtest.Respond(profileJSON("Nova")),
	)
	ctx := context.Background()

	created, err := r.Create(ctx, "an explorer")
	require.NoError(t, err)

	edited, err := r.Edit(ctx, created.ID, "a stargazing explorer")
	require.NoError(t, err)
	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, created.Number, edited.Number)
	assert.Equal(t, "Nova", edited.Name)
	assert.Equal(t, "a stargazing explorer", edited.FullDescription)

	// the edited agent's own name is excluded from the avoid list
	assert.NotContains(t, provider.Requests[1].System, "luna")
}

func TestEditFailureLeavesAgentUnchanged(t *testing.T) {
	r, _ := newRegistry(
		llmtest.Respond(profileJSON("Luna")),
		llmtest.Fail(&llm.TransportError{Provider: "scripted", Err: errors.New("boom")}),
	)
	ctx := context.Background()

	created, err := r.Create(ctx, "an explorer")
	require.NoError(t, err)

	_, err = r.Edit(ctx, created.ID, "something new")
	require.Error(t, err)

	got, ok := r.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestEditUnknownAgent(t *testing.T) {
	r, _ := newRegistry(llmtest.Respond(profileJSON("Luna")))

	_, err := r.Edit(context.Background(), 99, "whatever")
	assert.ErrorIs(t, err, agent.ErrAgentNotFound)
}

func TestDeleteReturnsNumberToPool(t *testing.T) {
	steps := make([]llmtest.Step, 0, 8)
	for _, name := range []string{"A", "B", "C", "D"} {
		steps = append(steps, llmtest.Respond(profileJSON(name)))
	}
	r, _ := newRegistry(steps...)
	ctx := context.Background()

	first, err := r.Create(ctx, "one")
	require.NoError(t, err)
	second, err := r.Create(ctx, "two")
	require.NoError(t, err)
	third, err := r.Create(ctx, "three")
	require.NoError(t, err)

	require.NoError(t, r.Delete(first.ID))
	assert.Equal(t, 2, r.Len())
	assert.False(t, r.UsedNumbers()[first.Number])

	fourth, err := r.Create(ctx, "four")
	require.NoError(t, err)
	assert.NotEqual(t, second.Number, fourth.Number)
	assert.NotEqual(t, third.Number, fourth.Number)

	// ids keep advancing, never reused
	assert.Equal(t, 3, fourth.ID)
}

func TestCreateDeleteLeavesNoLeak(t *testing.T) {
	const n = 20
	steps := make([]llmtest.Step, 0, n)
	for i := 0; i < n; i++ {
		steps = append(steps, llmtest.Respond(profileJSON(fmt.Sprintf("Agent%d", i))))
	}
	r, _ := newRegistry(steps...)
	ctx := context.Background()

	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		a, err := r.Create(ctx, "helper")
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}
	for _, id := range ids {
		require.NoError(t, r.Delete(id))
	}

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.UsedNumbers())
}

func TestDeleteUnknownAgent(t *testing.T) {
	r, _ := newRegistry()
	assert.ErrorIs(t, r.Delete(5), agent.ErrAgentNotFound)
}

func TestNormalizesStructuredFields(t *testing.T) {
	payload := `{
		"name": "Gadget",
		"description": {"traits": ["clever", "speedy"], "expertise": "machines"},
		"character": "{'working_style': 'tinkers all day'}"
	}`
	r, _ := newRegistry(llmtest.Respond(payload))

	a, err := r.Create(context.Background(), "an inventor")
	require.NoError(t, err)
	assert.Equal(t, "Traits: clever, speedy. Expertise: machines", a.Description)
	assert.Equal(t, "Working Style: tinkers all day", a.Character)
}
