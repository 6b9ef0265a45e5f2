// Package session owns all per-session state and coordinates the agent
// registry, story builder, Q&A engine, and example generator.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"storycrew/agent"
	"storycrew/examples"
	"storycrew/llm"
	"storycrew/models"
	"storycrew/qa"
	"storycrew/story"
)

var (
	// ErrEmptyCreativeName is the only empty input that is not
	// substitutable by an example.
	ErrEmptyCreativeName = errors.New("creative name must not be empty")

	ErrNoStory         = errors.New("no story has been generated yet")
	ErrNotEnoughAgents = errors.New("a mission needs at least two agents")
)

// Session is one user's interaction. It exclusively owns every entity it
// holds; nothing outlives it.
type Session struct {
	ID           string
	CreativeName string
	Registry     *agent.Registry
	Mission      string
	Story        *models.Story
	QAHistory    []models.QAEntry

	generator *examples.Generator
	builder   *story.Builder
	engine    *qa.Engine

	agentExample    string
	missionExample  string
	questionExample string
}

// New starts a session. The creative name is required up front.
func New(client *llm.Client, creativeName string) (*Session, error) {
	name := strings.TrimSpace(creativeName)
	if name == "" {
		return nil, ErrEmptyCreativeName
	}

	return &Session{
		ID:           uuid.NewString(),
		CreativeName: name,
		Registry:     agent.NewRegistry(client),
		generator:    examples.NewGenerator(client),
		builder:      story.NewBuilder(client),
		engine:       qa.NewEngine(client),
	}, nil
}

// Rename changes the user's creative name. Changing the author resets the
// session wholesale: agents, mission, story, Q&A, and cached examples.
func (s *Session) Rename(creativeName string) error {
	name := strings.TrimSpace(creativeName)
	if name == "" {
		return ErrEmptyCreativeName
	}

	s.CreativeName = name
	s.Registry.Reset()
	s.Mission = ""
	s.Story = nil
	s.QAHistory = nil
	s.agentExample = ""
	s.missionExample = ""
	s.questionExample = ""
	return nil
}

// CreateAgent builds a new agent. Empty input substitutes the current
// agent-description example.
func (s *Session) CreateAgent(ctx context.Context, description string) (models.Agent, error) {
	d := strings.TrimSpace(description)
	usedExample := d == ""
	if usedExample {
		d = s.AgentExample()
	}
	a, err := s.Registry.Create(ctx, d)
	if err != nil {
		return models.Agent{}, err
	}
	// the shown example survives a failed attempt; consume it only now
	if usedExample {
		s.agentExample = ""
	}
	return a, nil
}

// EditAgent rewrites an existing agent from a new description
func (s *Session) EditAgent(ctx context.Context, id int, description string) (models.Agent, error) {
	d := strings.TrimSpace(description)
	if d == "" {
		return models.Agent{}, agent.ErrAgentNotFound
	}
	return s.Registry.Edit(ctx, id, d)
}

// DeleteAgent removes an agent and frees its number
func (s *Session) DeleteAgent(id int) error {
	return s.Registry.Delete(id)
}

// ActivateMission generates and installs a new story. Empty input
// substitutes the current mission example. The previous story and its Q&A
// history are discarded wholesale.
func (s *Session) ActivateMission(ctx context.Context, mission string) (models.Story, error) {
	if s.Registry.Len() < 2 {
		return models.Story{}, ErrNotEnoughAgents
	}

	m := strings.TrimSpace(mission)
	if m == "" {
		m = s.MissionExample()
		s.missionExample = ""
	}

	st := s.builder.Build(ctx, s.Registry.List(), m)
	s.Mission = m
	s.Story = &st
	s.QAHistory = nil
	// force a fresh follow-up example for the new story
	s.questionExample = ""
	return st, nil
}

// AskQuestion answers a follow-up question about the current story. Empty
// input substitutes the current question example. On success the entry is
// appended and the next question example is regenerated against the
// updated history.
func (s *Session) AskQuestion(ctx context.Context, question string) (models.QAEntry, error) {
	if s.Story == nil {
		return models.QAEntry{}, ErrNoStory
	}

	q := strings.TrimSpace(question)
	if q == "" {
		q = s.QuestionExample(ctx)
	}

	entry, err := s.engine.Ask(ctx, *s.Story, s.CreativeName, q)
	if err != nil {
		return models.QAEntry{}, err
	}

	s.QAHistory = append(s.QAHistory, entry)
	s.questionExample = s.generator.NextStoryQuestion(ctx, s.Story.Title, s.Story.Body, s.askedQuestions())
	return entry, nil
}

// AgentExample returns the cached agent-description placeholder,
// generating one if needed.
func (s *Session) AgentExample() string {
	if s.agentExample == "" {
		s.agentExample = s.generator.NextAgentExample()
	}
	return s.agentExample
}

// MissionExample returns the cached mission placeholder
func (s *Session) MissionExample() string {
	if s.missionExample == "" {
		s.missionExample = s.generator.NextMissionExample()
	}
	return s.missionExample
}

// QuestionExample returns the cached follow-up-question placeholder for
// the current story, or "" when no story exists yet.
func (s *Session) QuestionExample(ctx context.Context) string {
	if s.Story == nil {
		return ""
	}
	if s.questionExample == "" {
		s.questionExample = s.generator.NextStoryQuestion(ctx, s.Story.Title, s.Story.Body, s.askedQuestions())
	}
	return s.questionExample
}

// CreativeNameSuggestions draws three fresh name suggestions
func (s *Session) CreativeNameSuggestions() []string {
	return s.generator.NextCreativeNames()
}

// Snapshot exports the serializable session shape consumed by the PDF
// builder.
func (s *Session) Snapshot() models.SessionSnapshot {
	snap := models.SessionSnapshot{
		SessionID: s.ID,
		Author:    s.CreativeName,
		Mission:   s.Mission,
		Agents:    s.Registry.List(),
		QA:        append([]models.QAEntry(nil), s.QAHistory...),
	}
	if s.Story != nil {
		snap.Title = s.Story.Title
		snap.Paragraphs = s.Story.Paragraphs()
	}
	return snap
}

func (s *Session) askedQuestions() []string {
	asked := make([]string, 0, len(s.QAHistory))
	for _, entry := range s.QAHistory {
		asked = append(asked, entry.Question)
	}
	return asked
}
