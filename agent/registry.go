// Package agent holds the in-session registry of story agents.
package agent

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"storycrew/llm"
	"storycrew/models"
	"storycrew/profile"
	"storycrew/prompts"
)

var ErrAgentNotFound = errors.New("agent not found")

// Registry owns the live agents of one session. IDs are monotonic and never
// reused; numbers are drawn from [100,999] and returned to the pool on
// deletion. Mutations happen only on the session's action path, so no
// locking is needed.
type Registry struct {
	client *llm.Client
	rng    *rand.Rand
	nextID int
	agents []models.Agent
	used   map[int]bool
}

func NewRegistry(client *llm.Client) *Registry {
	return NewSeededRegistry(client, time.Now().UnixNano())
}

// NewSeededRegistry fixes the number-pool random source, used by tests
func NewSeededRegistry(client *llm.Client, seed int64) *Registry {
	return &Registry{
		client: client,
		rng:    rand.New(rand.NewSource(seed)),
		used:   make(map[int]bool),
	}
}

// Create builds a new agent profile from the user's description. On any
// error no partial agent is appended.
func (r *Registry) Create(ctx context.Context, fullDescription string) (models.Agent, error) {
	name, description, character, err := r.generateProfile(ctx, fullDescription, -1)
	if err != nil {
		return models.Agent{}, err
	}

	a := models.Agent{
		ID:              r.nextID,
		Number:          r.allocateNumber(),
		Name:            name,
		Description:     description,
		Character:       character,
		FullDescription: fullDescription,
	}
	r.nextID++
	r.used[a.Number] = true
	r.agents = append(r.agents, a)
	return a, nil
}

// Edit regenerates an agent's profile from a new description, preserving
// its id and number. On error the existing agent is left unchanged.
func (r *Registry) Edit(ctx context.Context, id int, fullDescription string) (models.Agent, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Agent{}, ErrAgentNotFound
	}

	name, description, character, err := r.generateProfile(ctx, fullDescription, id)
	if err != nil {
		return models.Agent{}, err
	}

	a := &r.agents[idx]
	a.Name = name
	a.Description = description
	a.Character = character
	a.FullDescription = fullDescription
	return *a, nil
}

// Delete removes an agent and returns its number to the pool
func (r *Registry) Delete(id int) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return ErrAgentNotFound
	}
	delete(r.used, r.agents[idx].Number)
	r.agents = append(r.agents[:idx], r.agents[idx+1:]...)
	return nil
}

// Get returns the agent with the given id
func (r *Registry) Get(id int) (models.Agent, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Agent{}, false
	}
	return r.agents[idx], true
}

// List returns the live agents in insertion order
func (r *Registry) List() []models.Agent {
	return append([]models.Agent(nil), r.agents...)
}

// Len returns the number of live agents
func (r *Registry) Len() int {
	return len(r.agents)
}

// UsedNumbers returns a copy of the claimed number set
func (r *Registry) UsedNumbers() map[int]bool {
	out := make(map[int]bool, len(r.used))
	for n := range r.used {
		out[n] = true
	}
	return out
}

// Reset drops all agents and returns every number to the pool. The id
// counter keeps advancing so ids stay unique across the session.
func (r *Registry) Reset() {
	r.agents = nil
	r.used = make(map[int]bool)
}

func (r *Registry) generateProfile(ctx context.Context, fullDescription string, excludeID int) (name, description, character string, err error) {
	var existing []string
	for _, a := range r.agents {
		if a.ID == excludeID {
			continue
		}
		existing = append(existing, strings.ToLower(a.Name))
	}

	payload, err := r.client.Structured(ctx, prompts.AgentSystem(existing), prompts.AgentUser(fullDescription), 0.9)
	if err != nil {
		return "", "", "", err
	}

	name, _ = payload["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", "", &llm.MalformedResponseError{Reason: "profile payload missing name"}
	}

	description = profile.NormalizeDescription(payload["description"], fullDescription)
	character = profile.NormalizeCharacter(payload["character"])
	return name, description, character, nil
}

// allocateNumber samples [100,999] until it finds a free number. The pool
// holds 900 numbers and sessions stay small, so this terminates quickly.
func (r *Registry) allocateNumber() int {
	for {
		n := 100 + r.rng.Intn(900)
		if !r.used[n] {
			return n
		}
	}
}

func (r *Registry) indexOf(id int) int {
	for i, a := range r.agents {
		if a.ID == id {
			return i
		}
	}
	return -1
}
