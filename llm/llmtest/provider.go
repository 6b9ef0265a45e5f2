// Package llmtest provides a scripted llm.Provider for tests.
package llmtest

import (
	"context"
	"errors"

	"storycrew/llm"
)

// Step is one scripted reply: either a response body or an error
type Step struct {
	Response string
	Err      error
}

// ScriptedProvider replays a fixed sequence of steps and records every
// request it receives. When the script runs out it repeats the last step.
type ScriptedProvider struct {
	Steps    []Step
	Requests []llm.Request
}

func NewScriptedProvider(steps ...Step) *ScriptedProvider {
	return &ScriptedProvider{Steps: steps}
}

func (p *ScriptedProvider) Name() string { return "scripted" }

func (p *ScriptedProvider) Complete(_ context.Context, req *llm.Request) (string, error) {
	p.Requests = append(p.Requests, *req)

	if len(p.Steps) == 0 {
		return "", errors.New("scripted provider has no steps")
	}
	i := len(p.Requests) - 1
	if i >= len(p.Steps) {
		i = len(p.Steps) - 1
	}
	step := p.Steps[i]
	return step.Response, step.Err
}

// Respond is a convenience constructor for a successful step
func Respond(body string) Step { return Step{Response: body} }

// Fail is a convenience constructor for a failing step
func Fail(err error) Step { return Step{Err: err} }
