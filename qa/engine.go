// Package qa answers follow-up questions grounded in the current story.
package qa

import (
	"context"

	"storycrew/llm"
	"storycrew/models"
	"storycrew/prompts"
)

const answerMaxTokens = 220

type Engine struct {
	client *llm.Client
}

func NewEngine(client *llm.Client) *Engine {
	return &Engine{client: client}
}

// Ask produces a child-friendly answer to a question about the story,
// addressed to the user's creative name. On failure no entry is returned;
// the caller surfaces the error and appends nothing.
func (e *Engine) Ask(ctx context.Context, s models.Story, creativeName, question string) (models.QAEntry, error) {
	answer, err := e.client.FreeForm(ctx,
		prompts.AnswerSystem(creativeName),
		prompts.AnswerUser(s.Title, s.Body, creativeName, question),
		0.9, answerMaxTokens)
	if err != nil {
		return models.QAEntry{}, err
	}

	return models.QAEntry{Question: question, Answer: answer}, nil
}
