// Package story turns the agent roster and a mission into a titled
// four-paragraph narrative, with validation, one retry, and a canned
// fallback.
package story

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"storycrew/llm"
	"storycrew/models"
	"storycrew/prompts"
)

// FallbackTitle is the title of the canned story installed after two
// failed generation attempts.
const FallbackTitle = "The Amazing Team Adventure"

const minBodyLength = 50

// ErrStoryShape flags a story body that fails structural validation after
// self-healing. It routes the builder through the retry path.
var ErrStoryShape = errors.New("story shape invalid")

var blankLineBreak = regexp.MustCompile(`\n\s*\n`)

type Builder struct {
	client *llm.Client
}

func NewBuilder(client *llm.Client) *Builder {
	return &Builder{client: client}
}

// FormatRoster renders one line per agent for the story prompt
func FormatRoster(agents []models.Agent) string {
	lines := make([]string, 0, len(agents))
	for _, a := range agents {
		lines = append(lines, fmt.Sprintf("- %s (#%d): %s", a.Name, a.Number, a.Description))
	}
	return strings.Join(lines, "\n")
}

// Build generates the story for a mission. It never fails: the primary
// prompt gets one retry with a simpler prompt, and a second failure
// installs the deterministic fallback story.
func (b *Builder) Build(ctx context.Context, agents []models.Agent, mission string) models.Story {
	user := prompts.StoryUser(FormatRoster(agents), mission)

	s, err := b.attempt(ctx, prompts.StoryPrimarySystem(), user, 0.8)
	if err == nil {
		return s
	}
	log.Println("story generation failed, retrying with simpler prompt:", err)

	s, err = b.attempt(ctx, prompts.StorySimplerSystem(), user, 0.9)
	if err == nil {
		return s
	}
	log.Println("story retry failed, installing fallback story:", err)

	return Fallback(err)
}

func (b *Builder) attempt(ctx context.Context, system, user string, temperature float64) (models.Story, error) {
	payload, err := b.client.Structured(ctx, system, user, temperature)
	if err != nil {
		return models.Story{}, err
	}

	title, _ := payload["title"].(string)
	body, _ := payload["story"].(string)
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	if title == "" {
		return models.Story{}, fmt.Errorf("%w: missing title", ErrStoryShape)
	}
	if body == "" || len(body) <= minBodyLength {
		return models.Story{}, fmt.Errorf("%w: body too short (%d chars)", ErrStoryShape, len(body))
	}

	body = healParagraphs(body)
	s := models.Story{Title: title, Body: body}
	if n := len(s.Paragraphs()); n != 4 {
		return models.Story{}, fmt.Errorf("%w: %d paragraphs instead of 4", ErrStoryShape, n)
	}

	return s, nil
}

// healParagraphs fixes a body whose paragraphs came back separated by
// single newlines instead of blank lines.
func healParagraphs(body string) string {
	if blankLineBreak.MatchString(body) || !strings.Contains(body, "\n") {
		return body
	}

	var paragraphs []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// Fallback builds the canned story installed when generation fails twice.
// It keeps the four-paragraph shape so everything downstream still works.
func Fallback(cause error) models.Story {
	body := fmt.Sprintf(`Once upon a time, a brave team got ready for a big mission. They packed their bags and smiled at each other. Everyone knew the day would be special. The team promised to help each other the whole way. Off they went, full of hope.

The storyteller had a little hiccup along the way (%v). But the team did not mind one bit. They knew every adventure has a bumpy moment. They held hands and kept marching forward. Nothing could stop such good friends.

The team used all their special talents together. One friend found the path, and another cheered everyone on. They solved every puzzle they met. Each helper did their very best. Working together made everything easier.

At last, the mission was complete and everyone cheered. The team hugged and laughed in the golden sunshine. They were proud of what they did together. Helping friends is the greatest adventure of all. The end, until the next mission begins.`, cause)

	return models.Story{Title: FallbackTitle, Body: body}
}
