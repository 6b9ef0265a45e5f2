// Package prompts builds every system and user instruction sent to the LLM.
package prompts

import (
	"fmt"
	"strings"
)

// AgentSystem returns the system prompt for building an agent profile.
// existingNames are lowercased names already in use; the model is told to
// avoid them.
func AgentSystem(existingNames []string) string {
	avoid := "none yet"
	if len(existingNames) > 0 {
		avoid = strings.Join(existingNames, ", ")
	}

	return fmt.Sprintf(`You create playful AI agent profiles for a children's story app (ages 5-10).

Respond ONLY with a JSON object with exactly these keys:
{
  "name": "<the agent's name>",
  "description": "<1-2 sentences>",
  "character": "<3-5 sentences>"
}

Rules for the name:
- Invent a fun character name inspired by cartoon characters, superheroes, or famous personalities
- The name must be unique; do NOT use any of these names already taken: %s
- Keep it short and easy for a child to say

Rules for the description:
- 1-2 sentences of flat prose summarizing who this agent is
- Simple, friendly English a young child understands

Rules for the character:
- 3-5 sentences of flat prose describing personality, talents, and how the agent works with friends
- Child-friendly vocabulary only, nothing scary or adult
- Write plain sentences, never nested lists or objects`, avoid)
}

// AgentUser returns the user prompt for building an agent profile
func AgentUser(fullDescription string) string {
	return fmt.Sprintf("Create an agent profile from this description:\n\n%s", fullDescription)
}

// StoryPrimarySystem returns the main story-generation system prompt
func StoryPrimarySystem() string {
	return `You write short illustrated adventure stories for children aged 5-10.

Respond ONLY with a JSON object with exactly these keys:
{
  "title": "<5-10 words>",
  "story": "<the full story text>"
}

Story requirements:
- EXACTLY 4 paragraphs, separated by a blank line
- Each paragraph has 5-6 sentences
- Each sentence has 6-10 simple English words
- Use only vocabulary a young child understands
- Every agent on the team appears in the story and helps the mission
- The story shows how the team worked together and succeeded
- Keep the tone warm, exciting, and kind; nothing scary or adult`
}

// StorySimplerSystem returns the retry prompt: same structure, shorter
// wording for models that failed the primary one.
func StorySimplerSystem() string {
	return `Write a children's story (ages 5-10).

Reply ONLY with JSON: {"title": "...", "story": "..."}

Rules:
- Title: 5-10 words
- Story: exactly 4 paragraphs with a blank line between them
- 5-6 short sentences per paragraph, 6-10 simple words each
- All team members appear and help
- Happy, simple, and kind`
}

// StoryUser returns the user prompt carrying the roster and mission
func StoryUser(roster, mission string) string {
	return fmt.Sprintf(`Here is the team of agents:
%s

Their mission: %s

Write the story of how they accomplished it together.`, roster, mission)
}

// AnswerSystem returns the system prompt for answering a follow-up question
// about the current story.
func AnswerSystem(creativeName string) string {
	return fmt.Sprintf(`You answer a child's questions about a story they just read.

Rules:
- Address the child by name: %s
- Answer in 2-4 short, friendly sentences
- Ground the answer in the story, but you may elaborate creatively beyond it
- Use only simple, child-friendly vocabulary; no adult themes or scary words
- Reply with the answer text only, no labels and no quotes`, creativeName)
}

// AnswerUser returns the user prompt for a follow-up question
func AnswerUser(title, body, creativeName, question string) string {
	return fmt.Sprintf(`Story title: %s

Story:
%s

%s asks: %s`, title, body, creativeName, question)
}

// QuestionSystem returns the system prompt for generating a follow-up
// question example.
func QuestionSystem() string {
	return `You suggest ONE follow-up question a curious child aged 5-10 might ask about a story.

Rules:
- Return exactly one question, 6-12 simple words, ending with a question mark
- The question must be different from every previously asked question
- Reply with the question text only, no labels and no quotes`
}

// QuestionUser returns the user prompt for generating a question example
func QuestionUser(title, preview, hint string, previous []string) string {
	asked := "none yet"
	if len(previous) > 0 {
		asked = "- " + strings.Join(previous, "\n- ")
	}

	return fmt.Sprintf(`Story title: %s

Story preview:
%s

Suggest %s.

Previously asked questions (do not repeat any of these):
%s`, title, preview, hint, asked)
}
