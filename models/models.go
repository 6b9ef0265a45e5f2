package models

import (
	"regexp"
	"strings"
)

// Agent is an LLM-authored crew member profile
type Agent struct {
	ID              int    `json:"id"`
	Number          int    `json:"number"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Character       string `json:"character"`
	FullDescription string `json:"full_description"`
}

// Story is the current four-paragraph narrative
type Story struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Paragraphs splits the story body on runs of blank lines
func (s Story) Paragraphs() []string {
	var paragraphs []string
	for _, p := range paragraphBreak.Split(s.Body, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// QAEntry is one answered follow-up question about the current story
type QAEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SessionSnapshot is the serializable session shape consumed by the PDF builder
type SessionSnapshot struct {
	SessionID  string    `json:"session_id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Mission    string    `json:"mission"`
	Agents     []Agent   `json:"agents"`
	Paragraphs []string  `json:"paragraphs"`
	QA         []QAEntry `json:"qa"`
}
