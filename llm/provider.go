package llm

import "context"

// Request describes one completion call. System and User map onto the
// provider's role-tagged messages.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
	JSONObject  bool
}

// Provider is a single chat-completion backend. Implementations resolve
// their credential lazily on every call so a key added mid-session is
// picked up without a restart.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req *Request) (string, error)
}
