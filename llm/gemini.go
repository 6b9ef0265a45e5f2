package llm

import (
	"context"

	"google.golang.org/genai"
)

// GeminiProvider talks to the Gemini API through the genai SDK
type GeminiProvider struct {
	model string
}

func NewGeminiProvider(model string) *GeminiProvider {
	return &GeminiProvider{model: model}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Complete(ctx context.Context, req *Request) (string, error) {
	key, err := ResolveAPIKey("gemini")
	if err != nil {
		return "", err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &TransportError{Provider: p.Name(), Err: err}
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONObject {
		genConfig.ResponseMIMEType = "application/json"
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(req.User), genConfig)
	if err != nil {
		return "", &TransportError{Provider: p.Name(), Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &MalformedResponseError{Reason: "no candidates returned"}
	}

	return resp.Text(), nil
}
