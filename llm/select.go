package llm

// SelectProvider picks the backend: an explicit preference wins, otherwise
// whichever credential resolves, preferring OpenAI. With no credential at
// all the OpenAI provider is still returned so the first call surfaces
// ErrMissingCredential with setup instructions.
func SelectProvider(preferred, openaiModel, geminiModel string) Provider {
	switch preferred {
	case "openai":
		return NewOpenAIProvider(openaiModel)
	case "gemini":
		return NewGeminiProvider(geminiModel)
	}

	if HasCredentials("openai") {
		return NewOpenAIProvider(openaiModel)
	}
	if HasCredentials("gemini") {
		return NewGeminiProvider(geminiModel)
	}
	return NewOpenAIProvider(openaiModel)
}
