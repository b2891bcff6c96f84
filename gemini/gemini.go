// Package gemini implements text generation, embeddings and token counting
// with Google Gemini.
package gemini

// Default model identifiers.
const (
	DefaultModel      = "gemini-2.5-flash"
	DefaultEmbedModel = "gemini-embedding-001"
)
