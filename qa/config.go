// Package qa implements the grounded answering pipeline: it expands a
// question with conversation history, retrieves chunks of an indexed site,
// keeps the relevant ones, vetoes off-topic questions, extracts lists
// verbatim, and otherwise asks a language model to answer strictly from the
// retrieved context.
package qa

import (
	"fmt"

	"github.com/fwojciec/sitechat"
)

// FallbackMessage is returned whenever the site does not cover the question.
const FallbackMessage = "The answer is not available on the provided website."

// systemPromptTemplate is the strict-grounding instruction. The refusal
// sentence the model is told to use is filled in from the fallback message.
const systemPromptTemplate = `You are an AI assistant answering questions strictly from the provided website content.

Rules:
- Use ONLY the information present in the context.
- Do NOT use external or general knowledge.
- Do NOT guess or infer.
- If the answer is not explicitly present, respond exactly:
  "%s"
- Be concise and factual.
- If a list is asked, return only the list items.
`

// SystemPrompt is the strict-grounding instruction for FallbackMessage.
var SystemPrompt = SystemPromptFor(FallbackMessage)

// SystemPromptFor returns the strict-grounding instruction telling the model
// to reply with fallback when the context does not answer the question.
func SystemPromptFor(fallback string) string {
	return fmt.Sprintf(systemPromptTemplate, fallback)
}

// Config holds the tunables of the pipeline.
type Config struct {
	// MaxDistance is the largest retrieval distance considered relevant.
	MaxDistance float64

	// MaxContextChunks caps the number of chunks placed in the context.
	MaxContextChunks int

	// MinTopicOverlap is the number of significant words the question and
	// the context must share for the question to be answered.
	MinTopicOverlap int

	// HistoryWindow is the number of most recent turns sent to the model.
	HistoryWindow int

	// FallbackMessage is the refusal returned when grounding fails.
	FallbackMessage string

	// SystemPrompt is the first message of every model conversation. When
	// empty, it is built from FallbackMessage with SystemPromptFor.
	SystemPrompt string
}

// DefaultConfig returns the configuration the pipeline is tuned for.
func DefaultConfig() Config {
	return Config{
		MaxDistance:      0.6,
		MaxContextChunks: 4,
		MinTopicOverlap:  2,
		HistoryWindow:    4,
		FallbackMessage:  FallbackMessage,
	}
}

// Validate returns an error if the configuration cannot drive the pipeline.
func (c Config) Validate() error {
	if c.MaxDistance < 0 {
		return sitechat.Errorf(sitechat.EINVALID, "max distance must not be negative")
	}
	if c.MaxContextChunks <= 0 {
		return sitechat.Errorf(sitechat.EINVALID, "max context chunks must be positive")
	}
	if c.MinTopicOverlap < 0 {
		return sitechat.Errorf(sitechat.EINVALID, "min topic overlap must not be negative")
	}
	if c.HistoryWindow < 0 {
		return sitechat.Errorf(sitechat.EINVALID, "history window must not be negative")
	}
	if c.FallbackMessage == "" {
		return sitechat.Errorf(sitechat.EINVALID, "fallback message required")
	}
	return nil
}

// systemPrompt returns SystemPrompt, or the instruction built from
// FallbackMessage when it is unset.
func (c Config) systemPrompt() string {
	if c.SystemPrompt != "" {
		return c.SystemPrompt
	}
	return SystemPromptFor(c.FallbackMessage)
}
