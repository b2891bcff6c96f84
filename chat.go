package sitechat

import "context"

// Role identifies the author of a chat message.
type Role string

// Message roles understood by every Generator.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged message sent to a language model.
// Conversation turns use the same shape with RoleUser or RoleAssistant.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// History is a conversation in chronological order. It is owned by the
// caller's session; answering never modifies or persists it.
type History []Message

// LastUserContent returns the content of the most recent user turn.
// The bool result is false if the history has no user turns.
func (h History) LastUserContent() (string, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Role == RoleUser {
			return h[i].Content, true
		}
	}
	return "", false
}

// Recent returns the last n turns in their original order.
func (h History) Recent(n int) History {
	if n <= 0 {
		return nil
	}
	if len(h) <= n {
		return h
	}
	return h[len(h)-n:]
}

// Provider names a language model backend.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// Generator produces text from an ordered list of messages.
type Generator interface {
	// Generate returns the model's reply to messages.
	// Errors from the backend are returned as-is.
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Outcome describes which path of the answering pipeline produced a reply.
type Outcome string

// Answer outcomes.
const (
	OutcomeNoData    Outcome = "no_data"
	OutcomeOffTopic  Outcome = "off_topic"
	OutcomeExtracted Outcome = "extracted"
	OutcomeGenerated Outcome = "generated"
	OutcomeRefused   Outcome = "refused"
)

// Fallback reports whether the reply is the refusal message.
func (o Outcome) Fallback() bool {
	return o == OutcomeNoData || o == OutcomeOffTopic || o == OutcomeRefused
}

// Reply is the answer to one question.
type Reply struct {
	// Text is never empty: the fallback message, an extracted list,
	// or model text.
	Text    string  `json:"text"`
	Outcome Outcome `json:"outcome"`
}

// Answerer answers natural language questions about one indexed site.
type Answerer interface {
	// Answer answers question in the context of history.
	// Backend failures are returned as errors, never as a fallback reply.
	Answer(ctx context.Context, question string, history History) (*Reply, error)
}
