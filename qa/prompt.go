package qa

import (
	"strings"

	"github.com/fwojciec/sitechat"
)

// BuildMessages assembles the model conversation: the system prompt, the
// most recent history turns as-is, and a user message carrying the context
// block and the question.
func BuildMessages(cfg Config, question, context string, history sitechat.History) []sitechat.Message {
	recent := history.Recent(cfg.HistoryWindow)

	messages := make([]sitechat.Message, 0, len(recent)+2)
	messages = append(messages, sitechat.Message{Role: sitechat.RoleSystem, Content: cfg.systemPrompt()})
	messages = append(messages, recent...)
	messages = append(messages, sitechat.Message{
		Role:    sitechat.RoleUser,
		Content: BuildUserPrompt(question, context),
	})
	return messages
}

// BuildUserPrompt formats the final user message.
func BuildUserPrompt(question, context string) string {
	var sb strings.Builder
	sb.WriteString("Context:\n")
	sb.WriteString(context)
	sb.WriteString("\n\nQuestion:\n")
	sb.WriteString(question)
	return sb.String()
}

// IsRefusal reports whether a model reply should be replaced by the
// canonical fallback: it is blank, or it contains the fallback message in
// any letter case. This is a heuristic; a genuine answer quoting the
// fallback sentence is also treated as a refusal.
func IsRefusal(reply, fallback string) bool {
	if strings.TrimSpace(reply) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(reply), strings.ToLower(fallback))
}
