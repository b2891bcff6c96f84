package ollama

import (
	"context"
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/ollama/ollama/api"
)

// Ensure Generator implements sitechat.Generator at compile time.
var _ sitechat.Generator = (*Generator)(nil)

// Generator implements sitechat.Generator using the Ollama chat API.
type Generator struct {
	client *api.Client
	model  string
}

// NewGenerator creates a new Generator for model.
func NewGenerator(client *api.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends messages as a single non-streaming chat request at
// temperature 0 and returns the trimmed reply.
func (g *Generator) Generate(ctx context.Context, messages []sitechat.Message) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    g.model,
		Messages: make([]api.Message, len(messages)),
		Stream:   &stream,
		Options:  map[string]any{"temperature": 0},
	}
	for i, m := range messages {
		req.Messages[i] = api.Message{Role: string(m.Role), Content: m.Content}
	}

	var sb strings.Builder
	err := g.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(sb.String()), nil
}
