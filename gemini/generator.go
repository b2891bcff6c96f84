package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/sitechat"
	"google.golang.org/genai"
)

// Ensure Generator implements sitechat.Generator at compile time.
var _ sitechat.Generator = (*Generator)(nil)

// Generator implements sitechat.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator for model.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends messages to Gemini and returns the trimmed reply text.
func (g *Generator) Generate(ctx context.Context, messages []sitechat.Message) (string, error) {
	contents, config := BuildRequest(messages)
	if len(contents) == 0 {
		return "", sitechat.Errorf(sitechat.EINVALID, "at least one user or assistant message required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", sitechat.Errorf(sitechat.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildRequest converts messages to Gemini contents. System messages become
// the system instruction and assistant messages take the "model" role.
// Generation is deterministic (temperature 0).
func BuildRequest(messages []sitechat.Message) ([]*genai.Content, *genai.GenerateContentConfig) {
	temp := float32(0)
	config := &genai.GenerateContentConfig{Temperature: &temp}

	var system []*genai.Part
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case sitechat.RoleSystem:
			system = append(system, &genai.Part{Text: m.Content})
		case sitechat.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{Parts: system}
	}

	return contents, config
}
