package gemini

import (
	"context"

	"github.com/fwojciec/sitechat"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ sitechat.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally with the Gemini tokenizer. It makes no
// API calls once the tokenizer model has been loaded.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the tokenizer for model. The first call for a model
// downloads its vocabulary.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, sitechat.Errorf(sitechat.EUNAVAILABLE, "load tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the number of tokens text takes as one user message.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, nil)
	if err != nil {
		return 0, sitechat.Errorf(sitechat.EINTERNAL, "count tokens: %v", err)
	}
	return int(result.TotalTokens), nil
}
