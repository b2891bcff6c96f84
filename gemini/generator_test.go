package gemini_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	t.Run("moves system messages to system instruction", func(t *testing.T) {
		t.Parallel()

		contents, config := gemini.BuildRequest([]sitechat.Message{
			{Role: sitechat.RoleSystem, Content: "Answer only from context."},
			{Role: sitechat.RoleUser, Content: "Context:\nx\n\nQuestion:\ny"},
		})

		require.NotNil(t, config.SystemInstruction)
		require.Len(t, config.SystemInstruction.Parts, 1)
		assert.Equal(t, "Answer only from context.", config.SystemInstruction.Parts[0].Text)
		require.Len(t, contents, 1)
		assert.Equal(t, "user", contents[0].Role)
		assert.Equal(t, "Context:\nx\n\nQuestion:\ny", contents[0].Parts[0].Text)
	})

	t.Run("maps assistant turns to model role in order", func(t *testing.T) {
		t.Parallel()

		contents, _ := gemini.BuildRequest([]sitechat.Message{
			{Role: sitechat.RoleUser, Content: "hi"},
			{Role: sitechat.RoleAssistant, Content: "hello"},
			{Role: sitechat.RoleUser, Content: "question"},
		})

		require.Len(t, contents, 3)
		assert.Equal(t, string(genai.RoleUser), contents[0].Role)
		assert.Equal(t, string(genai.RoleModel), contents[1].Role)
		assert.Equal(t, "hello", contents[1].Parts[0].Text)
		assert.Equal(t, string(genai.RoleUser), contents[2].Role)
	})

	t.Run("sets zero temperature", func(t *testing.T) {
		t.Parallel()

		_, config := gemini.BuildRequest(nil)

		require.NotNil(t, config.Temperature)
		assert.Zero(t, *config.Temperature)
		assert.Nil(t, config.SystemInstruction)
	})
}
