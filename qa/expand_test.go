package qa_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/qa"
	"github.com/stretchr/testify/assert"
)

func TestExpandQuery(t *testing.T) {
	t.Parallel()

	t.Run("returns question unchanged without history", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "What are the plans?", qa.ExpandQuery("What are the plans?", nil))
	})

	t.Run("returns question unchanged when history has no user turn", func(t *testing.T) {
		t.Parallel()

		history := sitechat.History{{Role: sitechat.RoleAssistant, Content: "Welcome!"}}

		assert.Equal(t, "How much?", qa.ExpandQuery("How much?", history))
	})

	t.Run("prepends most recent user turn", func(t *testing.T) {
		t.Parallel()

		history := sitechat.History{
			{Role: sitechat.RoleUser, Content: "Tell me about shipping"},
			{Role: sitechat.RoleAssistant, Content: "We ship worldwide."},
			{Role: sitechat.RoleUser, Content: "What about the Pro plan?"},
			{Role: sitechat.RoleAssistant, Content: "Pro includes support."},
		}

		got := qa.ExpandQuery("How much does it cost?", history)

		assert.Equal(t, "What about the Pro plan? How much does it cost?", got)
	})
}
