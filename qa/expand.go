package qa

import "github.com/fwojciec/sitechat"

// ExpandQuery builds the retrieval query for question. When history holds a
// user turn, the most recent one is prepended so that follow-up questions
// ("and how much does it cost?") retrieve the right content.
func ExpandQuery(question string, history sitechat.History) string {
	if prev, ok := history.LastUserContent(); ok {
		return prev + " " + question
	}
	return question
}
