package qa

import (
	"context"
	"strings"

	"github.com/fwojciec/sitechat"
)

// Ensure Engine implements sitechat.Answerer.
var _ sitechat.Answerer = (*Engine)(nil)

// Engine answers questions about one indexed site.
//
// Answer runs synchronously and holds no state between calls beyond its
// collaborators, so an Engine is safe for concurrent use when they are.
// Engine imposes no timeouts of its own: a retriever or generator that
// hangs stalls the caller until ctx is cancelled.
type Engine struct {
	retriever sitechat.Retriever
	generator sitechat.Generator
	config    Config
}

// NewEngine creates an Engine over the given collaborators.
func NewEngine(retriever sitechat.Retriever, generator sitechat.Generator, config Config) (*Engine, error) {
	if retriever == nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "retriever required")
	}
	if generator == nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "generator required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		retriever: retriever,
		generator: generator,
		config:    config,
	}, nil
}

// Answer answers question from the site's content, taking history into
// account for follow-up questions. When the site does not cover the
// question the reply text is the configured fallback message. A blank
// question shares no words with any content, so it gets the fallback
// without consulting the retriever or generator. Errors from
// the retriever or generator are returned as-is and never turned into a
// fallback reply.
func (e *Engine) Answer(ctx context.Context, question string, history sitechat.History) (*sitechat.Reply, error) {
	if strings.TrimSpace(question) == "" {
		return e.fallback(sitechat.OutcomeOffTopic), nil
	}

	matches, err := e.retriever.Retrieve(ctx, ExpandQuery(question, history))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return e.fallback(sitechat.OutcomeNoData), nil
	}

	block := sitechat.JoinContext(SelectContext(matches, e.config.MaxDistance, e.config.MaxContextChunks))
	if TopicOverlap(question, block) < e.config.MinTopicOverlap {
		return e.fallback(sitechat.OutcomeOffTopic), nil
	}

	if IsListQuestion(question) {
		if items := ExtractListItems(block); len(items) > 0 {
			return &sitechat.Reply{
				Text:    strings.Join(items, "\n"),
				Outcome: sitechat.OutcomeExtracted,
			}, nil
		}
	}

	text, err := e.generator.Generate(ctx, BuildMessages(e.config, question, block, history))
	if err != nil {
		return nil, err
	}
	if IsRefusal(text, e.config.FallbackMessage) {
		return e.fallback(sitechat.OutcomeRefused), nil
	}
	return &sitechat.Reply{Text: text, Outcome: sitechat.OutcomeGenerated}, nil
}

func (e *Engine) fallback(outcome sitechat.Outcome) *sitechat.Reply {
	return &sitechat.Reply{Text: e.config.FallbackMessage, Outcome: outcome}
}
