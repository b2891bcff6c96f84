package qa

import "github.com/fwojciec/sitechat"

// SelectContext returns the texts of the matches to ground an answer on.
// Matches within maxDistance are kept in retrieval order, up to maxChunks.
// When none is close enough, the first maxChunks matches are used anyway;
// the topic gate decides whether that context is usable.
func SelectContext(matches []sitechat.Match, maxDistance float64, maxChunks int) []string {
	var texts []string
	for _, m := range matches {
		if len(texts) == maxChunks {
			break
		}
		if m.Distance <= maxDistance {
			texts = append(texts, m.Chunk.Content)
		}
	}
	if len(texts) > 0 {
		return texts
	}

	for _, m := range matches[:min(len(matches), maxChunks)] {
		texts = append(texts, m.Chunk.Content)
	}
	return texts
}
