package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/bloom"
)

// Compile-time interface verification.
var _ sitechat.URLFrontier = (*Frontier)(nil)

// Frontier is a priority queue of links to visit that admits each URL once.
// It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue linkHeap
	seq   int
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication. A false positive drops a URL that
// was never visited.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// Push queues link unless its URL was pushed before. URLs that differ only
// by fragment are the same page.
func (f *Frontier) Push(link sitechat.DiscoveredLink) bool {
	link.URL, _, _ = strings.Cut(link.URL, "#")

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.seen.Visit(link.URL) {
		return false
	}
	heap.Push(&f.queue, queuedLink{link: link, seq: f.seq})
	f.seq++
	return true
}

// Pop returns the highest priority link, oldest first among equals.
func (f *Frontier) Pop() (sitechat.DiscoveredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return sitechat.DiscoveredLink{}, false
	}
	q, _ := heap.Pop(&f.queue).(queuedLink)
	return q.link, true
}

// Len returns the number of queued links.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

type queuedLink struct {
	link sitechat.DiscoveredLink
	seq  int
}

// linkHeap is a max-heap on priority, FIFO within a priority.
type linkHeap []queuedLink

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool {
	if h[i].link.Priority != h[j].link.Priority {
		return h[i].link.Priority > h[j].link.Priority
	}
	return h[i].seq < h[j].seq
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	q, _ := x.(queuedLink)
	*h = append(*h, q)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
