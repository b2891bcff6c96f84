// Package bloom provides approximate set membership for crawl deduplication.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over strings. It is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected keys with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Visit records key and reports whether it was not recorded before.
// With probability of about the false positive rate a new key is
// reported as already visited; a recorded key is never reported as new.
func (f *Filter) Visit(key string) bool {
	return !f.f.TestAndAddString(key)
}

// Has reports whether key may have been recorded.
func (f *Filter) Has(key string) bool {
	return f.f.TestString(key)
}

// Count returns the approximate number of recorded keys.
func (f *Filter) Count() uint {
	return uint(f.f.ApproximatedSize())
}
