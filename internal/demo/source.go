// Package demo is the example host for the windowed list: a numbered grid that
// keeps growing as the user scrolls toward the bottom.
package demo

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrExhausted is returned once the source has produced MaxItems items.
var ErrExhausted = errors.New("no more items")

// Source is a growing list of numbered items. Fetches are simulated with a
// delay; concurrent fetches for the same page share one result.
type Source struct {
	mu       sync.RWMutex
	items    []int
	pageSize int
	maxItems int
	latency  time.Duration

	group   singleflight.Group
	fetches int
}

// NewSource creates a source holding items 1..initial.
func NewSource(initial, pageSize, maxItems int, latency time.Duration) *Source {
	s := &Source{
		pageSize: max(pageSize, 1),
		maxItems: max(maxItems, initial),
		latency:  latency,
	}
	s.items = appendNumbers(nil, 1, initial)
	return s
}

// Len returns the number of items loaded so far.
func (s *Source) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// At returns the item at index, or false when out of range.
func (s *Source) At(index int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return 0, false
	}
	return s.items[index], true
}

// Exhausted reports whether no further pages exist.
func (s *Source) Exhausted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) >= s.maxItems
}

// Fetches returns how many fetches actually ran.
func (s *Source) Fetches() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetches
}

// FetchNext loads the next page and returns the new total. Callers racing for
// the same page wait on a single fetch.
func (s *Source) FetchNext(ctx context.Context) (int, error) {
	start := s.Len()
	v, err, _ := s.group.Do(strconv.Itoa(start), func() (interface{}, error) {
		return s.fetchPage(ctx, start)
	})
	if err != nil {
		return s.Len(), err
	}
	total, _ := v.(int)
	return total, nil
}

func (s *Source) fetchPage(ctx context.Context, start int) (int, error) {
	if s.Exhausted() {
		return s.Len(), ErrExhausted
	}
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return s.Len(), ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	// Another page may have landed while this one was in flight.
	if len(s.items) != start {
		return len(s.items), nil
	}
	n := min(s.pageSize, s.maxItems-len(s.items))
	s.items = appendNumbers(s.items, len(s.items)+1, n)
	return len(s.items), nil
}

func appendNumbers(dst []int, first, n int) []int {
	for i := 0; i < n; i++ {
		dst = append(dst, first+i)
	}
	return dst
}
