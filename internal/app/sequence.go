// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "sync"

// =============================================================================
// RESPONSE SEQUENCER
// =============================================================================

// sequencer releases completions in ticket order. A completion that
// finishes early waits until every earlier ticket has been delivered.
type sequencer struct {
	mu      sync.Mutex
	next    uint64
	deliver uint64
	pending map[uint64]func()
}

func newSequencer() *sequencer {
	return &sequencer{pending: make(map[uint64]func())}
}

// ticket reserves the next delivery slot.
func (s *sequencer) ticket() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

// done marks ticket id complete. fn runs once every earlier ticket has
// been delivered; callbacks run outside the lock, in ticket order.
func (s *sequencer) done(id uint64, fn func()) {
	s.mu.Lock()
	s.pending[id] = fn

	var ready []func()
	for {
		next, ok := s.pending[s.deliver]
		if !ok {
			break
		}
		delete(s.pending, s.deliver)
		s.deliver++
		ready = append(ready, next)
	}
	s.mu.Unlock()

	for _, f := range ready {
		f()
	}
}
