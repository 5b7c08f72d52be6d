// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import "sync"

// postQueue holds functions posted from other goroutines until the loop
// drains them.
type postQueue struct {
	mu  sync.Mutex
	fns []func()
}

func (q *postQueue) push(fn func()) {
	q.mu.Lock()
	q.fns = append(q.fns, fn)
	q.mu.Unlock()
}

// drain runs queued functions in order, including ones they post.
func (q *postQueue) drain() int {
	n := 0
	for {
		q.mu.Lock()
		fns := q.fns
		q.fns = nil
		q.mu.Unlock()
		if len(fns) == 0 {
			return n
		}
		for _, fn := range fns {
			fn()
		}
		n += len(fns)
	}
}
