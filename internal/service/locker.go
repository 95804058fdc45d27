package service

import "sync"

// HunterLocks is a keyed mutex. Every state-changing hunter operation holds
// the lock for its hunter id while it reads, computes and writes, so two
// requests for the same hunter never interleave. Entries are reference
// counted and removed once no goroutine holds or waits for them.
//
// Guild operations additionally lock the guild id. A goroutine takes at most
// one hunter key and then at most one guild key, always in that order.
type HunterLocks struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// NewHunterLocks creates an empty lock table
func NewHunterLocks() *HunterLocks {
	return &HunterLocks{locks: make(map[string]*keyedLock)}
}

// Lock blocks until the key is free and returns its unlock function.
func (l *HunterLocks) Lock(key string) (unlock func()) {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyedLock{}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	kl.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			kl.mu.Unlock()

			l.mu.Lock()
			kl.refs--
			if kl.refs == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or waited on.
func (l *HunterLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
