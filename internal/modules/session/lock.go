// README: Keyed mutex wrapper serializing operations per session key.
package session

import "sync"

// lockedStore pairs a Store with a per-key mutex. Entries are reference
// counted and removed once the last holder releases, so the map does not
// grow with dead session keys.
type lockedStore struct {
	inner Store

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newLockedStore(inner Store) *lockedStore {
	return &lockedStore{inner: inner, locks: make(map[string]*keyLock)}
}

// lock acquires the mutex for key and returns the release func.
func (l *lockedStore) lock(key string) func() {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()
		l.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}
