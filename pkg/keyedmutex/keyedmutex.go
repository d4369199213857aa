// Package keyedmutex provides per-key mutual exclusion. The KV blob
// stores use it to serialize read-modify-write cycles per user.
package keyedmutex

import "sync"

// KeyedMutex hands out one mutex per string key. The zero value is not
// usable; call New.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock func.
// Mutexes are retained for the life of the process; the key space here
// is bounded by the active user population.
func (m *KeyedMutex) Lock(key string) func() {
	m.mu.Lock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
