package engine

import "sync"

// CivLocks serializes mutating operations per civilization ID so two
// concurrent commands cannot interleave a load-modify-store cycle on the
// same record.
type CivLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewCivLocks() *CivLocks {
	return &CivLocks{locks: make(map[uint]*sync.Mutex)}
}

// Lock acquires the mutex for the given civilization and returns the
// matching unlock function.
func (l *CivLocks) Lock(id uint) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// LockPair acquires both civilizations' mutexes in ascending ID order to
// avoid deadlock between crossed transfers.
func (l *CivLocks) LockPair(a, b uint) func() {
	if a == b {
		return l.Lock(a)
	}
	if a > b {
		a, b = b, a
	}
	unlockA := l.Lock(a)
	unlockB := l.Lock(b)
	return func() {
		unlockB()
		unlockA()
	}
}
