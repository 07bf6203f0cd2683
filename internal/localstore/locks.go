package localstore

import "sync"

// namespaceLocks da un mutex por namespace y lo libera cuando nadie lo usa.
type namespaceLocks struct {
	mu    sync.Mutex
	byKey map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newNamespaceLocks() *namespaceLocks {
	return &namespaceLocks{byKey: make(map[string]*refMutex)}
}

func (l *namespaceLocks) lock(namespace string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.byKey[namespace]
	if !ok {
		m = &refMutex{}
		l.byKey[namespace] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.byKey, namespace)
		}
		l.mu.Unlock()
	}
}
