package storage

import (
	"context"
	"sync"
)

// LocalLocker is an in-process keyed mutex. Entries are reference counted
// and dropped once nobody holds or waits on them.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[int]*localLock
}

type localLock struct {
	held chan struct{}
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[int]*localLock)}
}

func (l *LocalLocker) Lock(ctx context.Context, eateryID int) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[eateryID]
	if !ok {
		lock = &localLock{held: make(chan struct{}, 1)}
		l.locks[eateryID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	select {
	case lock.held <- struct{}{}:
	case <-ctx.Done():
		l.release(eateryID, lock)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lock.held
			l.release(eateryID, lock)
		})
	}, nil
}

func (l *LocalLocker) release(eateryID int, lock *localLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, eateryID)
	}
}

// Len reports how many eateries currently have a holder or waiter.
func (l *LocalLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
