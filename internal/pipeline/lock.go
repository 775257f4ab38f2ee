package pipeline

import "sync/atomic"

// runLock is a non-blocking mutex guarding Pipeline.Run
type runLock struct {
	state atomic.Int32 // 0 = idle, 1 = running
}

// tryAcquire takes the lock if it is free and reports whether it did
func (l *runLock) tryAcquire() bool {
	return l.state.CompareAndSwap(0, 1)
}

// release frees the lock. Only the holder may call it.
func (l *runLock) release() {
	l.state.Store(0)
}
