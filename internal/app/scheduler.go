package app

import "time"

// CancelFunc stops a pending scheduled callback. Safe to call more than once
// and after the callback has fired.
type CancelFunc func()

// Scheduler is the one-shot timer primitive that drives phase advancement.
// The production implementation wraps time.AfterFunc; tests substitute a
// manual scheduler to fire phase deadlines deterministically.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

type timerScheduler struct{}

// NewTimerScheduler returns a Scheduler backed by time.AfterFunc
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
