package engine

import (
	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/scheduler"
)

// ownerLoop is the single goroutine that owns a scheduler.
type ownerLoop struct {
	sched *scheduler.Scheduler
	reqs  chan func()
	quit  chan struct{}
	done  chan struct{}
}

func newOwnerLoop(sched *scheduler.Scheduler) *ownerLoop {
	return &ownerLoop{
		sched: sched,
		reqs:  make(chan func()),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (l *ownerLoop) run() {
	defer close(l.done)
	for {
		select {
		case <-l.quit:
			return
		case fn := <-l.reqs:
			fn()
		}
	}
}

// do runs fn on the loop and waits for it. A request that loses the race
// with stop is never run and reports ErrNotPresented.
func (l *ownerLoop) do(fn func(*scheduler.Scheduler)) error {
	finished := make(chan struct{})
	req := func() {
		defer close(finished)
		fn(l.sched)
	}

	select {
	case l.reqs <- req:
	case <-l.quit:
		return domain.ErrNotPresented
	}
	<-finished
	return nil
}

func (l *ownerLoop) stop() {
	close(l.quit)
	<-l.done
}
