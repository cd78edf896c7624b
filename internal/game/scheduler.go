package game

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

type SchedulerState int32

const (
	Stopped SchedulerState = iota
	Running
)

func (s SchedulerState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Scheduler drives one update+render pass per display refresh until stopped.
//
// The refresh source is either the host calling Tick once per frame, or Run
// pulling from a channel. A panic inside a pass drops that frame only.
type Scheduler struct {
	pass func()

	state   atomic.Int32
	frames  atomic.Uint64
	dropped atomic.Uint64

	// mu is held for the duration of a pass so Stop can wait for it.
	mu   sync.Mutex
	stop chan struct{}
}

func NewScheduler(pass func()) *Scheduler {
	return &Scheduler{pass: pass}
}

// Start moves Stopped -> Running. Calling it while running is a no-op.
func (s *Scheduler) Start() {
	if !s.state.CompareAndSwap(int32(Stopped), int32(Running)) {
		return
	}
	s.mu.Lock()
	s.stop = make(chan struct{})
	s.mu.Unlock()
}

// Stop moves Running -> Stopped and waits for an in-flight pass. No pass
// starts after it returns. It is idempotent and must not be called from
// inside the pass.
func (s *Scheduler) Stop() {
	if !s.state.CompareAndSwap(int32(Running), int32(Stopped)) {
		return
	}
	s.mu.Lock()
	close(s.stop)
	s.mu.Unlock()
}

func (s *Scheduler) State() SchedulerState { return SchedulerState(s.state.Load()) }

func (s *Scheduler) Running() bool { return s.State() == Running }

// Frames counts passes that were started, including dropped ones.
func (s *Scheduler) Frames() uint64 { return s.frames.Load() }

// Dropped counts passes that panicked.
func (s *Scheduler) Dropped() uint64 { return s.dropped.Load() }

// Tick runs one pass if the scheduler is running and reports whether it did.
func (s *Scheduler) Tick() bool {
	if !s.Running() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// Stop may have won the race for mu.
	if !s.Running() {
		return false
	}
	s.frames.Add(1)
	s.runPass()
	return true
}

func (s *Scheduler) runPass() {
	defer func() {
		if r := recover(); r != nil {
			s.dropped.Add(1)
			log.Printf("scheduler: frame %d dropped: %v", s.frames.Load(), r)
		}
	}()
	s.pass()
}

// Run ticks once per value received from refresh, checking for cancellation
// before every pass. It returns nil when the scheduler is stopped and
// ctx.Err() when ctx is done.
func (s *Scheduler) Run(ctx context.Context, refresh <-chan time.Time) error {
	s.mu.Lock()
	stop := s.stop
	s.mu.Unlock()
	if stop == nil || !s.Running() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		case <-refresh:
			if !s.Tick() {
				return nil
			}
		}
	}
}
