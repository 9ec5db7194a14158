package poll

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// Task names one recurring poll loop.
type Task string

const (
	TaskStatus  Task = "status"
	TaskPreview Task = "preview"
)

// TickMsg is delivered when a task's interval elapses. Gen identifies the
// scheduling generation the tick belongs to; ticks from a superseded
// generation must be dropped by the receiver.
type TickMsg struct {
	Task Task
	Gen  uint64
}

// Scheduler owns named recurring tasks for the TUI event loop. Start bumps
// the task's generation and emits a fresh tick chain, so restarting after
// re-login is a single atomic operation: any tick still in flight from the
// previous chain carries a stale generation and is ignored. All methods are
// called from the single Update goroutine; no locking needed.
type Scheduler struct {
	intervals map[Task]time.Duration
	gens      map[Task]uint64
	running   map[Task]bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		intervals: make(map[Task]time.Duration),
		gens:      make(map[Task]uint64),
		running:   make(map[Task]bool),
	}
}

// Define registers a task's interval. Defining an already-defined task
// adjusts the interval for subsequent ticks.
func (s *Scheduler) Define(task Task, interval time.Duration) {
	s.intervals[task] = interval
}

// Start (re)starts a task and returns the command producing its first tick.
// A previously running chain is cancelled implicitly via the generation bump.
func (s *Scheduler) Start(task Task) tea.Cmd {
	s.gens[task]++
	s.running[task] = true
	return s.tick(task, s.gens[task])
}

// Stop cancels a task. In-flight ticks become stale rather than being
// intercepted; Current filters them out.
func (s *Scheduler) Stop(task Task) {
	s.gens[task]++
	s.running[task] = false
}

func (s *Scheduler) StopAll() {
	for task := range s.running {
		s.Stop(task)
	}
}

// Current reports whether the tick belongs to the live generation of a
// running task.
func (s *Scheduler) Current(msg TickMsg) bool {
	return s.running[msg.Task] && s.gens[msg.Task] == msg.Gen
}

// Next schedules the follow-up tick for a received tick. Returns nil for
// stale ticks, terminating the superseded chain.
func (s *Scheduler) Next(msg TickMsg) tea.Cmd {
	if !s.Current(msg) {
		return nil
	}
	return s.tick(msg.Task, msg.Gen)
}

func (s *Scheduler) tick(task Task, gen uint64) tea.Cmd {
	return tea.Tick(s.intervals[task], func(time.Time) tea.Msg {
		return TickMsg{Task: task, Gen: gen}
	})
}
