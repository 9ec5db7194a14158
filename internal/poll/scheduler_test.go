package poll

import (
	"testing"
	"time"
)

func TestStartThenStopMakesTicksStale(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	s.Define(TaskStatus, 5*time.Second)

	if cmd := s.Start(TaskStatus); cmd == nil {
		t.Fatal("Start() returned nil cmd")
	}

	live := TickMsg{Task: TaskStatus, Gen: 1}
	if !s.Current(live) {
		t.Error("Current() = false for live tick")
	}

	s.Stop(TaskStatus)
	if s.Current(live) {
		t.Error("Current() = true after Stop")
	}
	if cmd := s.Next(live); cmd != nil {
		t.Error("Next() rescheduled a stale tick")
	}
}

func TestRestartSupersedesPreviousGeneration(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	s.Define(TaskPreview, time.Second)

	_ = s.Start(TaskPreview)
	old := TickMsg{Task: TaskPreview, Gen: 1}

	// restart is one atomic operation: no explicit stop required
	_ = s.Start(TaskPreview)

	if s.Current(old) {
		t.Error("Current() = true for tick from superseded generation")
	}
	if !s.Current(TickMsg{Task: TaskPreview, Gen: 2}) {
		t.Error("Current() = false for tick from live generation")
	}
	if cmd := s.Next(old); cmd != nil {
		t.Error("Next() rescheduled a superseded tick")
	}
}

func TestTasksAreIndependent(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	s.Define(TaskStatus, 5*time.Second)
	s.Define(TaskPreview, time.Second)

	_ = s.Start(TaskStatus)
	_ = s.Start(TaskPreview)
	s.Stop(TaskStatus)

	if s.Current(TickMsg{Task: TaskStatus, Gen: 1}) {
		t.Error("status tick still current after Stop")
	}
	if !s.Current(TickMsg{Task: TaskPreview, Gen: 1}) {
		t.Error("preview tick should be unaffected by stopping status")
	}
}

func TestStopAll(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	s.Define(TaskStatus, 5*time.Second)
	s.Define(TaskPreview, time.Second)

	_ = s.Start(TaskStatus)
	_ = s.Start(TaskPreview)
	s.StopAll()

	if s.Current(TickMsg{Task: TaskStatus, Gen: 1}) || s.Current(TickMsg{Task: TaskPreview, Gen: 1}) {
		t.Error("ticks still current after StopAll")
	}

	if cmd := s.Next(TickMsg{Task: TaskPreview, Gen: 1}); cmd != nil {
		t.Error("Next() rescheduled after StopAll")
	}
}
