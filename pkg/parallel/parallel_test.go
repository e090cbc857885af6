package parallel

import (
	"sync/atomic"
	"testing"
)

type countingTask struct {
	counter *int64
}

func (t countingTask) Execute() { atomic.AddInt64(t.counter, 1) }

func TestSystem_RunsAllTasks(t *testing.T) {
	var counter int64
	s := NewSystem()
	s.Start(4)

	const n = 200
	for i := 0; i < n; i++ {
		s.AddTask(countingTask{counter: &counter})
	}

	s.WaitForFinish()

	if got := atomic.LoadInt64(&counter); got != n {
		t.Errorf("expected %d tasks executed, got %d", n, got)
	}
}

func TestSystem_WaitForEmptyDoesNotStopWorkers(t *testing.T) {
	var counter int64
	s := NewSystem()
	s.Start(2)

	s.AddTask(countingTask{counter: &counter})
	s.AddTask(countingTask{counter: &counter})
	s.WaitForEmpty()

	if got := atomic.LoadInt64(&counter); got != 2 {
		t.Errorf("expected both tasks to have executed before WaitForEmpty returns, got %d", got)
	}

	s.AddTask(countingTask{counter: &counter})
	s.WaitForFinish()

	if got := atomic.LoadInt64(&counter); got != 3 {
		t.Errorf("expected a task added after WaitForEmpty to still run, got %d", got)
	}
}

func TestSystem_EmptyPoolTerminatesCleanly(t *testing.T) {
	s := NewSystem()
	s.Start(3)
	s.WaitForFinish()
}
