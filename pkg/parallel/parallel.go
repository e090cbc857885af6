// Package parallel implements a fixed-size worker pool over a FIFO task
// queue guarded by a mutex and a condition variable, mirroring the
// reference renderer's FParallelSystem rather than a buffered-channel
// work-stealing pool: the task queue is the only shared mutable state, and
// workers block on sync.Cond while it is empty.
package parallel

import "sync"

// Task is one unit of work a System executes on any worker goroutine. A
// Task must not assume exclusive access to anything beyond the resources
// its caller gave it when constructing the task (e.g. a FilmView and a
// cloned Sampler).
type Task interface {
	Execute()
}

// System is a thread pool plus a FIFO task queue.
type System struct {
	mu        sync.Mutex
	cond      *sync.Cond
	tasks     []Task
	terminate bool
	wg        sync.WaitGroup
}

// NewSystem creates an idle dispatcher with no workers started yet.
func NewSystem() *System {
	s := &System{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// AddTask pushes a task onto the queue and wakes every waiting worker.
func (s *System) AddTask(t Task) {
	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	s.cond.Broadcast()
}

// waitForTask blocks until a task is available or the pool is terminated
// with an empty queue, returning (nil, false) in the latter case.
func (s *System) waitForTask() (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.tasks) == 0 && !s.terminate {
		s.cond.Wait()
	}

	if len(s.tasks) == 0 {
		return nil, false
	}

	t := s.tasks[0]
	s.tasks = s.tasks[1:]
	s.cond.Broadcast()
	return t, true
}

// Start spawns n worker goroutines that pull tasks from the queue until
// told to terminate.
func (s *System) Start(n int) {
	s.terminate = false
	for i := 0; i < n; i++ {
		s.wg.Add(1)
		go s.workerLoop()
	}
}

func (s *System) workerLoop() {
	defer s.wg.Done()
	for {
		t, ok := s.waitForTask()
		if !ok {
			return
		}
		t.Execute()
	}
}

// WaitForEmpty blocks until the task queue has drained, without stopping
// the workers.
func (s *System) WaitForEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.tasks) > 0 {
		s.cond.Wait()
	}
}

// Terminate sets the terminate flag, wakes every idle worker so it can
// observe it, and joins all workers.
func (s *System) Terminate() {
	s.mu.Lock()
	s.terminate = true
	s.mu.Unlock()
	s.cond.Broadcast()
	s.wg.Wait()
}

// WaitForFinish waits for the queue to drain and then terminates the pool,
// returning once every worker has exited.
func (s *System) WaitForFinish() {
	s.WaitForEmpty()
	s.Terminate()
}
