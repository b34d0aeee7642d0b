package scheduling

import (
	"sld/internal/providers"
	"sld/internal/scheduling/interfaces"
	"sync"
	"time"

	"github.com/roylee0704/gron"
)

// oneShot is a gron schedule that fires once at a fixed instant. The cron
// asks for the first activation when it starts and again after each firing;
// the first answer is the target instant (a past instant fires immediately),
// every later answer sits in the far future so the entry never re-fires.
type oneShot struct {
	at    time.Time
	mu    sync.Mutex
	armed bool
}

func (s *oneShot) Next(t time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.armed {
		return t.AddDate(100, 0, 0)
	}
	s.armed = true
	return s.at
}

type task struct {
	cron      *gron.Cron
	executeAt time.Time
}

// Scheduler maps opaque task ids onto one-shot gron crons. The registry of
// live crons is the source of truth for IsTaskScheduled; fired tasks
// deregister themselves before their callback runs so a callback may
// re-schedule its own id.
type Scheduler struct {
	logger providers.Logger
	mu     sync.Mutex
	tasks  map[string]*task
}

func NewScheduler(logger providers.Logger) interfaces.SchedulerInterface {
	return &Scheduler{
		logger: logger,
		tasks:  make(map[string]*task),
	}
}

func (s *Scheduler) ScheduleTask(taskID string, executeAt time.Time, callback func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.tasks[taskID]; ok {
		existing.cron.Stop()
		delete(s.tasks, taskID)
	}

	c := gron.New()
	entry := &task{cron: c, executeAt: executeAt}
	c.AddFunc(&oneShot{at: executeAt}, func() {
		s.fired(taskID, entry)
		callback()
	})
	c.Start()
	s.tasks[taskID] = entry

	s.logger.Infof(providers.TypeApp, "Task %q scheduled for %s", taskID, executeAt.Format(time.RFC3339))
	return nil
}

// fired removes a task from the registry once its cron activates, unless
// the id has already been replaced by a newer registration.
func (s *Scheduler) fired(taskID string, entry *task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.tasks[taskID]; ok && current == entry {
		delete(s.tasks, taskID)
	}
	entry.cron.Stop()
}

func (s *Scheduler) CancelTask(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.tasks[taskID]; ok {
		existing.cron.Stop()
		delete(s.tasks, taskID)
		s.logger.Infof(providers.TypeApp, "Task %q cancelled", taskID)
	}
}

func (s *Scheduler) IsTaskScheduled(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[taskID]
	return ok
}

func (s *Scheduler) ScheduledTasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	return ids
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.tasks {
		t.cron.Stop()
		delete(s.tasks, id)
	}
}
