package scheduling

import (
	"sld/internal/testutil"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() *Scheduler {
	return NewScheduler(&testutil.MockLogger{}).(*Scheduler)
}

func TestOneShot_FirstActivationIsTarget(t *testing.T) {
	at := time.Now().Add(time.Hour)
	s := &oneShot{at: at}

	assert.Equal(t, at, s.Next(time.Now()))
}

func TestOneShot_NeverRefires(t *testing.T) {
	at := time.Now().Add(time.Hour)
	s := &oneShot{at: at}
	s.Next(time.Now())

	next := s.Next(at)
	assert.True(t, next.After(at.AddDate(99, 0, 0)))
}

func TestOneShot_PastTargetStillActivates(t *testing.T) {
	at := time.Now().Add(-time.Hour)
	s := &oneShot{at: at}

	// A past first activation makes the cron fire immediately.
	assert.Equal(t, at, s.Next(time.Now()))
}

func TestScheduleTask_RegistersTask(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	require.NoError(t, s.ScheduleTask("t1", time.Now().Add(time.Hour), func() {}))

	assert.True(t, s.IsTaskScheduled("t1"))
	assert.Equal(t, []string{"t1"}, s.ScheduledTasks())
}

func TestScheduleTask_SameIDReplacesExisting(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	var firstFired atomic.Bool
	require.NoError(t, s.ScheduleTask("t1", time.Now().Add(50*time.Millisecond), func() {
		firstFired.Store(true)
	}))
	require.NoError(t, s.ScheduleTask("t1", time.Now().Add(time.Hour), func() {}))

	assert.Equal(t, []string{"t1"}, s.ScheduledTasks())

	// The replaced cron is stopped, so the first callback never runs.
	time.Sleep(200 * time.Millisecond)
	assert.False(t, firstFired.Load())
	assert.True(t, s.IsTaskScheduled("t1"))
}

func TestScheduleTask_FiresOnceAndDeregisters(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	fired := make(chan struct{}, 4)
	require.NoError(t, s.ScheduleTask("t1", time.Now().Add(20*time.Millisecond), func() {
		fired <- struct{}{}
	}))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("task did not fire")
	}

	assert.Eventually(t, func() bool {
		return !s.IsTaskScheduled("t1")
	}, time.Second, 10*time.Millisecond)

	select {
	case <-fired:
		t.Fatal("task fired more than once")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestScheduleTask_PastDeadlineFiresImmediately(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	fired := make(chan struct{}, 1)
	require.NoError(t, s.ScheduleTask("t1", time.Now().Add(-time.Minute), func() {
		fired <- struct{}{}
	}))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("past-deadline task did not fire")
	}
}

func TestScheduleTask_CallbackCanRescheduleItself(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	fired := make(chan struct{}, 1)
	require.NoError(t, s.ScheduleTask("t1", time.Now().Add(20*time.Millisecond), func() {
		// The fired task is deregistered before the callback runs.
		_ = s.ScheduleTask("t1", time.Now().Add(time.Hour), func() {})
		fired <- struct{}{}
	}))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("task did not fire")
	}

	assert.True(t, s.IsTaskScheduled("t1"))
}

func TestCancelTask_RemovesTask(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	var fired atomic.Bool
	require.NoError(t, s.ScheduleTask("t1", time.Now().Add(50*time.Millisecond), func() {
		fired.Store(true)
	}))
	s.CancelTask("t1")

	assert.False(t, s.IsTaskScheduled("t1"))
	time.Sleep(200 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestCancelTask_UnknownIDIsNoop(t *testing.T) {
	s := newTestScheduler()
	defer s.Stop()

	s.CancelTask("nope")

	assert.False(t, s.IsTaskScheduled("nope"))
}

func TestStop_ClearsAllTasks(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.ScheduleTask("t1", time.Now().Add(time.Hour), func() {}))
	require.NoError(t, s.ScheduleTask("t2", time.Now().Add(time.Hour), func() {}))
	s.Stop()

	assert.Empty(t, s.ScheduledTasks())
}
