package testutil

import (
	"context"
	"sld/internal/models"
	"sld/internal/providers"
	"sort"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockStore implements providers.StoreProviderInterface with in-memory
// maps. Ordered collections keep descending score order with insertion
// order preserved among equal scores. Per-method error fields inject
// failures.
type MockStore struct {
	mu   sync.Mutex
	KV   map[string][]byte
	Z    map[string][]providers.ScoredMember
	TTLs map[string]time.Duration

	GetErr    error
	SetErr    error
	ZAddErr   error
	ZRangeErr error
	ZCardErr  error
	DelErr    error
	AtomicErr error
	PingErr   error
}

func NewMockStore() *MockStore {
	return &MockStore{
		KV:   make(map[string][]byte),
		Z:    make(map[string][]providers.ScoredMember),
		TTLs: make(map[string]time.Duration),
	}
}

func (m *MockStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	val, ok := m.KV[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.set(key, value, ttl)
	return nil
}

func (m *MockStore) set(key string, value []byte, ttl time.Duration) {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.KV[key] = stored
	if ttl > 0 {
		m.TTLs[key] = ttl
	}
}

func (m *MockStore) ZAdd(_ context.Context, key string, members ...providers.ScoredMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ZAddErr != nil {
		return m.ZAddErr
	}
	m.zadd(key, members...)
	return nil
}

func (m *MockStore) zadd(key string, members ...providers.ScoredMember) {
	zset := m.Z[key]
	for _, member := range members {
		replaced := false
		for i := range zset {
			if zset[i].Member == member.Member {
				zset[i].Score = member.Score
				replaced = true
				break
			}
		}
		if !replaced {
			zset = append(zset, member)
		}
	}
	// Descending by score, stable for equal scores.
	sort.SliceStable(zset, func(i, j int) bool {
		return zset[i].Score > zset[j].Score
	})
	m.Z[key] = zset
}

func (m *MockStore) ZRevRangeWithScores(_ context.Context, key string, start, stop int64) ([]providers.ScoredMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ZRangeErr != nil {
		return nil, m.ZRangeErr
	}
	zset := m.Z[key]
	n := int64(len(zset))
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || n == 0 {
		return nil, nil
	}
	out := make([]providers.ScoredMember, stop-start+1)
	copy(out, zset[start:stop+1])
	return out, nil
}

func (m *MockStore) ZCard(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ZCardErr != nil {
		return 0, m.ZCardErr
	}
	return int64(len(m.Z[key])), nil
}

func (m *MockStore) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DelErr != nil {
		return m.DelErr
	}
	m.del(keys...)
	return nil
}

func (m *MockStore) del(keys ...string) {
	for _, key := range keys {
		delete(m.KV, key)
		delete(m.Z, key)
		delete(m.TTLs, key)
	}
}

func (m *MockStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TTLs[key] = ttl
	return nil
}

type mockBatch struct {
	ops []func(*MockStore)
}

func (b *mockBatch) Set(key string, value []byte, ttl time.Duration) {
	val := make([]byte, len(value))
	copy(val, value)
	b.ops = append(b.ops, func(s *MockStore) { s.set(key, val, ttl) })
}

func (b *mockBatch) ZAdd(key string, members ...providers.ScoredMember) {
	ms := make([]providers.ScoredMember, len(members))
	copy(ms, members)
	b.ops = append(b.ops, func(s *MockStore) { s.zadd(key, ms...) })
}

func (b *mockBatch) Del(keys ...string) {
	ks := make([]string, len(keys))
	copy(ks, keys)
	b.ops = append(b.ops, func(s *MockStore) { s.del(ks...) })
}

func (b *mockBatch) Expire(key string, ttl time.Duration) {
	b.ops = append(b.ops, func(s *MockStore) { s.TTLs[key] = ttl })
}

func (m *MockStore) Atomic(_ context.Context, fn func(batch providers.StoreBatch) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AtomicErr != nil {
		return m.AtomicErr
	}
	batch := &mockBatch{}
	if err := fn(batch); err != nil {
		return err
	}
	for _, op := range batch.ops {
		op(m)
	}
	return nil
}

func (m *MockStore) Ping(_ context.Context) error { return m.PingErr }
func (m *MockStore) Close() error                 { return nil }

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu             sync.Mutex
	Requests       map[string]int
	CacheHits      int
	CacheMisses    int
	Submissions    map[string]int
	Resets         map[string]int
	ResetDurations int
	PlayerGauges   map[string]int64
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Requests:     make(map[string]int),
		Submissions:  make(map[string]int),
		Resets:       make(map[string]int),
		PlayerGauges: make(map[string]int64),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}
func (m *MockMetrics) ObserveRequestDuration(string, time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) IncSubmissions(mode string, accepted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := mode + ":accepted"
	if !accepted {
		key = mode + ":rejected"
	}
	m.Submissions[key]++
}
func (m *MockMetrics) IncResets(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Resets[outcome]++
}
func (m *MockMetrics) ObserveResetDuration(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetDurations++
}
func (m *MockMetrics) SetLeaderboardPlayers(mode string, count int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayerGauges[mode] = count
}

// MockScheduler implements the scheduler facade and lets tests fire tasks
// by hand.
type MockScheduler struct {
	mu        sync.Mutex
	Scheduled map[string]time.Time
	Callbacks map[string]func()
	Cancelled []string
	Err       error
}

func NewMockScheduler() *MockScheduler {
	return &MockScheduler{
		Scheduled: make(map[string]time.Time),
		Callbacks: make(map[string]func()),
	}
}

func (m *MockScheduler) ScheduleTask(taskID string, executeAt time.Time, callback func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Scheduled[taskID] = executeAt
	m.Callbacks[taskID] = callback
	return nil
}

func (m *MockScheduler) CancelTask(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Scheduled, taskID)
	delete(m.Callbacks, taskID)
	m.Cancelled = append(m.Cancelled, taskID)
}

func (m *MockScheduler) IsTaskScheduled(taskID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Scheduled[taskID]
	return ok
}

func (m *MockScheduler) ScheduledTasks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.Scheduled))
	for id := range m.Scheduled {
		ids = append(ids, id)
	}
	return ids
}

func (m *MockScheduler) Stop() {}

// Fire invokes a scheduled task's callback as the backend would.
func (m *MockScheduler) Fire(taskID string) {
	m.mu.Lock()
	cb := m.Callbacks[taskID]
	delete(m.Scheduled, taskID)
	delete(m.Callbacks, taskID)
	m.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// MockAnnouncer implements notify.AnnouncerInterface.
type MockAnnouncer struct {
	mu        sync.Mutex
	Published []*models.ResetResult
	Err       error
}

func (m *MockAnnouncer) PublishResetSummary(_ context.Context, result *models.ResetResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Published = append(m.Published, result)
	return nil
}

// MockNotifier implements notify.NotifierInterface.
type MockNotifier struct {
	mu    sync.Mutex
	Calls []NotifyCall
	Fail  bool
}

type NotifyCall struct {
	Mode    models.Mode
	Entries []models.LeaderboardEntry
}

func (m *MockNotifier) NotifyTopPlayers(_ context.Context, mode models.Mode, entries []models.LeaderboardEntry) []models.NotificationOutcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, NotifyCall{Mode: mode, Entries: entries})
	outcomes := make([]models.NotificationOutcome, 0, len(entries))
	for _, entry := range entries {
		outcome := models.NotificationOutcome{Username: entry.Username, Delivered: !m.Fail}
		if m.Fail {
			outcome.Error = "delivery failed"
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// MockArchiver implements the cold archiver interface.
type MockArchiver struct {
	mu      sync.Mutex
	Exports []ExportCall
	Prunes  int
	Err     error
}

type ExportCall struct {
	Period  string
	Mode    models.Mode
	Entries []models.RankedEntry
}

func (m *MockArchiver) Export(period string, mode models.Mode, entries []models.RankedEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Exports = append(m.Exports, ExportCall{Period: period, Mode: mode, Entries: entries})
	return nil
}

func (m *MockArchiver) Prune() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prunes++
	return nil
}
