package services

import (
	"context"
	"sld/internal/models"
	"sld/internal/notify"
	"sld/internal/providers"
	"sld/internal/scheduling/interfaces"
	"time"
)

// ResetTaskID is the stable identifier of the periodic reset task with the
// scheduler backend.
const ResetTaskID = "leaderboard:reset"

// ManualResetOptions shapes an administrative reset trigger. Announce
// overrides the configured side-effect toggles when set; nil keeps them.
type ManualResetOptions struct {
	Modes     []models.Mode
	Announce  *bool
	Immediate bool
}

type ResetServiceInterface interface {
	InitializeScheduler(ctx context.Context) error
	ExecuteScheduledReset(ctx context.Context) (*models.ResetResult, error)
	HandleResetCompletion(ctx context.Context, result *models.ResetResult)
	TriggerManualReset(ctx context.Context, opts ManualResetOptions) (*models.ResetResult, error)
	PreviewResetResults(ctx context.Context) (*models.ResetPreview, error)
	UpdateResetSchedule(ctx context.Context, patch *models.ConfigPatch) (*models.ResetSchedule, error)
	IsSystemReady(ctx context.Context) bool
	GetResetStatus(ctx context.Context) (*models.ResetStatus, error)
}

// ResetService drives the reset lifecycle: decide when due, execute via the
// ranked store, dispatch best-effort side effects, and keep the scheduler
// facade registration in step with the persisted schedule. It never touches
// per-mode collections itself.
type ResetService struct {
	store     RankedStoreServiceInterface
	scheduler interfaces.SchedulerInterface
	announcer notify.AnnouncerInterface
	notifier  notify.NotifierInterface
	logger    providers.Logger
}

func NewResetService(
	store RankedStoreServiceInterface,
	scheduler interfaces.SchedulerInterface,
	announcer notify.AnnouncerInterface,
	notifier notify.NotifierInterface,
	logger providers.Logger,
) ResetServiceInterface {
	return &ResetService{
		store:     store,
		scheduler: scheduler,
		announcer: announcer,
		notifier:  notifier,
		logger:    logger,
	}
}

// InitializeScheduler registers the next reset with the scheduler facade
// from the persisted schedule. Re-registration on every startup is what
// re-attaches the callback after a restart; without a facade the daemon
// still works through manual triggers.
func (s *ResetService) InitializeScheduler(ctx context.Context) error {
	if s.scheduler == nil {
		s.logger.Infof(providers.TypeApp, "No scheduler wired; reset runs on manual triggers only")
		return nil
	}
	sched, err := s.store.GetResetSchedule(ctx)
	if err != nil {
		return err
	}
	return s.registerTask(sched.NextReset)
}

func (s *ResetService) registerTask(executeAt time.Time) error {
	return s.scheduler.ScheduleTask(ResetTaskID, executeAt, s.onTaskFired)
}

// onTaskFired is the callback handed to the scheduler backend.
func (s *ResetService) onTaskFired() {
	if _, err := s.ExecuteScheduledReset(context.Background()); err != nil {
		s.logger.Errorf(providers.TypeApp, "Scheduled reset failed: %s", err)
	}
}

// ExecuteScheduledReset re-checks that a reset is actually due before
// mutating anything, defending against early or duplicate task firings.
// Not-due invocations re-register the task and exit clean.
func (s *ResetService) ExecuteScheduledReset(ctx context.Context) (*models.ResetResult, error) {
	due, err := s.store.IsResetDue(ctx)
	if err != nil {
		return nil, err
	}
	if !due {
		s.logger.Infof(providers.TypeApp, "Reset fired but not due; skipping")
		s.rescheduleFromStore(ctx)
		return nil, nil
	}

	result, err := s.store.ExecuteReset(ctx, nil)
	if err != nil {
		return nil, err
	}

	s.HandleResetCompletion(ctx, result)
	s.rescheduleFromStore(ctx)
	return result, nil
}

// rescheduleFromStore re-registers the reset task against the currently
// persisted schedule. Failures are logged; a missed registration is
// recovered by the next startup reconciliation.
func (s *ResetService) rescheduleFromStore(ctx context.Context) {
	if s.scheduler == nil {
		return
	}
	sched, err := s.store.GetResetSchedule(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Cannot reschedule reset task: %s", err)
		return
	}
	if err := s.registerTask(sched.NextReset); err != nil {
		s.logger.Errorf(providers.TypeApp, "Reset task registration failed: %s", err)
	}
}

// HandleResetCompletion runs the announcement and notification side effects
// for a finished reset. Every failure here is logged and swallowed: the
// reset already succeeded and must never be reported otherwise.
func (s *ResetService) HandleResetCompletion(ctx context.Context, result *models.ResetResult) {
	if result == nil {
		return
	}
	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Config read during reset completion failed: %s", err)
		return
	}
	s.completeReset(ctx, result, cfg, nil)
}

// completeReset applies the side effects honoring the config toggles, with
// an optional caller override for announcements.
func (s *ResetService) completeReset(ctx context.Context, result *models.ResetResult, cfg *models.LeaderboardConfig, announceOverride *bool) {
	announce := cfg.EnableAutoAnnounce
	notifyPlayers := cfg.EnableNotifications
	if announceOverride != nil {
		announce = *announceOverride
		notifyPlayers = *announceOverride
	}

	if announce && s.announcer != nil {
		if err := s.announcer.PublishResetSummary(ctx, result); err != nil {
			s.logger.Errorf(providers.TypeApp, "Reset announcement failed for %s: %s", result.ResetID, err)
		} else {
			result.AnnouncementCreated = true
			if err := s.store.SaveResetResult(ctx, result); err != nil {
				s.logger.Warnf(providers.TypeApp, "Announcement flag persist failed for %s: %s", result.ResetID, err)
			}
		}
	}

	if notifyPlayers && s.notifier != nil {
		var outcomes []models.NotificationOutcome
		for _, mode := range result.ModesReset {
			entries := result.TopPlayers[mode]
			if len(entries) == 0 {
				continue
			}
			outcomes = append(outcomes, s.notifier.NotifyTopPlayers(ctx, mode, entries)...)
		}
		if len(outcomes) > 0 {
			if err := s.store.SaveNotificationAudit(ctx, result.ResetID, outcomes); err != nil {
				s.logger.Warnf(providers.TypeApp, "Notification audit persist failed for %s: %s", result.ResetID, err)
			}
		}
	}
}

// TriggerManualReset executes a reset now. When not immediate it only
// makes sure a task is registered for the existing next-reset time and
// returns a pending placeholder that must not be read as a real result.
func (s *ResetService) TriggerManualReset(ctx context.Context, opts ManualResetOptions) (*models.ResetResult, error) {
	if !opts.Immediate {
		sched, err := s.store.GetResetSchedule(ctx)
		if err != nil {
			return nil, err
		}
		if s.scheduler != nil {
			if err := s.registerTask(sched.NextReset); err != nil {
				return nil, err
			}
		}
		modes := opts.Modes
		if len(modes) == 0 {
			modes = models.AllModes()
		}
		return &models.ResetResult{
			Timestamp:  sched.NextReset,
			Period:     sched.CurrentPeriod,
			ModesReset: modes,
			Pending:    true,
		}, nil
	}

	result, err := s.store.ExecuteReset(ctx, opts.Modes)
	if err != nil {
		return nil, err
	}

	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Config read after manual reset failed: %s", err)
	} else {
		s.completeReset(ctx, result, cfg, opts.Announce)
	}

	s.rescheduleFromStore(ctx)
	return result, nil
}

// PreviewResetResults reports what a reset right now would archive, without
// mutating anything.
func (s *ResetService) PreviewResetResults(ctx context.Context) (*models.ResetPreview, error) {
	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	sched, err := s.store.GetResetSchedule(ctx)
	if err != nil {
		return nil, err
	}

	preview := &models.ResetPreview{
		Period:    sched.CurrentPeriod,
		NextReset: sched.NextReset,
		Modes:     make(map[models.Mode]models.ModePreview, len(models.AllModes())),
	}
	for _, mode := range models.AllModes() {
		lb, err := s.store.GetLeaderboard(ctx, mode, LeaderboardOptions{Limit: cfg.TopPlayersCount})
		if err != nil {
			return nil, err
		}
		preview.Modes[mode] = models.ModePreview{
			TopPlayers:   lb.Entries,
			TotalPlayers: lb.TotalPlayers,
		}
		preview.TotalPlayers += lb.TotalPlayers
	}
	return preview, nil
}

// UpdateResetSchedule pushes a config change into the ranked store,
// recomputes the schedule and re-registers the facade task to match.
func (s *ResetService) UpdateResetSchedule(ctx context.Context, patch *models.ConfigPatch) (*models.ResetSchedule, error) {
	cfg, err := s.store.UpdateConfig(ctx, patch)
	if err != nil {
		return nil, err
	}
	sched, err := s.store.ScheduleReset(ctx, cfg.ResetInterval, cfg.CustomResetHours)
	if err != nil {
		return nil, err
	}
	if s.scheduler != nil {
		if err := s.registerTask(sched.NextReset); err != nil {
			return nil, err
		}
	}
	return sched, nil
}

func (s *ResetService) IsSystemReady(ctx context.Context) bool {
	if err := s.store.Ping(ctx); err != nil {
		return false
	}
	_, err := s.store.GetConfig(ctx)
	return err == nil
}

func (s *ResetService) GetResetStatus(ctx context.Context) (*models.ResetStatus, error) {
	sched, err := s.store.GetResetSchedule(ctx)
	if err != nil {
		return nil, err
	}
	due, err := s.store.IsResetDue(ctx)
	if err != nil {
		return nil, err
	}
	status := &models.ResetStatus{
		NextReset:     sched.NextReset,
		Interval:      sched.Interval,
		CurrentPeriod: sched.CurrentPeriod,
		Due:           due,
	}
	if s.scheduler != nil {
		status.SchedulerActive = true
		status.TaskScheduled = s.scheduler.IsTaskScheduled(ResetTaskID)
	}
	return status, nil
}
