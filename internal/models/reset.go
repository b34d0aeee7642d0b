package models

import "time"

// ResetSchedule tracks when the next reset fires and which period the live
// leaderboards currently belong to. PreviousPeriod names the archive written
// by the last reset; historical reads resolve against it rather than
// recomputing a label from the clock. It is mutated only by schedule
// computation and by reset execution advancing it.
type ResetSchedule struct {
	NextReset      time.Time     `json:"nextReset"`
	Interval       ResetInterval `json:"interval"`
	CurrentPeriod  string        `json:"currentPeriod"`
	PreviousPeriod string        `json:"previousPeriod,omitempty"`
}

// ResetResult is the immutable audit record of one reset execution.
// AnnouncementCreated is filled in post-hoc once the announcement side
// effect has been attempted. Pending marks a placeholder returned for a
// non-immediate manual reset; such results describe a scheduled reset
// that has not executed and must not be read as a real outcome.
type ResetResult struct {
	ResetID              string                      `json:"resetId"`
	Timestamp            time.Time                   `json:"timestamp"`
	Period               string                      `json:"period"`
	ModesReset           []Mode                      `json:"modesReset"`
	TopPlayers           map[Mode][]LeaderboardEntry `json:"topPlayers"`
	TotalPlayersAffected int64                       `json:"totalPlayersAffected"`
	AnnouncementCreated  bool                        `json:"announcementCreated"`
	Pending              bool                        `json:"pending,omitempty"`
}

// ModePreview is one mode's slice of a read-only reset preview.
type ModePreview struct {
	TopPlayers   []LeaderboardEntry `json:"topPlayers"`
	TotalPlayers int64              `json:"totalPlayers"`
}

// ResetPreview answers "what would a reset right now produce" without
// touching anything.
type ResetPreview struct {
	Period       string               `json:"period"`
	NextReset    time.Time            `json:"nextReset"`
	Modes        map[Mode]ModePreview `json:"modes"`
	TotalPlayers int64                `json:"totalPlayers"`
}

// ResetStatus is the introspection view composed by the orchestrator.
type ResetStatus struct {
	NextReset       time.Time     `json:"nextReset"`
	Interval        ResetInterval `json:"interval"`
	CurrentPeriod   string        `json:"currentPeriod"`
	Due             bool          `json:"due"`
	SchedulerActive bool          `json:"schedulerActive"`
	TaskScheduled   bool          `json:"taskScheduled"`
}
