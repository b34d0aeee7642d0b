package models

import "time"

// RankedEntry is the self-describing member stored in a mode's ranked
// collection. EntryID keeps duplicate (user, score) pairs distinguishable
// as separate zset members.
type RankedEntry struct {
	EntryID     string         `json:"entryId"`
	UserID      string         `json:"userId"`
	Username    string         `json:"username"`
	Score       int64          `json:"score"`
	Level       int            `json:"level"`
	Mode        Mode           `json:"mode"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	AchievedAt  time.Time      `json:"achievedAt"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

// LeaderboardEntry is a RankedEntry as presented to a viewer.
type LeaderboardEntry struct {
	RankedEntry
	Rank          int  `json:"rank"`
	IsCurrentUser bool `json:"isCurrentUser"`
}

type ResetInterval string

const (
	IntervalDaily   ResetInterval = "daily"
	IntervalWeekly  ResetInterval = "weekly"
	IntervalMonthly ResetInterval = "monthly"
	IntervalCustom  ResetInterval = "custom"
)

func (i ResetInterval) Valid() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly, IntervalCustom:
		return true
	}
	return false
}

// LeaderboardConfig is the centrally persisted runtime configuration,
// created with defaults on first read and patched via UpdateConfig.
type LeaderboardConfig struct {
	ResetInterval        ResetInterval `json:"resetInterval"`
	CustomResetHours     int           `json:"customResetHours,omitempty"`
	MaxHistoricalPeriods int           `json:"maxHistoricalPeriods"`
	TopPlayersCount      int           `json:"topPlayersCount"`
	EnableAutoAnnounce   bool          `json:"enableAutoAnnounce"`
	EnableNotifications  bool          `json:"enableNotifications"`
}

// ConfigPatch carries a partial config update; nil fields stay unchanged.
type ConfigPatch struct {
	ResetInterval        *ResetInterval `json:"resetInterval,omitempty"`
	CustomResetHours     *int           `json:"customResetHours,omitempty"`
	MaxHistoricalPeriods *int           `json:"maxHistoricalPeriods,omitempty"`
	TopPlayersCount      *int           `json:"topPlayersCount,omitempty"`
	EnableAutoAnnounce   *bool          `json:"enableAutoAnnounce,omitempty"`
	EnableNotifications  *bool          `json:"enableNotifications,omitempty"`
}

// ResetInfo is the schedule summary attached to leaderboard reads.
type ResetInfo struct {
	NextReset     time.Time     `json:"nextReset"`
	Interval      ResetInterval `json:"interval"`
	CurrentPeriod string        `json:"currentPeriod"`
}

// HistoricalPage is the previous period's top slice, returned on request.
type HistoricalPage struct {
	Period  string             `json:"period"`
	Entries []LeaderboardEntry `json:"entries"`
}

// Leaderboard is one mode's ranked page. TotalPlayers reports the raw
// collection cardinality, so corrupted members still count toward it.
type Leaderboard struct {
	Mode         Mode               `json:"mode"`
	Entries      []LeaderboardEntry `json:"entries"`
	TotalPlayers int64              `json:"totalPlayers"`
	UserRank     int                `json:"userRank,omitempty"`
	ResetInfo    *ResetInfo         `json:"resetInfo,omitempty"`
	Historical   *HistoricalPage    `json:"historical,omitempty"`
}

// UserRank resolves a user's 1-based position within a mode's ordering.
type UserRank struct {
	UserID string `json:"userId"`
	Mode   Mode   `json:"mode"`
	Score  int64  `json:"score"`
	Rank   int    `json:"rank"`
}
