package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "leaderboard:hard", LiveKey(ModeHard))
	assert.Equal(t, "leaderboard:hard:historical:2026-W35", HistoricalKey(ModeHard, "2026-W35"))
	assert.Equal(t, "leaderboard:user:u1:best:easy", BestKey("u1", ModeEasy))
	assert.Equal(t, "leaderboard:user:u1:stats", UserStatsKey("u1"))
	assert.Equal(t, "leaderboard:config", ConfigKey())
	assert.Equal(t, "leaderboard:schedule", ScheduleKey())
	assert.Equal(t, "leaderboard:reset:abc", ResetResultKey("abc"))
	assert.Equal(t, "leaderboard:reset:abc:notifications", NotificationAuditKey("abc"))
}
