package models

// Redis key namespace. Every key the daemon touches is built here so the
// layout stays greppable in one place.
//
//	leaderboard:{mode}                        live ranked collection (zset)
//	leaderboard:{mode}:historical:{period}    frozen archive (zset, TTL-bound)
//	leaderboard:user:{id}:best:{mode}         BestRecord (json)
//	leaderboard:user:{id}:stats               UserStats (json)
//	leaderboard:config                        LeaderboardConfig (json)
//	leaderboard:schedule                      ResetSchedule (json)
//	leaderboard:reset:{id}                    ResetResult audit record (json, TTL-bound)
//	leaderboard:reset:{id}:notifications      notification outcomes (json, TTL-bound)
const keyPrefix = "leaderboard"

func LiveKey(mode Mode) string {
	return keyPrefix + ":" + string(mode)
}

func HistoricalKey(mode Mode, period string) string {
	return keyPrefix + ":" + string(mode) + ":historical:" + period
}

func BestKey(userID string, mode Mode) string {
	return keyPrefix + ":user:" + userID + ":best:" + string(mode)
}

func UserStatsKey(userID string) string {
	return keyPrefix + ":user:" + userID + ":stats"
}

func ConfigKey() string {
	return keyPrefix + ":config"
}

func ScheduleKey() string {
	return keyPrefix + ":schedule"
}

func ResetResultKey(resetID string) string {
	return keyPrefix + ":reset:" + resetID
}

func NotificationAuditKey(resetID string) string {
	return keyPrefix + ":reset:" + resetID + ":notifications"
}
