package services

import (
	"testing"
	"time"

	"sld/internal/models"

	"github.com/stretchr/testify/assert"
)

func localDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

func TestNextResetTime_Daily(t *testing.T) {
	now := localDate(2026, time.August, 26, 15)
	next := NextResetTime(now, models.IntervalDaily, 0)
	assert.Equal(t, localDate(2026, time.August, 27, 0), next)
}

func TestNextResetTime_DailyCrossesMonthBoundary(t *testing.T) {
	now := localDate(2026, time.August, 31, 23)
	next := NextResetTime(now, models.IntervalDaily, 0)
	assert.Equal(t, localDate(2026, time.September, 1, 0), next)
}

func TestNextResetTime_Weekly(t *testing.T) {
	// 2026-08-26 is a Wednesday; next Sunday is the 30th.
	now := localDate(2026, time.August, 26, 15)
	next := NextResetTime(now, models.IntervalWeekly, 0)
	assert.Equal(t, localDate(2026, time.August, 30, 0), next)
}

func TestNextResetTime_WeeklyOnSundayJumpsAFullWeek(t *testing.T) {
	now := localDate(2026, time.August, 30, 10)
	next := NextResetTime(now, models.IntervalWeekly, 0)
	assert.Equal(t, localDate(2026, time.September, 6, 0), next)
}

func TestNextResetTime_Monthly(t *testing.T) {
	now := localDate(2026, time.August, 26, 15)
	next := NextResetTime(now, models.IntervalMonthly, 0)
	assert.Equal(t, localDate(2026, time.September, 1, 0), next)
}

func TestNextResetTime_MonthlyInDecemberRollsYear(t *testing.T) {
	now := localDate(2026, time.December, 15, 8)
	next := NextResetTime(now, models.IntervalMonthly, 0)
	assert.Equal(t, localDate(2027, time.January, 1, 0), next)
}

func TestNextResetTime_Custom(t *testing.T) {
	now := localDate(2026, time.August, 26, 15)
	next := NextResetTime(now, models.IntervalCustom, 6)
	assert.Equal(t, now.Add(6*time.Hour), next)
}

func TestNextResetTime_CustomZeroHoursDefaultsToDay(t *testing.T) {
	now := localDate(2026, time.August, 26, 15)
	next := NextResetTime(now, models.IntervalCustom, 0)
	assert.Equal(t, now.Add(24*time.Hour), next)
}

func TestPeriodLabel(t *testing.T) {
	at := localDate(2026, time.August, 26, 15)

	assert.Equal(t, "2026-08-26", PeriodLabel(at, models.IntervalDaily))
	assert.Equal(t, "2026-W35", PeriodLabel(at, models.IntervalWeekly))
	assert.Equal(t, "2026-08", PeriodLabel(at, models.IntervalMonthly))
	assert.Equal(t, "2026-08-26T15", PeriodLabel(at, models.IntervalCustom))
}

func TestPreviousPeriodLabel(t *testing.T) {
	at := localDate(2026, time.August, 26, 15)

	assert.Equal(t, "2026-08-25", PreviousPeriodLabel(at, models.IntervalDaily, 0))
	assert.Equal(t, "2026-W34", PreviousPeriodLabel(at, models.IntervalWeekly, 0))
	assert.Equal(t, "2026-07", PreviousPeriodLabel(at, models.IntervalMonthly, 0))
	assert.Equal(t, "2026-08-26T09", PreviousPeriodLabel(at, models.IntervalCustom, 6))
}

func TestPreviousPeriodLabel_MonthlyAcrossYear(t *testing.T) {
	at := localDate(2026, time.January, 10, 0)
	assert.Equal(t, "2025-12", PreviousPeriodLabel(at, models.IntervalMonthly, 0))
}

func TestNextPeriodLabel_AdvancesAcrossBoundary(t *testing.T) {
	at := localDate(2026, time.August, 26, 15)

	assert.Equal(t, "2026-08-26", NextPeriodLabel(at, models.IntervalDaily, "2026-08-25"))
	assert.Equal(t, "2026-W35", NextPeriodLabel(at, models.IntervalWeekly, "2026-W34"))
	assert.Equal(t, "2026-W35", NextPeriodLabel(at, models.IntervalWeekly, ""))
}

func TestNextPeriodLabel_MidPeriodResetGetsSuffix(t *testing.T) {
	at := localDate(2026, time.August, 26, 15)

	assert.Equal(t, "2026-W35.2", NextPeriodLabel(at, models.IntervalWeekly, "2026-W35"))
	assert.Equal(t, "2026-W35.3", NextPeriodLabel(at, models.IntervalWeekly, "2026-W35.2"))
	assert.Equal(t, "2026-08-26.2", NextPeriodLabel(at, models.IntervalDaily, "2026-08-26"))
}

func TestArchiveRetention(t *testing.T) {
	cfg := &models.LeaderboardConfig{
		ResetInterval:        models.IntervalWeekly,
		MaxHistoricalPeriods: 4,
	}
	assert.Equal(t, 4*7*24*time.Hour, ArchiveRetention(cfg))
}

func TestArchiveRetention_FloorsAtOneDay(t *testing.T) {
	cfg := &models.LeaderboardConfig{
		ResetInterval:    models.IntervalCustom,
		CustomResetHours: 1,
		// Zero periods is treated as one.
		MaxHistoricalPeriods: 0,
	}
	assert.Equal(t, 24*time.Hour, ArchiveRetention(cfg))
}
