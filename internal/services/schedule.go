package services

import (
	"fmt"
	"sld/internal/models"
	"strconv"
	"strings"
	"time"
)

// Calendar rules for reset scheduling. All computations run in the local
// timezone of the process; period labels are derived from the moment a
// period starts, not from when it is archived.

const defaultCustomHours = 24

// NextResetTime computes when the next reset fires, counted from now.
func NextResetTime(now time.Time, interval models.ResetInterval, customHours int) time.Time {
	switch interval {
	case models.IntervalWeekly:
		// Next Sunday midnight.
		days := (7 - int(now.Weekday())) % 7
		if days == 0 {
			days = 7
		}
		return time.Date(now.Year(), now.Month(), now.Day()+days, 0, 0, 0, 0, now.Location())
	case models.IntervalMonthly:
		return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	case models.IntervalCustom:
		if customHours <= 0 {
			customHours = defaultCustomHours
		}
		return now.Add(time.Duration(customHours) * time.Hour)
	default:
		// Daily: next midnight.
		return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	}
}

// PeriodLabel names the period the instant t falls into.
func PeriodLabel(t time.Time, interval models.ResetInterval) string {
	switch interval {
	case models.IntervalWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case models.IntervalMonthly:
		return t.Format("2006-01")
	case models.IntervalCustom:
		return t.Format("2006-01-02T15")
	default:
		return t.Format("2006-01-02")
	}
}

// PreviousPeriodLabel names the period immediately before the one t falls
// into, used to resolve the historical page of a leaderboard read.
func PreviousPeriodLabel(t time.Time, interval models.ResetInterval, customHours int) string {
	switch interval {
	case models.IntervalWeekly:
		return PeriodLabel(t.AddDate(0, 0, -7), interval)
	case models.IntervalMonthly:
		return PeriodLabel(t.AddDate(0, -1, 0), interval)
	case models.IntervalCustom:
		if customHours <= 0 {
			customHours = defaultCustomHours
		}
		return PeriodLabel(t.Add(-time.Duration(customHours)*time.Hour), interval)
	default:
		return PeriodLabel(t.AddDate(0, 0, -1), interval)
	}
}

// NextPeriodLabel names the period starting at now, given the label the
// previous cycle was archived under. A mid-period reset yields the same
// calendar label as the archive it just wrote; the new label then carries an
// ordinal suffix so every reset cycle keeps a distinct archive key.
func NextPeriodLabel(now time.Time, interval models.ResetInterval, archived string) string {
	label := PeriodLabel(now, interval)
	if label != archived && !strings.HasPrefix(archived, label+".") {
		return label
	}
	cycle := 2
	if idx := strings.LastIndex(archived, "."); idx >= 0 {
		if n, err := strconv.Atoi(archived[idx+1:]); err == nil {
			cycle = n + 1
		}
	}
	return fmt.Sprintf("%s.%d", label, cycle)
}

// PeriodLength approximates one period's wall-clock duration. Months count
// as 30 days; the value feeds archive retention, not schedule math.
func PeriodLength(interval models.ResetInterval, customHours int) time.Duration {
	switch interval {
	case models.IntervalWeekly:
		return 7 * 24 * time.Hour
	case models.IntervalMonthly:
		return 30 * 24 * time.Hour
	case models.IntervalCustom:
		if customHours <= 0 {
			customHours = defaultCustomHours
		}
		return time.Duration(customHours) * time.Hour
	default:
		return 24 * time.Hour
	}
}

// ArchiveRetention is how long a period archive stays readable:
// maxHistoricalPeriods worth of periods, never less than one day.
func ArchiveRetention(cfg *models.LeaderboardConfig) time.Duration {
	periods := cfg.MaxHistoricalPeriods
	if periods < 1 {
		periods = 1
	}
	retention := time.Duration(periods) * PeriodLength(cfg.ResetInterval, cfg.CustomResetHours)
	if retention < 24*time.Hour {
		retention = 24 * time.Hour
	}
	return retention
}
