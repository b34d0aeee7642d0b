package models

import (
	"fmt"
	"math"
	"time"

	"github.com/gookit/validate"
)

// breakdownTolerance bounds the float drift allowed between a submission's
// declared score and its breakdown total.
const breakdownTolerance = 1e-6

// ScoreBreakdown carries the upstream scoring math untouched. The daemon
// never recomputes it; only the TotalScore/Score equality is enforced.
type ScoreBreakdown struct {
	BaseScore        float64 `json:"baseScore"`
	ChainMultiplier  float64 `json:"chainMultiplier"`
	ComboMultiplier  float64 `json:"comboMultiplier"`
	BoosterModifiers float64 `json:"boosterModifiers"`
	TotalScore       float64 `json:"totalScore"`
}

// ScoreSubmission is a single score reported for a (user, mode) pair.
type ScoreSubmission struct {
	UserID      string         `json:"userId" validate:"required"`
	Username    string         `json:"username" validate:"required"`
	Score       int64          `json:"score" validate:"min:0"`
	Level       int            `json:"level" validate:"required|min:1"`
	Mode        Mode           `json:"mode"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	AchievedAt  time.Time      `json:"achievedAt"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

// Validate checks the submission shape. It never mutates the submission.
func (s *ScoreSubmission) Validate() error {
	v := validate.Struct(s)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	if !s.Mode.Valid() {
		return fmt.Errorf("invalid mode %q", string(s.Mode))
	}
	if math.Abs(s.Breakdown.TotalScore-float64(s.Score)) > breakdownTolerance {
		return fmt.Errorf("breakdown total %.2f does not match score %d", s.Breakdown.TotalScore, s.Score)
	}
	return nil
}

// SubmitResult is the structured outcome of a score submission.
// Validation and store failures surface here, never as errors.
type SubmitResult struct {
	Success               bool   `json:"success"`
	IsNewHighScore        bool   `json:"isNewHighScore"`
	IsNewDifficultyRecord bool   `json:"isNewDifficultyRecord"`
	Rank                  int    `json:"rank,omitempty"`
	Message               string `json:"message"`
}

// BestRecord is a user's personal best for one mode. Its score only ever
// moves up; lower submissions leave it untouched.
type BestRecord struct {
	Score       int64          `json:"score"`
	Level       int            `json:"level"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	AchievedAt  time.Time      `json:"achievedAt"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

// UserStats is the lightweight per-user play record, updated best-effort
// on every accepted submission.
type UserStats struct {
	GamesPlayed  int       `json:"gamesPlayed"`
	LastMode     Mode      `json:"lastMode"`
	LastScore    int64     `json:"lastScore"`
	LastPlayedAt time.Time `json:"lastPlayedAt"`
}
