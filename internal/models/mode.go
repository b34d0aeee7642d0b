package models

// Mode identifies one of the fixed game difficulty categories.
// Leaderboards, best records and archives are all scoped per mode.
type Mode string

const (
	ModeEasy      Mode = "easy"
	ModeMedium    Mode = "medium"
	ModeHard      Mode = "hard"
	ModeExpert    Mode = "expert"
	ModeNightmare Mode = "nightmare"
)

var allModes = []Mode{ModeEasy, ModeMedium, ModeHard, ModeExpert, ModeNightmare}

// AllModes returns the fixed mode set in display order.
// Callers must not mutate the returned slice.
func AllModes() []Mode {
	return allModes
}

func (m Mode) Valid() bool {
	switch m {
	case ModeEasy, ModeMedium, ModeHard, ModeExpert, ModeNightmare:
		return true
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}

func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	return m, m.Valid()
}
