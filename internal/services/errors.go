package services

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks read-path failures where the store could not be
// reached. Callers use it to tell "no data" apart from "data unavailable".
var ErrStoreUnavailable = errors.New("leaderboard store unavailable")

// ErrInvalidMode rejects operations naming a mode outside the fixed set,
// before any store state is touched.
var ErrInvalidMode = errors.New("invalid mode")

// ErrInvalidInterval rejects reset intervals outside daily/weekly/monthly/custom.
var ErrInvalidInterval = errors.New("invalid reset interval")

// ErrInvalidConfigValue rejects config patches with out-of-range values.
var ErrInvalidConfigValue = errors.New("invalid config value")

func storeUnavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}
