package boxer

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Weight class thresholds in pounds. Anything below featherweight is not a
// legal competitor.
const (
	MinWeight       = 125
	heavyweightMin  = 203
	middleweightMin = 166
	lightweightMin  = 133
	minAge          = 18
	maxAge          = 40
)

var (
	ErrNotFound      = errors.New("boxer not found")
	ErrAlreadyExists = errors.New("boxer already exists")
)

// Result is the outcome recorded against a single boxer after a fight.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
)

// Boxer is a competitor record. WeightClass is derived from Weight and never
// stored.
type Boxer struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Height      int     `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
}

// NewBoxer carries the caller-supplied fields for boxer creation.
type NewBoxer struct {
	Name   string  `json:"name"`
	Weight int     `json:"weight"`
	Height int     `json:"height"`
	Reach  float64 `json:"reach"`
	Age    int     `json:"age"`
}

// validationError marks attribute constraint failures so the HTTP layer can
// map them to 400 responses.
type validationError struct {
	msg string
}

func (e validationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return validationError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks the physical attribute constraints for a new boxer.
func (n NewBoxer) Validate() error {
	if n.Name == "" {
		return invalidf("name must not be empty")
	}
	if n.Weight < MinWeight {
		return invalidf("invalid weight %d: must be at least %d", n.Weight, MinWeight)
	}
	if n.Height <= 0 {
		return invalidf("invalid height %d: must be greater than 0", n.Height)
	}
	if n.Reach <= 0 {
		return invalidf("invalid reach %.1f: must be greater than 0", n.Reach)
	}
	if n.Age < minAge || n.Age > maxAge {
		return invalidf("invalid age %d: must be between %d and %d", n.Age, minAge, maxAge)
	}
	return nil
}

// WeightClassFor maps a weight to its class. Weights below the featherweight
// floor return an error rather than a class.
func WeightClassFor(weight int) (string, error) {
	switch {
	case weight >= heavyweightMin:
		return "HEAVYWEIGHT", nil
	case weight >= middleweightMin:
		return "MIDDLEWEIGHT", nil
	case weight >= lightweightMin:
		return "LIGHTWEIGHT", nil
	case weight >= MinWeight:
		return "FEATHERWEIGHT", nil
	default:
		return "", fmt.Errorf("invalid weight %d: must be at least %d", weight, MinWeight)
	}
}

// LeaderboardEntry is one ranked row. WinPct is a percentage rounded to one
// decimal place.
type LeaderboardEntry struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Height      int     `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
	Fights      int     `json:"fights"`
	Wins        int     `json:"wins"`
	WinPct      float64 `json:"win_pct"`
}

// FightRecord is the persisted history row for a completed fight.
type FightRecord struct {
	ID       uuid.UUID
	BoxerOne int64
	BoxerTwo int64
	WinnerID int64
	FoughtAt time.Time
}
