package ring

import (
	"math"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
)

// FightingSkill scores a boxer for match resolution:
//
//	skill = weight * len(name) + reach/10 + age modifier
//
// where the age modifier is -1 under 25, -2 over 35, and 0 otherwise.
func FightingSkill(b boxer.Boxer) float64 {
	ageModifier := 0.0
	switch {
	case b.Age < 25:
		ageModifier = -1
	case b.Age > 35:
		ageModifier = -2
	}
	return float64(b.Weight)*float64(len(b.Name)) + b.Reach/10 + ageModifier
}

// winThreshold maps the absolute skill gap onto (0.5, 1) with a logistic
// curve; a random draw below it favors the first entrant.
func winThreshold(skillOne, skillTwo float64) float64 {
	delta := math.Abs(skillOne - skillTwo)
	return 1 / (1 + math.Exp(-delta))
}
