package score

import (
	"math"
	"time"

	"github.com/aidancornelius/murmur-api/schema"
)

const (
	loadFloor   = 0.0
	loadCeiling = 100.0

	// Every exertion-derived contribution is scaled by the same
	// multiplier so that a typical hour-long moderate activity lands in
	// the low tens on the 0-100 load scale.
	exertionLoadMultiplier = 6.0

	activityCategoryWeight = 1.0
	mealCategoryWeight     = 0.5
	mealDurationWeight     = 0.5

	durationWeightFloor   = 0.25
	durationWeightCeiling = 2.0

	// highExertionCutoff applies to avgExertion x durationWeight, which
	// ranges up to 10.
	highExertionCutoff = 4.0

	// Sleep periods shorter than this count as naps.
	mainSleepMinimum = 3 * time.Hour

	sleepLoadCeiling = 10.0

	neutralSeverity  = 3.0
	severityLoadStep = 10.0
)

// clamp bounds v to [lo, hi]. Non-finite values collapse to hi so a
// poisoned intermediate can never escape the documented range.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return hi
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampRating(r int) float64 {
	return clamp(float64(r), 1, 5)
}

func averageExertion(e schema.ExertionRatings) float64 {
	return (clampRating(e.Physical) + clampRating(e.Cognitive) + clampRating(e.Emotional)) / 3
}

func durationWeight(minutes *float64) float64 {
	if minutes == nil {
		return 1.0
	}
	return clamp(*minutes/60, durationWeightFloor, durationWeightCeiling)
}

// activityIntensity is the duration-weighted average exertion of an
// activity, before category weighting.
func activityIntensity(a schema.Activity) float64 {
	return averageExertion(a.Exertion) * durationWeight(a.DurationMinutes)
}

// ActivityContribution returns the load a single activity adds to its day.
func ActivityContribution(a schema.Activity) float64 {
	return activityIntensity(a) * activityCategoryWeight * exertionLoadMultiplier
}

// IsHighExertion flags activities intense enough to warrant a pacing
// warning in the client.
func IsHighExertion(a schema.Activity) bool {
	return activityIntensity(a) > highExertionCutoff
}

// HasExertionData reports whether a meal was logged with exertion
// ratings. Meals without them contribute no load.
func HasExertionData(m schema.Meal) bool {
	if m.Exertion == nil {
		return false
	}
	return m.Exertion.Physical != 0 || m.Exertion.Cognitive != 0 || m.Exertion.Emotional != 0
}

// MealContribution returns the load a meal adds to its day. Meals carry
// both a reduced category weight and a fixed half-hour-equivalent
// duration weight since they have no duration field.
func MealContribution(m schema.Meal) float64 {
	if !HasExertionData(m) {
		return 0
	}
	return averageExertion(*m.Exertion) * mealDurationWeight * mealCategoryWeight * exertionLoadMultiplier
}

// IsMainRecoveryPeriod separates overnight sleep from naps.
func IsMainRecoveryPeriod(s schema.Sleep) bool {
	return s.Duration() >= mainSleepMinimum
}

// RecoveryModifier maps a sleep period to the multiplier applied to the
// previous day's carried-over load. Naps only nudge the carry-over at
// high quality.
func RecoveryModifier(s schema.Sleep) float64 {
	quality := int(clampRating(s.Quality))

	if !IsMainRecoveryPeriod(s) {
		if quality >= 4 {
			return 1.05
		}
		return 1.0
	}

	switch quality {
	case 5, 4:
		return 1.2
	case 3:
		return 1.0
	case 2:
		return 0.75
	default:
		return 0.5
	}
}

// SleepContribution returns the load a sleep period itself adds. Restful
// main sleep (quality 4 and up) and naps add nothing; the load rises
// linearly to a fixed ceiling as main-sleep quality falls to 1.
func SleepContribution(s schema.Sleep) float64 {
	if !IsMainRecoveryPeriod(s) {
		return 0
	}
	quality := clampRating(s.Quality)
	if quality >= 4 {
		return 0
	}
	return clamp((4-quality)/3*sleepLoadCeiling, 0, sleepLoadCeiling)
}

// SymptomContribution returns the load a symptom observation adds. The
// severity scale is inverted for positive-wellbeing symptoms so a high
// rating of a good symptom maps to low burden; ratings at or below the
// neutral midpoint add nothing.
func SymptomContribution(o schema.SymptomObservation, multiplier float64) float64 {
	normalized := clampRating(o.Severity)
	if o.Polarity == schema.SymptomPolarityPositive {
		normalized = 6 - normalized
	}

	burden := (normalized - neutralSeverity) * severityLoadStep
	if burden < 0 {
		burden = 0
	}
	if multiplier < 0 || math.IsNaN(multiplier) {
		multiplier = 0
	}

	return burden * multiplier
}

// ContributionOf dispatches over the closed contributor set.
func ContributionOf(c schema.LoadContributor) float64 {
	switch e := c.(type) {
	case schema.Activity:
		return ActivityContribution(e)
	case schema.Meal:
		return MealContribution(e)
	case schema.Sleep:
		return SleepContribution(e)
	}
	return 0
}
