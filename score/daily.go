package score

import (
	"time"

	"github.com/aidancornelius/murmur-api/schema"
)

// CalculateDailyLoad combines one day's contributions with the previous
// day's decayed load and classifies the result. previousLoad is the
// DecayedLoad of the prior day's score, or 0 when there is no history.
func CalculateDailyLoad(date time.Time, contributors []schema.LoadContributor, symptoms []schema.SymptomObservation, previousLoad float64, cfg schema.LoadConfiguration) schema.LoadScore {
	raw := float64(0)
	for _, c := range contributors {
		raw += ContributionOf(c)
	}
	for _, s := range symptoms {
		raw += SymptomContribution(s, cfg.SymptomMultiplier)
	}

	decayedPrevious := clamp(previousLoad, loadFloor, loadCeiling) *
		clamp(cfg.DecayRate, 0, 1) *
		dayRecoveryModifier(contributors)

	rawLoad := clamp(raw, loadFloor, loadCeiling)
	decayedLoad := clamp(rawLoad+decayedPrevious, loadFloor, loadCeiling)

	return schema.LoadScore{
		Date:        date,
		RawLoad:     rawLoad,
		DecayedLoad: decayedLoad,
		RiskLevel:   Classify(decayedLoad, cfg.Thresholds),
	}
}

// CalculateDailyLoadFromEvents is the typed-collection form of
// CalculateDailyLoad for callers holding events straight from the store.
// It produces numerically identical results.
func CalculateDailyLoadFromEvents(date time.Time, activities []schema.Activity, meals []schema.Meal, sleeps []schema.Sleep, symptoms []schema.SymptomObservation, previousLoad float64, cfg schema.LoadConfiguration) schema.LoadScore {
	contributors := make([]schema.LoadContributor, 0, len(activities)+len(meals)+len(sleeps))
	for _, a := range activities {
		contributors = append(contributors, a)
	}
	for _, m := range meals {
		contributors = append(contributors, m)
	}
	for _, s := range sleeps {
		contributors = append(contributors, s)
	}
	return CalculateDailyLoad(date, contributors, symptoms, previousLoad, cfg)
}

// dayRecoveryModifier returns the modifier of the day's main recovery
// period, or 1.0 when the day has none. When several main periods exist
// the first in slice order wins.
func dayRecoveryModifier(contributors []schema.LoadContributor) float64 {
	for _, c := range contributors {
		if s, ok := c.(schema.Sleep); ok && IsMainRecoveryPeriod(s) {
			return RecoveryModifier(s)
		}
	}
	return 1.0
}
