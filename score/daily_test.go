package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aidancornelius/murmur-api/schema"
)

var testDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestCalculateDailyLoadEmptyDay(t *testing.T) {
	s := CalculateDailyLoad(testDay, nil, nil, 0, schema.DefaultLoadConfiguration)

	assert.Equal(t, 0.0, s.RawLoad)
	assert.Equal(t, 0.0, s.DecayedLoad)
	assert.Equal(t, schema.RiskLevelSafe, s.RiskLevel)
	assert.Equal(t, testDay, s.Date)
}

func TestCalculateDailyLoadDecayOnlyDay(t *testing.T) {
	s := CalculateDailyLoad(testDay, nil, nil, 60, schema.DefaultLoadConfiguration)

	assert.Equal(t, 0.0, s.RawLoad)
	assert.InDelta(t, 42.0, s.DecayedLoad, 0.1) // 60 x 0.7
	assert.Equal(t, schema.RiskLevelCaution, s.RiskLevel)
}

func TestCalculateDailyLoadPoorSleepSlowsRecovery(t *testing.T) {
	// 8h sleep at quality 1: own load 10, recovery modifier 0.5
	contributors := []schema.LoadContributor{
		mainSleep(1),
		schema.Activity{
			Exertion:        schema.ExertionRatings{Physical: 1, Cognitive: 1, Emotional: 1},
			DurationMinutes: minutes(50),
		},
	}

	s := CalculateDailyLoad(testDay, contributors, nil, 30, schema.DefaultLoadConfiguration)

	assert.InDelta(t, 15.0, s.RawLoad, 0.1)
	assert.InDelta(t, 25.5, s.DecayedLoad, 0.1) // 30 x 0.7 x 0.5 + 15
}

func TestCalculateDailyLoadGoodSleepModifier(t *testing.T) {
	contributors := []schema.LoadContributor{mainSleep(5)}

	s := CalculateDailyLoad(testDay, contributors, nil, 50, schema.DefaultLoadConfiguration)

	assert.Equal(t, 0.0, s.RawLoad)
	assert.InDelta(t, 42.0, s.DecayedLoad, 0.1) // 50 x 0.7 x 1.2
}

func TestCalculateDailyLoadCapsAtCeiling(t *testing.T) {
	contributors := make([]schema.LoadContributor, 0, 20)
	for i := 0; i < 20; i++ {
		contributors = append(contributors, schema.Activity{
			Exertion:        schema.ExertionRatings{Physical: 5, Cognitive: 5, Emotional: 5},
			DurationMinutes: minutes(120),
		})
	}

	s := CalculateDailyLoad(testDay, contributors, nil, 100, schema.DefaultLoadConfiguration)

	assert.Equal(t, 100.0, s.RawLoad)
	assert.Equal(t, 100.0, s.DecayedLoad)
	assert.Equal(t, schema.RiskLevelCritical, s.RiskLevel)
}

func TestCalculateDailyLoadDecayedNeverBelowRaw(t *testing.T) {
	contributors := []schema.LoadContributor{
		schema.Activity{
			Exertion:        schema.ExertionRatings{Physical: 4, Cognitive: 2, Emotional: 2},
			DurationMinutes: minutes(60),
		},
	}

	s := CalculateDailyLoad(testDay, contributors, nil, 40, schema.DefaultLoadConfiguration)
	assert.GreaterOrEqual(t, s.DecayedLoad, s.RawLoad)
}

func TestCalculateDailyLoadSymptoms(t *testing.T) {
	symptoms := []schema.SymptomObservation{
		{Severity: 5, Polarity: schema.SymptomPolarityNegative},
		{Severity: 4, Polarity: schema.SymptomPolarityNegative},
		{Severity: 5, Polarity: schema.SymptomPolarityPositive},
	}

	s := CalculateDailyLoad(testDay, nil, symptoms, 0, schema.DefaultLoadConfiguration)

	assert.InDelta(t, 30.0, s.RawLoad, 0.1)
	assert.Equal(t, schema.RiskLevelCaution, s.RiskLevel)
}

func TestCalculateDailyLoadClampsNegativePreviousLoad(t *testing.T) {
	s := CalculateDailyLoad(testDay, nil, nil, -50, schema.DefaultLoadConfiguration)

	assert.Equal(t, 0.0, s.DecayedLoad)
}

func TestCalculateDailyLoadFromEventsMatchesGenericForm(t *testing.T) {
	activities := []schema.Activity{
		{Exertion: schema.ExertionRatings{Physical: 4, Cognitive: 3, Emotional: 2}, DurationMinutes: minutes(90)},
	}
	meals := []schema.Meal{
		{Exertion: &schema.ExertionRatings{Physical: 3, Cognitive: 2, Emotional: 2}},
	}
	sleeps := []schema.Sleep{mainSleep(2)}
	symptoms := []schema.SymptomObservation{
		{Severity: 4, Polarity: schema.SymptomPolarityNegative},
	}

	contributors := []schema.LoadContributor{activities[0], meals[0], sleeps[0]}

	generic := CalculateDailyLoad(testDay, contributors, symptoms, 20, schema.DefaultLoadConfiguration)
	typed := CalculateDailyLoadFromEvents(testDay, activities, meals, sleeps, symptoms, 20, schema.DefaultLoadConfiguration)

	assert.Equal(t, generic, typed)
}
