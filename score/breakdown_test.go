package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidancornelius/murmur-api/schema"
)

func TestAnalyseContributionsPercentagesSumToHundred(t *testing.T) {
	contributors := []schema.LoadContributor{
		schema.Activity{
			Exertion:        schema.ExertionRatings{Physical: 4, Cognitive: 2, Emotional: 2},
			DurationMinutes: minutes(60),
		},
		schema.Meal{
			Exertion: &schema.ExertionRatings{Physical: 3, Cognitive: 2, Emotional: 2},
		},
		mainSleep(2),
	}
	symptoms := []schema.SymptomObservation{
		{Severity: 5, Polarity: schema.SymptomPolarityNegative},
	}

	b := AnalyseContributions(contributors, symptoms, schema.DefaultLoadConfiguration)

	assert.InDelta(t, 16.0, b.ActivityLoad, 0.1)
	assert.InDelta(t, 3.5, b.MealLoad, 0.1)
	assert.InDelta(t, 20.0/3, b.SleepLoad, 0.1)
	assert.InDelta(t, 20.0, b.SymptomLoad, 0.1)

	sum := b.ActivityPercent + b.MealPercent + b.SleepPercent + b.SymptomPercent
	assert.InDelta(t, 100.0, sum, 0.1)
}

func TestAnalyseContributionsEmpty(t *testing.T) {
	b := AnalyseContributions(nil, nil, schema.DefaultLoadConfiguration)

	assert.Equal(t, 0.0, b.ActivityPercent)
	assert.Equal(t, 0.0, b.MealPercent)
	assert.Equal(t, 0.0, b.SleepPercent)
	assert.Equal(t, 0.0, b.SymptomPercent)
}

func TestAnalyseContributionsSingleCategory(t *testing.T) {
	contributors := []schema.LoadContributor{
		schema.Activity{
			Exertion:        schema.ExertionRatings{Physical: 3, Cognitive: 3, Emotional: 3},
			DurationMinutes: minutes(60),
		},
	}

	b := AnalyseContributions(contributors, nil, schema.DefaultLoadConfiguration)

	assert.InDelta(t, 100.0, b.ActivityPercent, 0.1)
	assert.Equal(t, 0.0, b.SymptomPercent)
}

func TestAnalyseContributionsIgnoresDecay(t *testing.T) {
	// breakdown has no previous-day term: identical inputs give
	// identical breakdowns regardless of any carried load
	contributors := []schema.LoadContributor{mainSleep(1)}

	first := AnalyseContributions(contributors, nil, schema.DefaultLoadConfiguration)
	second := AnalyseContributions(contributors, nil, schema.DefaultLoadConfiguration)

	assert.Equal(t, first, second)
	assert.InDelta(t, 10.0, first.SleepLoad, 0.1)
}
