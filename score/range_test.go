package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aidancornelius/murmur-api/schema"
)

func TestCalculateLoadRangeLengthAndOrder(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	scores := CalculateLoadRange(from, to, nil, nil, 0, schema.DefaultLoadConfiguration)

	assert.Len(t, scores, 7)
	for i := 1; i < len(scores); i++ {
		assert.True(t, scores[i].Date.After(scores[i-1].Date))
	}
	assert.Equal(t, from, scores[0].Date)
	assert.Equal(t, to, scores[len(scores)-1].Date)
}

func TestCalculateLoadRangeSingleDay(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	scores := CalculateLoadRange(day, day, nil, nil, 0, schema.DefaultLoadConfiguration)
	assert.Len(t, scores, 1)
}

func TestCalculateLoadRangeInvertedInterval(t *testing.T) {
	from := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, CalculateLoadRange(from, to, nil, nil, 0, schema.DefaultLoadConfiguration))
}

func TestCalculateLoadRangeDecaysAfterHighLoadDay(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	hard := schema.Activity{
		Exertion:        schema.ExertionRatings{Physical: 5, Cognitive: 5, Emotional: 5},
		DurationMinutes: minutes(120),
		Timestamp:       from.Add(10 * time.Hour).Unix(),
	}
	contributorsByDay := map[string][]schema.LoadContributor{
		from.Format(schema.DayKeyFormat): {hard},
	}

	scores := CalculateLoadRange(from, to, contributorsByDay, nil, 0, schema.DefaultLoadConfiguration)

	assert.Len(t, scores, 5)
	assert.InDelta(t, 60.0, scores[0].DecayedLoad, 0.1)

	// idle days decay monotonically
	for i := 1; i < len(scores); i++ {
		assert.Equal(t, 0.0, scores[i].RawLoad)
		assert.Less(t, scores[i].DecayedLoad, scores[i-1].DecayedLoad)
	}
}

func TestCalculateLoadRangeCarriesSeed(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	scores := CalculateLoadRange(day, day, nil, nil, 80, schema.DefaultLoadConfiguration)

	assert.Len(t, scores, 1)
	assert.InDelta(t, 56.0, scores[0].DecayedLoad, 0.1) // 80 x 0.7
}

func TestGroupContributorsByDay(t *testing.T) {
	zone := time.FixedZone("AEST", 10*3600)
	day1 := time.Date(2025, 6, 1, 9, 0, 0, 0, zone)
	day1Late := time.Date(2025, 6, 1, 23, 30, 0, 0, zone)
	day2 := time.Date(2025, 6, 2, 8, 0, 0, 0, zone)

	contributors := []schema.LoadContributor{
		schema.Activity{Name: "walk", Timestamp: day1.Unix()},
		schema.Activity{Name: "reading", Timestamp: day1Late.Unix()},
		schema.Meal{Name: "breakfast", Timestamp: day2.Unix()},
	}

	grouped := GroupContributorsByDay(contributors, zone)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["2025-06-01"], 2)
	assert.Len(t, grouped["2025-06-02"], 1)
}

func TestGroupContributorsByDaySleepUsesWakeTime(t *testing.T) {
	zone := time.FixedZone("AEST", 10*3600)
	bed := time.Date(2025, 6, 1, 22, 0, 0, 0, zone)

	sleep := schema.Sleep{
		BedTime:  bed.Unix(),
		WakeTime: bed.Add(9 * time.Hour).Unix(),
		Quality:  4,
	}

	grouped := GroupContributorsByDay([]schema.LoadContributor{sleep}, zone)
	assert.Len(t, grouped["2025-06-02"], 1)
}

func TestGroupSymptomsByDay(t *testing.T) {
	zone := time.FixedZone("AEST", 10*3600)
	day1 := time.Date(2025, 6, 1, 12, 0, 0, 0, zone)

	symptoms := []schema.SymptomObservation{
		{Name: "fatigue", Timestamp: day1.Unix()},
		{Name: "brain fog", Timestamp: day1.Add(2 * time.Hour).Unix()},
	}

	grouped := GroupSymptomsByDay(symptoms, zone)
	assert.Len(t, grouped, 1)
	assert.Len(t, grouped["2025-06-01"], 2)
}
