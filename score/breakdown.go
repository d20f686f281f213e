package score

import (
	"github.com/aidancornelius/murmur-api/schema"
)

// AnalyseContributions sums each category's load for display, with no
// decay and no previous-day term, and derives each category's share of
// the total. All four percentages are zero when the total is zero.
func AnalyseContributions(contributors []schema.LoadContributor, symptoms []schema.SymptomObservation, cfg schema.LoadConfiguration) schema.LoadBreakdown {
	var b schema.LoadBreakdown

	for _, c := range contributors {
		switch e := c.(type) {
		case schema.Activity:
			b.ActivityLoad += ActivityContribution(e)
		case schema.Meal:
			b.MealLoad += MealContribution(e)
		case schema.Sleep:
			b.SleepLoad += SleepContribution(e)
		}
	}
	for _, s := range symptoms {
		b.SymptomLoad += SymptomContribution(s, cfg.SymptomMultiplier)
	}

	total := b.ActivityLoad + b.MealLoad + b.SleepLoad + b.SymptomLoad
	if total > 0 {
		b.ActivityPercent = b.ActivityLoad / total * 100
		b.MealPercent = b.MealLoad / total * 100
		b.SleepPercent = b.SleepLoad / total * 100
		b.SymptomPercent = b.SymptomLoad / total * 100
	}

	return b
}
