package score

import (
	"time"

	"github.com/aidancornelius/murmur-api/schema"
)

// CalculateLoadRange folds CalculateDailyLoad over every day from `from`
// through `to` inclusive, carrying each day's decayed load into the
// next. The recurrence is strictly sequential: day i depends on day i-1.
// previousLoad seeds the first day; pass 0 when there is no history
// before the range.
func CalculateLoadRange(from, to time.Time, contributorsByDay map[string][]schema.LoadContributor, symptomsByDay map[string][]schema.SymptomObservation, previousLoad float64, cfg schema.LoadConfiguration) []schema.LoadScore {
	from = startOfDay(from)
	to = startOfDay(to)
	if to.Before(from) {
		return nil
	}

	scores := make([]schema.LoadScore, 0, daysBetween(from, to)+1)
	carried := clamp(previousLoad, loadFloor, loadCeiling)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(schema.DayKeyFormat)
		s := CalculateDailyLoad(day, contributorsByDay[key], symptomsByDay[key], carried, cfg)
		scores = append(scores, s)
		carried = s.DecayedLoad
	}

	return scores
}

// GroupContributorsByDay buckets contributors under their canonical
// calendar-day key in the given location. A nil location means local
// time.
func GroupContributorsByDay(contributors []schema.LoadContributor, loc *time.Location) map[string][]schema.LoadContributor {
	if loc == nil {
		loc = time.Local
	}
	grouped := make(map[string][]schema.LoadContributor)
	for _, c := range contributors {
		key := c.EventTime().In(loc).Format(schema.DayKeyFormat)
		grouped[key] = append(grouped[key], c)
	}
	return grouped
}

// GroupSymptomsByDay is the symptom counterpart of GroupContributorsByDay.
func GroupSymptomsByDay(symptoms []schema.SymptomObservation, loc *time.Location) map[string][]schema.SymptomObservation {
	if loc == nil {
		loc = time.Local
	}
	grouped := make(map[string][]schema.SymptomObservation)
	for _, s := range symptoms {
		key := time.Unix(s.Timestamp, 0).In(loc).Format(schema.DayKeyFormat)
		grouped[key] = append(grouped[key], s)
	}
	return grouped
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	days := 0
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		days++
	}
	return days
}
