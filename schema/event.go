package schema

import (
	"time"
)

const (
	ActivityCollection = "activity"
	MealCollection     = "meal"
	SleepCollection    = "sleep"
)

// ExertionRatings holds the three self-reported exertion dimensions,
// each on a 1-5 scale.
type ExertionRatings struct {
	Physical  int `json:"physical" bson:"physical"`
	Cognitive int `json:"cognitive" bson:"cognitive"`
	Emotional int `json:"emotional" bson:"emotional"`
}

// LoadContributor is the closed set of events that can add load to a day.
// Exactly Activity, Meal and Sleep implement it; the marker method keeps
// the set closed so the scoring engine can switch over it exhaustively.
type LoadContributor interface {
	// EventTime is the moment the event is attributed to for
	// calendar-day grouping. Sleep periods use the wake time.
	EventTime() time.Time

	loadContributor()
}

type Activity struct {
	ID            string          `json:"id" bson:"_id,omitempty"`
	AccountNumber string          `json:"account_number" bson:"account_number"`
	Name          string          `json:"name" bson:"name"`
	Exertion      ExertionRatings `json:"exertion" bson:"exertion"`
	// DurationMinutes is nil when the user did not record a duration.
	DurationMinutes *float64 `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty"`
	Timestamp       int64    `json:"timestamp" bson:"ts"`
}

func (a Activity) EventTime() time.Time {
	return time.Unix(a.Timestamp, 0)
}

func (a Activity) loadContributor() {}

type Meal struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	AccountNumber string `json:"account_number" bson:"account_number"`
	Name          string `json:"name" bson:"name"`
	// Exertion is nil when the meal was logged without exertion ratings.
	Exertion  *ExertionRatings `json:"exertion,omitempty" bson:"exertion,omitempty"`
	Timestamp int64            `json:"timestamp" bson:"ts"`
}

func (m Meal) EventTime() time.Time {
	return time.Unix(m.Timestamp, 0)
}

func (m Meal) loadContributor() {}

type Sleep struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	AccountNumber string `json:"account_number" bson:"account_number"`
	BedTime       int64  `json:"bed_time" bson:"bed_time"`
	WakeTime      int64  `json:"wake_time" bson:"wake_time"`
	Quality       int    `json:"quality" bson:"quality"`
}

// EventTime attributes a sleep period to the day the sleeper woke up.
func (s Sleep) EventTime() time.Time {
	return time.Unix(s.WakeTime, 0)
}

func (s Sleep) loadContributor() {}

// Duration is the length of the sleep period.
func (s Sleep) Duration() time.Duration {
	return time.Duration(s.WakeTime-s.BedTime) * time.Second
}
