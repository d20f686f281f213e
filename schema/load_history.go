package schema

const (
	LoadHistoryCollection = "loadHistory"
)

// DayKeyFormat is the canonical calendar-day key used to index scores
// and group contributors. Formatting is done in the event's local zone
// so a day boundary stays stable for a single location.
const DayKeyFormat = "2006-01-02"

// LoadRecord is the persisted snapshot of one day's LoadScore.
type LoadRecord struct {
	AccountNumber string    `json:"account_number" bson:"account_number"`
	Date          string    `json:"date" bson:"date"`
	RawLoad       float64   `json:"raw_load" bson:"raw_load"`
	DecayedLoad   float64   `json:"decayed_load" bson:"decayed_load"`
	RiskLevel     RiskLevel `json:"risk_level" bson:"risk_level"`
	Timestamp     int64     `json:"ts" bson:"ts"`
}
