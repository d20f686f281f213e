package schema

import (
	"time"
)

// RiskLevel is the ordered classification of a day's decayed load.
type RiskLevel string

const (
	RiskLevelSafe     RiskLevel = "safe"
	RiskLevelCaution  RiskLevel = "caution"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// LoadThresholds are the four ascending boundaries on the 0-100 load
// scale. A decayed load below Safe classifies as safe, below Caution as
// caution, below High as high, and everything else as critical.
type LoadThresholds struct {
	Safe     float64 `json:"safe" bson:"safe"`
	Caution  float64 `json:"caution" bson:"caution"`
	High     float64 `json:"high" bson:"high"`
	Critical float64 `json:"critical" bson:"critical"`
}

type LoadConfiguration struct {
	Thresholds        LoadThresholds `json:"thresholds" bson:"thresholds"`
	SymptomMultiplier float64        `json:"symptom_multiplier" bson:"symptom_multiplier"`
	DecayRate         float64        `json:"decay_rate" bson:"decay_rate"`
}

var DefaultLoadThresholds = LoadThresholds{
	Safe:     25,
	Caution:  50,
	High:     75,
	Critical: 100,
}

var DefaultLoadConfiguration = LoadConfiguration{
	Thresholds:        DefaultLoadThresholds,
	SymptomMultiplier: 1.0,
	DecayRate:         0.7,
}

// LoadScore is one day's scoring result. RawLoad is the clamped sum of
// same-day contributions; DecayedLoad additionally carries the previous
// day's decayed load forward.
type LoadScore struct {
	Date        time.Time `json:"date" bson:"date"`
	RawLoad     float64   `json:"raw_load" bson:"raw_load"`
	DecayedLoad float64   `json:"decayed_load" bson:"decayed_load"`
	RiskLevel   RiskLevel `json:"risk_level" bson:"risk_level"`
}

// LoadBreakdown splits a day's undecayed load across the four event
// categories. Percentages sum to 100 when the total is non-zero and are
// all zero otherwise.
type LoadBreakdown struct {
	ActivityLoad float64 `json:"activity_load" bson:"activity_load"`
	MealLoad     float64 `json:"meal_load" bson:"meal_load"`
	SleepLoad    float64 `json:"sleep_load" bson:"sleep_load"`
	SymptomLoad  float64 `json:"symptom_load" bson:"symptom_load"`

	ActivityPercent float64 `json:"activity_percent" bson:"activity_percent"`
	MealPercent     float64 `json:"meal_percent" bson:"meal_percent"`
	SleepPercent    float64 `json:"sleep_percent" bson:"sleep_percent"`
	SymptomPercent  float64 `json:"symptom_percent" bson:"symptom_percent"`
}
