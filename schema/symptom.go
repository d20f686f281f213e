package schema

const (
	SymptomCollection = "symptomObservation"
)

// SymptomPolarity tells the engine which direction a severity rating
// points: a high rating of a negative symptom (pain, fatigue) means more
// burden, while a high rating of a positive one (restfulness, clarity)
// means less.
type SymptomPolarity string

const (
	SymptomPolarityNegative SymptomPolarity = "negative"
	SymptomPolarityPositive SymptomPolarity = "positive"
)

type SymptomObservation struct {
	ID            string          `json:"id" bson:"_id,omitempty"`
	AccountNumber string          `json:"account_number" bson:"account_number"`
	Name          string          `json:"name" bson:"name"`
	Severity      int             `json:"severity" bson:"severity"`
	Polarity      SymptomPolarity `json:"polarity" bson:"polarity"`
	Timestamp     int64           `json:"timestamp" bson:"ts"`
}
