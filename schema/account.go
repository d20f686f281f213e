package schema

const (
	ProfileCollection = "profile"
)

type Profile struct {
	ID            string                 `json:"id" bson:"id"`
	AccountNumber string                 `json:"account_number" bson:"account_number"`
	Metadata      map[string]interface{} `json:"metadata" bson:"metadata"`
	// Configuration overrides the application defaults when set.
	Configuration *LoadConfiguration `json:"configuration,omitempty" bson:"configuration,omitempty"`
}
