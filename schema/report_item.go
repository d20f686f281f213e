package schema

// LoadCategory identifies which event category a load value came from.
type LoadCategory string

const (
	LoadCategoryActivity LoadCategory = "activity"
	LoadCategoryMeal     LoadCategory = "meal"
	LoadCategorySleep    LoadCategory = "sleep"
	LoadCategorySymptom  LoadCategory = "symptom"
)
