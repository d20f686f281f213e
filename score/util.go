package score

// ChangeRate returns the percentage change from old to new. A change
// from zero to any non-zero value counts as +100%.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return 0
		}
		return 100
	}

	return (new - old) / old * 100
}
