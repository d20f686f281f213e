package score

import (
	"github.com/aidancornelius/murmur-api/schema"
)

// Classify maps a decayed load to its risk tier. Boundaries are
// inclusive-lower / exclusive-upper: a load exactly on a threshold
// belongs to the tier above it.
func Classify(decayedLoad float64, thresholds schema.LoadThresholds) schema.RiskLevel {
	switch {
	case decayedLoad < thresholds.Safe:
		return schema.RiskLevelSafe
	case decayedLoad < thresholds.Caution:
		return schema.RiskLevelCaution
	case decayedLoad < thresholds.High:
		return schema.RiskLevelHigh
	default:
		return schema.RiskLevelCritical
	}
}
