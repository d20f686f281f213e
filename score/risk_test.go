package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidancornelius/murmur-api/schema"
)

func TestClassify(t *testing.T) {
	thresholds := schema.DefaultLoadThresholds

	assert.Equal(t, schema.RiskLevelSafe, Classify(0, thresholds))
	assert.Equal(t, schema.RiskLevelSafe, Classify(24.9, thresholds))
	assert.Equal(t, schema.RiskLevelCaution, Classify(25, thresholds))
	assert.Equal(t, schema.RiskLevelCaution, Classify(49.9, thresholds))
	assert.Equal(t, schema.RiskLevelHigh, Classify(50, thresholds))
	assert.Equal(t, schema.RiskLevelHigh, Classify(74.9, thresholds))
	assert.Equal(t, schema.RiskLevelCritical, Classify(75, thresholds))
	assert.Equal(t, schema.RiskLevelCritical, Classify(100, thresholds))
}

func TestClassifyCustomThresholds(t *testing.T) {
	thresholds := schema.LoadThresholds{Safe: 10, Caution: 20, High: 30, Critical: 40}

	assert.Equal(t, schema.RiskLevelSafe, Classify(9.99, thresholds))
	assert.Equal(t, schema.RiskLevelCritical, Classify(35, thresholds))
}
