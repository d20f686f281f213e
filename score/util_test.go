package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeRate(t *testing.T) {
	assert.Equal(t, 25.0, ChangeRate(100, 80))
	assert.Equal(t, -50.0, ChangeRate(40, 80))
	assert.Equal(t, 0.0, ChangeRate(0, 0))
	assert.Equal(t, 100.0, ChangeRate(5, 0))
	assert.Equal(t, -100.0, ChangeRate(0, 10))
}
