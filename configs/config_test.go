package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFloat(t *testing.T) {
	t.Run("unset falls back to default", func(t *testing.T) {
		assert.Equal(t, 500.0, ConfigFloat("EDUTRACK_TEST_UNSET", 500))
	})

	t.Run("set value is parsed", func(t *testing.T) {
		t.Setenv("EDUTRACK_TEST_AMOUNT", "1250.50")
		assert.Equal(t, 1250.50, ConfigFloat("EDUTRACK_TEST_AMOUNT", 500))
	})

	t.Run("garbage falls back to default", func(t *testing.T) {
		t.Setenv("EDUTRACK_TEST_AMOUNT", "not-a-number")
		assert.Equal(t, 500.0, ConfigFloat("EDUTRACK_TEST_AMOUNT", 500))
	})
}

func TestTopUpBounds(t *testing.T) {
	min, max := TopUpBounds()
	assert.Less(t, min, max)
}
