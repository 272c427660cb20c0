package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/models"
)

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()

	require.Len(t, limits, 4)
	assert.Equal(t, int64(15), limits[models.ServiceGemini].PerMinute)
	assert.Equal(t, int64(1500), limits[models.ServiceGemini].PerDay)
	assert.Equal(t, int64(5000), limits[models.ServiceGitHub].PerHour)
	assert.Equal(t, int64(500), limits[models.ServiceBLS].PerDay)
	assert.Equal(t, int64(2000), limits[models.ServiceEventbrite].PerHour)
	assert.Equal(t, int64(48000), limits[models.ServiceEventbrite].PerDay)

	for name, l := range limits {
		assert.InDelta(t, 0.8, l.AlertThreshold, 1e-9, name)
		assert.InDelta(t, 0.5, l.ErrorRateThreshold, 1e-9, name)
		assert.Equal(t, int64(10), l.MinCallsForErrorRate, name)
	}
}

func TestMergeLimits(t *testing.T) {
	limits := MergeLimits(map[string]models.ServiceLimits{
		models.ServiceGitHub: {PerMinute: 60, AlertThreshold: 0.9},
		"openai":             {PerDay: 100},
	})

	gh := limits[models.ServiceGitHub]
	assert.Equal(t, int64(60), gh.PerMinute)
	assert.Zero(t, gh.PerHour, "override replaces the whole entry")
	assert.InDelta(t, 0.9, gh.AlertThreshold, 1e-9)
	assert.InDelta(t, 0.5, gh.ErrorRateThreshold, 1e-9)

	assert.Equal(t, int64(100), limits["openai"].PerDay)
	assert.Equal(t, int64(15), limits[models.ServiceGemini].PerMinute)
}

func TestMergeLimits_DoesNotMutateDefaults(t *testing.T) {
	_ = MergeLimits(map[string]models.ServiceLimits{models.ServiceBLS: {PerDay: 1}})

	assert.Equal(t, int64(500), DefaultLimits()[models.ServiceBLS].PerDay)
}
