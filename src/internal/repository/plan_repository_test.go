package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tolleasy-service/src/internal/entity"
)

func TestDefaultPlans(t *testing.T) {
	plans := defaultPlans()
	require.Len(t, plans, 3)

	basic := plans[0]
	assert.Equal(t, "Basic", basic.Name)
	assert.Equal(t, 9.99, basic.Price)
	assert.Equal(t, 99.99, basic.AnnualPrice)
	assert.Equal(t, 2, basic.MaxVehicles)
	assert.Equal(t, entity.PlanFeatures{
		"free_passes":      5,
		"discount":         0,
		"priority_support": false,
	}, basic.Features)

	premium := plans[1]
	assert.Equal(t, "Premium", premium.Name)
	assert.Equal(t, 19.99, premium.Price)
	assert.Equal(t, 199.99, premium.AnnualPrice)
	assert.Equal(t, 5, premium.MaxVehicles)
	assert.Equal(t, entity.PlanFeatures{
		"free_passes":      10,
		"discount":         5,
		"priority_support": true,
	}, premium.Features)

	business := plans[2]
	assert.Equal(t, "Business", business.Name)
	assert.Equal(t, 49.99, business.Price)
	assert.Equal(t, 499.99, business.AnnualPrice)
	assert.Equal(t, 10, business.MaxVehicles)
	assert.Equal(t, entity.PlanFeatures{
		"free_passes":       20,
		"discount":          10,
		"priority_support":  true,
		"dedicated_manager": true,
	}, business.Features)

	for _, plan := range plans {
		assert.True(t, plan.IsActive)
	}
}
