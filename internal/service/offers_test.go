package service

import (
	"testing"

	"github.com/MKhiriev/go-gpu-missions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickerFunc адаптирует функцию к интерфейсу Picker.
type pickerFunc func(n int) int

func (f pickerFunc) IntN(n int) int { return f(n) }

func TestSelectOffer_PrefersQuickStart(t *testing.T) {
	offers := []models.Offer{
		{GPUVersion: "A"},
		{GPUVersion: "B", QuickStart: true},
		{GPUVersion: "C"},
		{GPUVersion: "D", QuickStart: true},
	}

	// при любом значении генератора результат берётся из quick-start подмножества
	for i := range 2 {
		got, ok := selectOffer(offers, pickerFunc(func(n int) int {
			require.Equal(t, 2, n)
			return i
		}))
		require.True(t, ok)
		assert.True(t, got.QuickStart, "picked %s", got.GPUVersion)
	}
}

func TestSelectOffer_DeprecationFilter(t *testing.T) {
	offers := []models.Offer{
		{GPUVersion: "both", IsDeprecated: true, IsDeprecatedSuperNode: true},
		{GPUVersion: "deprecated-only", IsDeprecated: true},
		{GPUVersion: "super-node-only", IsDeprecatedSuperNode: true},
	}

	var picked []string
	for i := range 2 {
		got, ok := selectOffer(offers, pickerFunc(func(n int) int {
			require.Equal(t, 2, n, "only the offer with both flags is excluded")
			return i
		}))
		require.True(t, ok)
		picked = append(picked, got.GPUVersion)
	}

	assert.Equal(t, []string{"deprecated-only", "super-node-only"}, picked)
}

func TestSelectOffer_QuickStartButDeprecated(t *testing.T) {
	offers := []models.Offer{
		{GPUVersion: "fast-but-gone", QuickStart: true, IsDeprecated: true, IsDeprecatedSuperNode: true},
		{GPUVersion: "slow"},
	}

	got, ok := selectOffer(offers, pickerFunc(func(n int) int { return 0 }))

	require.True(t, ok)
	assert.Equal(t, "slow", got.GPUVersion)
}

func TestSelectOffer_NoSurvivors(t *testing.T) {
	never := pickerFunc(func(int) int {
		t.Fatal("picker must not be called without candidates")
		return 0
	})

	_, ok := selectOffer(nil, never)
	assert.False(t, ok)

	_, ok = selectOffer([]models.Offer{{IsDeprecated: true, IsDeprecatedSuperNode: true}}, never)
	assert.False(t, ok)
}

func TestGlobalPicker_InRange(t *testing.T) {
	for range 100 {
		n := globalPicker{}.IntN(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
	}
}
