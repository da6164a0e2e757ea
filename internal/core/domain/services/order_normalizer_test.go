package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestZoneMap() zone.Map {
	return zone.NewMap([]zone.Alias{
		{Raw: "6 october", Canonical: "6th of October"},
		{Raw: "maadi", Canonical: "Maadi"},
	})
}

func TestNormalize_MatchesRecordKeysCaseInsensitively(t *testing.T) {
	n := services.NewOrderNormalizer(newTestZoneMap())

	orders := n.Normalize([]map[string]any{
		{"OrderId": "A1", "CITY": "Giza", "PaymentType": "COD", "ProductType": "Box", "Weight": 2.0},
	})

	require.Len(t, orders, 1)
	assert.Equal(t, "A1", orders[0].ID())
	assert.Equal(t, "Giza", orders[0].City())
	assert.Equal(t, "COD", orders[0].PaymentType())
	assert.Equal(t, "Box", orders[0].ProductType())
	assert.InDelta(t, 2.0, orders[0].Weight(), 0)
}

func TestNormalize_IdentifierAliasChainPrefersOrderID(t *testing.T) {
	n := services.NewOrderNormalizer(newTestZoneMap())

	orders := n.Normalize([]map[string]any{
		{"orderid": "first", "order_id": "second", "order": "third"},
		{"order_id": "second", "order": "third"},
		{"order": "third"},
		{},
	})

	require.Len(t, orders, 4)
	assert.Equal(t, "first", orders[0].ID())
	assert.Equal(t, "second", orders[1].ID())
	assert.Equal(t, "third", orders[2].ID())
	assert.Equal(t, "", orders[3].ID())
}

func TestNormalize_WhitespaceOnlyIdentifierWinsOverFallbackKey(t *testing.T) {
	n := services.NewOrderNormalizer(newTestZoneMap())

	// The chain picks the first non-empty value before trimming, so a
	// whitespace-only orderid shadows a populated order_id and trims to blank.
	orders := n.Normalize([]map[string]any{
		{"orderid": "   ", "order_id": "B7"},
	})

	require.Len(t, orders, 1)
	assert.Equal(t, "", orders[0].ID())
}

func TestNormalize_PaymentFallsBackAfterTrimming(t *testing.T) {
	n := services.NewOrderNormalizer(newTestZoneMap())

	orders := n.Normalize([]map[string]any{
		{"orderid": "A", "paymenttype": "  ", "payment": "prepaid"},
		{"orderid": "B", "payment": "cod"},
	})

	require.Len(t, orders, 2)
	assert.Equal(t, "prepaid", orders[0].PaymentType())
	assert.Equal(t, "cod", orders[1].PaymentType())
	assert.True(t, orders[1].IsCOD())
}

func TestNormalize_CityIsResolvedThroughZoneMap(t *testing.T) {
	n := services.NewOrderNormalizer(newTestZoneMap())

	orders := n.Normalize([]map[string]any{
		{"orderid": "A", "city": "  6 OCTOBER  "},
		{"orderid": "B", "city": " New Cairo "},
	})

	require.Len(t, orders, 2)
	assert.Equal(t, "6th of October", orders[0].City())
	assert.Equal(t, "New Cairo", orders[1].City())
}

func TestNormalize_WeightCoercion(t *testing.T) {
	n := services.NewOrderNormalizer(newTestZoneMap())

	orders := n.Normalize([]map[string]any{
		{"orderid": "A", "weight": 3.5},
		{"orderid": "B", "weight": 4},
		{"orderid": "C", "weight": " 2.25 "},
		{"orderid": "D", "weight": "heavy"},
		{"orderid": "E"},
	})

	require.Len(t, orders, 5)
	assert.InDelta(t, 3.5, orders[0].Weight(), 0)
	assert.InDelta(t, 4.0, orders[1].Weight(), 0)
	assert.InDelta(t, 2.25, orders[2].Weight(), 0)
	assert.InDelta(t, 0.0, orders[3].Weight(), 0)
	assert.InDelta(t, 0.0, orders[4].Weight(), 0)
}

func TestNormalize_NumericIdentifierSurvivesAsString(t *testing.T) {
	n := services.NewOrderNormalizer(newTestZoneMap())

	orders := n.Normalize([]map[string]any{
		{"orderid": float64(1042)},
	})

	require.Len(t, orders, 1)
	assert.Equal(t, "1042", orders[0].ID())
}

func TestNormalize_MissingFieldsDegradeToDefaults(t *testing.T) {
	n := services.NewOrderNormalizer(newTestZoneMap())

	orders := n.Normalize([]map[string]any{{}})

	require.Len(t, orders, 1)
	o := orders[0]
	assert.Equal(t, "", o.ID())
	assert.Equal(t, "", o.City())
	assert.Equal(t, "", o.PaymentType())
	assert.Equal(t, "", o.ProductType())
	assert.InDelta(t, 0.0, o.Weight(), 0)
	assert.False(t, o.HasDeadline())
	assert.Equal(t, "", o.Address())
}

func TestNormalize_PreservesInputOrder(t *testing.T) {
	n := services.NewOrderNormalizer(newTestZoneMap())

	orders := n.Normalize([]map[string]any{
		{"orderid": "C"},
		{"orderid": "A"},
		{"orderid": "B"},
	})

	require.Len(t, orders, 3)
	assert.Equal(t, "C", orders[0].ID())
	assert.Equal(t, "A", orders[1].ID())
	assert.Equal(t, "B", orders[2].ID())
}
