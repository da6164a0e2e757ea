package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKeys_LowercasesTopLevelKeys(t *testing.T) {
	in := map[string]any{"OrderId": "A1", "City": "Giza"}

	out, ok := kernel.NormalizeKeys(in).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"orderid": "A1", "city": "Giza"}, out)
}

func TestNormalizeKeys_RecursesIntoNestedStructures(t *testing.T) {
	in := map[string]any{
		"Outer": map[string]any{"Inner": 1},
		"Items": []any{
			map[string]any{"Key": "v"},
			"scalar",
		},
	}

	out, ok := kernel.NormalizeKeys(in).(map[string]any)
	require.True(t, ok)

	outer, ok := out["outer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, outer["inner"])

	items, ok := out["items"].([]any)
	require.True(t, ok)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "v", first["key"])
	assert.Equal(t, "scalar", items[1])
}

func TestNormalizeKeys_IsIdempotent(t *testing.T) {
	in := map[string]any{"OrderId": "A1", "Nested": map[string]any{"K": []any{map[string]any{"X": 1}}}}

	once := kernel.NormalizeKeys(in)
	twice := kernel.NormalizeKeys(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeKeys_DoesNotMutateInput(t *testing.T) {
	in := map[string]any{"OrderId": "A1"}

	_ = kernel.NormalizeKeys(in)

	_, stillThere := in["OrderId"]
	assert.True(t, stillThere)
}

func TestNormalizeKeys_ScalarsPassThrough(t *testing.T) {
	assert.Equal(t, 42, kernel.NormalizeKeys(42))
	assert.Equal(t, "Text", kernel.NormalizeKeys("Text"))
	assert.Nil(t, kernel.NormalizeKeys(nil))
}

func TestNormalizeRecordKeys_ReturnsRecord(t *testing.T) {
	out := kernel.NormalizeRecordKeys(map[string]any{"Weight": 5})
	assert.Equal(t, map[string]any{"weight": 5}, out)
}
