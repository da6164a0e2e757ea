package scan_test

import (
	"testing"

	"dispatch/internal/core/domain/model/scan"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "ORD-999", scan.NormalizeID("  ord-999 "))
	assert.Equal(t, "ORD1", scan.NormalizeID("ord_1"))
	assert.Equal(t, "A1B2", scan.NormalizeID(" a1.b2! "))
	assert.Equal(t, "", scan.NormalizeID("   "))
	assert.Equal(t, "", scan.NormalizeID("***"))
	assert.Equal(t, "ABC-123", scan.NormalizeID("ABC-123"))
}
