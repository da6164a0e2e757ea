package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestIsCOD_MatchesCaseInsensitively(t *testing.T) {
	assert.True(t, order.New("A", "", "cod", "", 0, "", "").IsCOD())
	assert.True(t, order.New("A", "", "COD", "", 0, "", "").IsCOD())
	assert.True(t, order.New("A", "", "CoD", "", 0, "", "").IsCOD())
	assert.False(t, order.New("A", "", "prepaid", "", 0, "", "").IsCOD())
	assert.False(t, order.New("A", "", "", "", 0, "", "").IsCOD())
}

func TestHasDeadline(t *testing.T) {
	assert.True(t, order.New("A", "", "", "", 0, "2024-05-01 12:00", "").HasDeadline())
	assert.False(t, order.New("A", "", "", "", 0, "", "").HasDeadline())
}

func TestNew_StoresFieldsVerbatim(t *testing.T) {
	o := order.New("A", "Giza", "COD", "Fragile", 2.5, "2024-05-01 12:00", "1 Nile St")

	assert.Equal(t, "A", o.ID())
	assert.Equal(t, "Giza", o.City())
	assert.Equal(t, "COD", o.PaymentType())
	assert.Equal(t, "Fragile", o.ProductType())
	assert.InDelta(t, 2.5, o.Weight(), 0)
	assert.Equal(t, "2024-05-01 12:00", o.Deadline())
	assert.Equal(t, "1 Nile St", o.Address())
}
