package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizeOrdersCommand_AcceptsEmptyBatch(t *testing.T) {
	cmd, err := commands.NewNormalizeOrdersCommand([]map[string]any{}, zone.NewMap(nil))

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}

func TestNewNormalizeOrdersCommand_RejectsNilBatch(t *testing.T) {
	_, err := commands.NewNormalizeOrdersCommand(nil, zone.NewMap(nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNormalizeOrdersCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.NormalizeOrdersCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrNormalizeOrdersCommandIsNotConstructed)
}

func TestNormalizeOrdersCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	handler := commands.NewNormalizeOrdersCommandHandler()

	_, err := handler.Handle(context.Background(), commands.NormalizeOrdersCommand{})

	assert.ErrorIs(t, err, commands.ErrNormalizeOrdersCommandIsNotConstructed)
}

func TestNormalizeOrdersCommandHandler_NormalizesAndDeduplicates(t *testing.T) {
	handler := commands.NewNormalizeOrdersCommandHandler()
	zones := zone.NewMap([]zone.Alias{{Raw: "6 october", Canonical: "6th of October"}})

	cmd, err := commands.NewNormalizeOrdersCommand([]map[string]any{
		{"OrderId": "A", "City": "6 OCTOBER", "PaymentType": "COD", "Weight": "2.5", "Address": "1 Nile St"},
		{"order_id": "B", "city": "Giza", "payment": "prepaid"},
		{"OrderId": "A", "City": "6 october", "Address": "9 Other St"},
	}, zones)
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	require.Len(t, result.Orders, 2)
	assert.Equal(t, "A", result.Orders[0].ID())
	assert.Equal(t, "6th of October", result.Orders[0].City())
	assert.InDelta(t, 2.5, result.Orders[0].Weight(), 0)
	assert.Equal(t, "B", result.Orders[1].ID())
	assert.Equal(t, "prepaid", result.Orders[1].PaymentType())
	assert.Equal(t, []string{"Conflicting address for order A"}, result.Warnings)
}
