package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/plan"
	"dispatch/internal/core/domain/model/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReconcileCommand_AcceptsEmptyInputs(t *testing.T) {
	cmd, err := commands.NewReconcileCommand(nil, nil, nil, nil)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}

func TestReconcileCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.ReconcileCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrReconcileCommandIsNotConstructed)
}

func TestReconcileCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	handler := commands.NewReconcileCommandHandler()

	_, err := handler.Handle(context.Background(), commands.ReconcileCommand{})

	assert.ErrorIs(t, err, commands.ErrReconcileCommandIsNotConstructed)
}

func TestReconcileCommandHandler_ClassifiesScans(t *testing.T) {
	handler := commands.NewReconcileCommandHandler()

	cmd, err := commands.NewReconcileCommand(
		[]plan.Assignment{{OrderID: "A", CourierID: "C1"}},
		[]order.Order{
			order.New("A", "Giza", "prepaid", "standard", 1, "2024-05-01 12:00", ""),
			order.New("B", "Giza", "prepaid", "standard", 1, "", ""),
		},
		[]scan.Record{
			{OrderID: "a", CourierID: "C2", DeliveredAt: "2024-05-01 13:00"},
			{OrderID: "ORD-999", CourierID: "Ghost", DeliveredAt: ""},
		},
		nil,
	)
	require.NoError(t, err)

	report, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-999"}, report.Unexpected)
	assert.Equal(t, []string{"A"}, report.Misassigned)
	assert.Equal(t, []string{"A"}, report.Late)
	assert.Empty(t, report.Duplicate)
	assert.Equal(t, []string{"B"}, report.NotDelivered)
}
