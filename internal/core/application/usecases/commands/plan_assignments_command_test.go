package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCourier(t *testing.T, id string, zones []string, acceptsCOD bool, capacity float64) *courier.Courier {
	t.Helper()
	c, err := courier.New(id, zones, acceptsCOD, capacity, nil, nil)
	require.NoError(t, err)
	return c
}

func TestNewPlanAssignmentsCommand_RejectsUnconstructedCourier(t *testing.T) {
	_, err := commands.NewPlanAssignmentsCommand(nil, []*courier.Courier{{}})

	assert.Error(t, err)
}

func TestNewPlanAssignmentsCommand_AcceptsEmptySlices(t *testing.T) {
	cmd, err := commands.NewPlanAssignmentsCommand(nil, nil)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}

func TestPlanAssignmentsCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.PlanAssignmentsCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrPlanAssignmentsCommandIsNotConstructed)
}

func TestPlanAssignmentsCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	handler := commands.NewPlanAssignmentsCommandHandler()

	_, err := handler.Handle(context.Background(), commands.PlanAssignmentsCommand{})

	assert.ErrorIs(t, err, commands.ErrPlanAssignmentsCommandIsNotConstructed)
}

func TestPlanAssignmentsCommandHandler_ProducesPlanWithReasons(t *testing.T) {
	handler := commands.NewPlanAssignmentsCommandHandler()

	cmd, err := commands.NewPlanAssignmentsCommand(
		[]order.Order{
			order.New("A", "Giza", "prepaid", "standard", 2, "", ""),
			order.New("B", "Aswan", "prepaid", "standard", 1, "", ""),
		},
		[]*courier.Courier{mustCourier(t, "C1", []string{"Giza"}, true, 10)},
	)
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "C1", result.Assignments[0].CourierID)
	assert.Equal(t, []string{"B"}, result.Unassigned)
	assert.Equal(t, services.ReasonZoneNotCovered, result.UnassignedReasons["B"])
}
