package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrNormalizeOrdersCommandIsNotConstructed = errors.New(
		"NormalizeOrdersCommand must be created via NewNormalizeOrdersCommand constructor",
	)
	// ErrRawOrdersAreRequired is returned when the raw order slice is nil.
	// An empty batch is valid; a nil one indicates a broken source.
	ErrRawOrdersAreRequired = errs.NewValueIsRequiredError("orders")
)

// NormalizeOrdersCommand requests normalization and deduplication of a batch
// of raw order records against a zone alias map.
type NormalizeOrdersCommand struct { //nolint:recvcheck //using for validation
	rawOrders []map[string]any
	zones     zone.Map

	guard guard.ConstructorGuard
}

// NewNormalizeOrdersCommand creates the command. The raw slice may be empty
// but not nil.
func NewNormalizeOrdersCommand(rawOrders []map[string]any, zones zone.Map) (NormalizeOrdersCommand, error) {
	cmd := NormalizeOrdersCommand{
		zones: zones,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRawOrders(rawOrders); err != nil {
		return NormalizeOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NormalizeOrdersCommand) Validate() error {
	return c.guard.Validate(ErrNormalizeOrdersCommandIsNotConstructed)
}

// RawOrders returns the raw order records.
func (c NormalizeOrdersCommand) RawOrders() []map[string]any {
	return c.rawOrders
}

// Zones returns the zone alias map.
func (c NormalizeOrdersCommand) Zones() zone.Map {
	return c.zones
}

func (c *NormalizeOrdersCommand) setRawOrders(rawOrders []map[string]any) error {
	if rawOrders == nil {
		return ErrRawOrdersAreRequired
	}

	c.rawOrders = rawOrders
	return nil
}
