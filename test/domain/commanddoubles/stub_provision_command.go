//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/classrepos/internal/domain/commands"
	"github.com/rios0rios0/classrepos/internal/domain/entities"
)

// StubProvisionCommand is a stub implementation of commands.Provision.
type StubProvisionCommand struct {
	ExecuteCallCount int
	Report           *entities.Report
	ExecuteErr       error
	LastInput        commands.ProvisionInput
	LastOpts         commands.ProvisionOptions
}

var _ commands.Provision = (*StubProvisionCommand)(nil)

func (s *StubProvisionCommand) Execute(
	_ context.Context,
	input commands.ProvisionInput,
	opts commands.ProvisionOptions,
) (*entities.Report, error) {
	s.ExecuteCallCount++
	s.LastInput = input
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
