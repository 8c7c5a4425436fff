//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/profilereport/internal/domain/commands"
	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

// StubGenerateCommand is a stub implementation of commands.Generate.
type StubGenerateCommand struct {
	ExecuteCallCount int
	Result           entities.ReportResult
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.GenerateOptions
}

var _ commands.Generate = (*StubGenerateCommand)(nil)

func (s *StubGenerateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.GenerateOptions,
) (entities.ReportResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
