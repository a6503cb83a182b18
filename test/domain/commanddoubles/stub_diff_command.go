//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pkgdiff/internal/domain/commands"
	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
)

// StubDiffCommand is a stub implementation of commands.Diff.
type StubDiffCommand struct {
	ExecuteCallCount int
	ExecuteResult    *commands.DiffResult
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.DiffOptions
}

var _ commands.Diff = (*StubDiffCommand)(nil)

func (s *StubDiffCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.DiffOptions,
) (*commands.DiffResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
