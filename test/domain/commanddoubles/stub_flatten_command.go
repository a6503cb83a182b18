//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pkgdiff/internal/domain/commands"
	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
)

// StubFlattenCommand is a stub implementation of commands.Flatten.
type StubFlattenCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.FlattenOptions
}

var _ commands.Flatten = (*StubFlattenCommand)(nil)

func (s *StubFlattenCommand) Execute(
	_ context.Context,
	opts commands.FlattenOptions,
) (*entities.FlattenedDocument, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return entities.Flatten(entities.Object{}), nil
}
