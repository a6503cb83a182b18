//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pkgdiff/internal/domain/repositories"
)

// StubManifestFinderRepository implements repositories.ManifestFinderRepository.
// Inputs without an expansion are returned unchanged.
type StubManifestFinderRepository struct {
	Expansions map[string][]string // input -> manifests found beneath it
	FindErr    error
	// spy: inputs received
	FindInputs [][]string
}

var _ repositories.ManifestFinderRepository = (*StubManifestFinderRepository)(nil)

func (s *StubManifestFinderRepository) Find(_ context.Context, inputs []string) ([]string, error) {
	s.FindInputs = append(s.FindInputs, inputs)
	if s.FindErr != nil {
		return nil, s.FindErr
	}

	paths := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if expanded, ok := s.Expansions[input]; ok {
			paths = append(paths, expanded...)
			continue
		}
		paths = append(paths, input)
	}
	return paths, nil
}
