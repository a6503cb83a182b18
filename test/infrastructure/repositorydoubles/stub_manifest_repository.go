//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"errors"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"github.com/rios0rios0/pkgdiff/internal/domain/repositories"
)

// SpyManifestRepository implements repositories.ManifestRepository from
// in-memory manifests keyed by path.
type SpyManifestRepository struct {
	// --- Read ---
	Manifests map[string]entities.Object // path -> decoded root
	ReadErrs  map[string]error           // path -> error returned instead
	// spy: paths requested, in order
	ReadPaths []string
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (r *SpyManifestRepository) Read(_ context.Context, path string) (*entities.Manifest, error) {
	r.ReadPaths = append(r.ReadPaths, path)
	if err, ok := r.ReadErrs[path]; ok {
		return nil, err
	}
	root, ok := r.Manifests[path]
	if !ok {
		return nil, &entities.InputReadError{Path: path, Err: errors.New("file does not exist")}
	}
	return &entities.Manifest{Path: path, Root: root}, nil
}
