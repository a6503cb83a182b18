package fsfinder

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"github.com/rios0rios0/pkgdiff/internal/domain/repositories"
)

const (
	// DefaultManifestName is the file looked for inside directory inputs.
	DefaultManifestName = "package.json"

	vendorDir = "node_modules"
)

// ManifestFinderRepository walks directory inputs in parallel looking for
// manifests. Installed packages and hidden directories are not descended into.
type ManifestFinderRepository struct {
	manifestName string
}

var _ repositories.ManifestFinderRepository = (*ManifestFinderRepository)(nil)

// NewManifestFinderRepository creates a finder for package.json files.
func NewManifestFinderRepository() *ManifestFinderRepository {
	return &ManifestFinderRepository{manifestName: DefaultManifestName}
}

// Find expands every directory of inputs. Inputs that are not directories,
// including missing paths, are passed through so reading reports them.
func (it *ManifestFinderRepository) Find(ctx context.Context, inputs []string) ([]string, error) {
	paths := make([]string, 0, len(inputs))
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil || !info.IsDir() {
			paths = append(paths, input)
			continue
		}

		found, err := it.walk(ctx, filepath.Clean(input))
		if err != nil {
			return nil, &entities.InputReadError{Path: input, Err: err}
		}
		logger.WithField("dir", input).Debugf("Found %d manifest(s)", len(found))
		paths = append(paths, found...)
	}
	return paths, nil
}

func (it *ManifestFinderRepository) walk(ctx context.Context, root string) ([]string, error) {
	var (
		mu    sync.Mutex
		found []string
	)

	conf := fastwalk.Config{
		Follow: false,
	}
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if path != root && isSkippedDir(d.Name()) {
				return fastwalk.SkipDir
			}
			return nil
		}
		if d.Name() == it.manifestName && d.Type().IsRegular() {
			mu.Lock()
			found = append(found, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// the walk is concurrent
	sort.Strings(found)
	return found, nil
}

func isSkippedDir(name string) bool {
	return name == vendorDir || strings.HasPrefix(name, ".")
}
