//go:build unit

package fsfinder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pkgdiff/internal/infrastructure/repositories/fsfinder"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
}

func TestManifestFinderRepository(t *testing.T) {
	t.Parallel()

	t.Run("should find manifests beneath a directory in lexical order", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		touch(t, filepath.Join(root, "package.json"))
		touch(t, filepath.Join(root, "packages", "web", "package.json"))
		touch(t, filepath.Join(root, "packages", "api", "package.json"))
		touch(t, filepath.Join(root, "packages", "api", "tsconfig.json"))
		finder := fsfinder.NewManifestFinderRepository()

		// when
		paths, err := finder.Find(context.Background(), []string{root})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "package.json"),
			filepath.Join(root, "packages", "api", "package.json"),
			filepath.Join(root, "packages", "web", "package.json"),
		}, paths)
	})

	t.Run("should not descend into installed packages or hidden directories", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		touch(t, filepath.Join(root, "app", "package.json"))
		touch(t, filepath.Join(root, "app", "node_modules", "lodash", "package.json"))
		touch(t, filepath.Join(root, ".git", "package.json"))
		finder := fsfinder.NewManifestFinderRepository()

		// when
		paths, err := finder.Find(context.Background(), []string{root})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "app", "package.json")}, paths)
	})

	t.Run("should pass files and missing paths through in order", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		file := filepath.Join(root, "custom.json")
		touch(t, file)
		missing := filepath.Join(root, "missing.json")
		finder := fsfinder.NewManifestFinderRepository()

		// when
		paths, err := finder.Find(context.Background(), []string{missing, file})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{missing, file}, paths)
	})

	t.Run("should return nothing for a directory without manifests", func(t *testing.T) {
		t.Parallel()

		// given
		finder := fsfinder.NewManifestFinderRepository()

		// when
		paths, err := finder.Find(context.Background(), []string{t.TempDir()})

		// then
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		touch(t, filepath.Join(root, "package.json"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		finder := fsfinder.NewManifestFinderRepository()

		// when
		_, err := finder.Find(ctx, []string{root})

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
