//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
)

func writeSettingsFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should load a complete configuration file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), ".pkgdiff.yaml", `
on_malformed: skip
format: json
highest: true
groups:
  - [Normal, Dev]
  - [peer]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MalformedPolicySkip, settings.OnMalformed)
		assert.Equal(t, entities.FormatJSON, settings.Format)
		assert.True(t, settings.Highest)
		assert.Equal(t, [][]entities.Category{
			{entities.CategoryNormal, entities.CategoryDev},
			{entities.CategoryPeer},
		}, settings.CategoryGroups())
	})

	t.Run("should apply defaults to an empty file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), "pkgdiff.yml", "")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MalformedPolicyFail, settings.OnMalformed)
		assert.Equal(t, entities.FormatText, settings.Format)
		assert.Nil(t, settings.CategoryGroups())
		assert.Equal(t, []string{
			"dependencies", "devDependencies", "peerDependencies", "optionalDependencies",
		}, settings.SectionTable().Sections())
	})

	t.Run("should replace the section table", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), ".pkgdiff.yaml", `
sections:
  deps: normal
  devDeps: dev
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		category, ok := settings.SectionTable().Category("devDeps")
		require.True(t, ok)
		assert.Equal(t, entities.CategoryDev, category)
		_, ok = settings.SectionTable().Category("dependencies")
		assert.False(t, ok)
	})

	t.Run("should load a TOML configuration file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), "pkgdiff.toml", `
on_malformed = "skip"
highest = true
groups = [["normal", "dev"], ["optional"]]

[sections]
dependencies = "normal"
devDependencies = "dev"
optionalDependencies = "optional"
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MalformedPolicySkip, settings.OnMalformed)
		assert.True(t, settings.Highest)
		assert.Equal(t, [][]entities.Category{
			{entities.CategoryNormal, entities.CategoryDev},
			{entities.CategoryOptional},
		}, settings.CategoryGroups())
		_, ok := settings.SectionTable().Category("peerDependencies")
		assert.False(t, ok)
	})

	t.Run("should fail on invalid TOML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), ".pkgdiff.toml", "highest = \n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should expand environment variables", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_PKGDIFF_POLICY", "skip")
		path := writeSettingsFile(t, t.TempDir(), ".pkgdiff.yaml", "on_malformed: ${TEST_PKGDIFF_POLICY}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MalformedPolicySkip, settings.OnMalformed)
	})

	t.Run("should fail when file does not exist", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), ".pkgdiff.yaml", "groups: [[normal\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail on an unknown malformed policy", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), ".pkgdiff.yaml", "on_malformed: ignore\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "on_malformed")
	})

	t.Run("should fail when two sections share a category", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), ".pkgdiff.yaml", `
sections:
  dependencies: normal
  bundledDependencies: normal
`)

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sections")
	})

	t.Run("should fail on an unknown category in a group", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), ".pkgdiff.yaml", "groups:\n  - [normal, bundled]\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "groups[0]")
	})

	t.Run("should fail on an empty group", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, t.TempDir(), ".pkgdiff.yaml", "groups:\n  - []\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one category")
	})
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should fail on malformed manifests and render text", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, entities.MalformedPolicyFail, settings.OnMalformed)
		assert.Equal(t, entities.FormatText, settings.Format)
		assert.False(t, settings.Highest)
		assert.NotNil(t, settings.SectionTable())
	})
}

//nolint:paralleltest // t.Chdir and t.Setenv are incompatible with t.Parallel
func TestFindConfigFile(t *testing.T) {
	t.Run("should find a config file in the working directory", func(t *testing.T) {
		// given
		dir := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		t.Chdir(dir)
		writeSettingsFile(t, dir, ".pkgdiff.yaml", "format: text\n")

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".pkgdiff.yaml", path)
	})

	t.Run("should find a config file under .config", func(t *testing.T) {
		// given
		dir := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		t.Chdir(dir)
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".config"), 0o700))
		writeSettingsFile(t, filepath.Join(dir, ".config"), "pkgdiff.yml", "format: text\n")

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(".config", "pkgdiff.yml"), path)
	})

	t.Run("should fail when no config file exists", func(t *testing.T) {
		// given
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		// when
		_, err := entities.FindConfigFile()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config file not found")
	})
}
