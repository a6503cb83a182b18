package commands

import (
	"context"
	"errors"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"github.com/rios0rios0/pkgdiff/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pkgdiff/internal/infrastructure/repositories"
)

// Diff is the interface for the diff command.
type Diff interface {
	Execute(ctx context.Context, settings *entities.Settings, opts DiffOptions) (*DiffResult, error)
}

// DiffOptions holds runtime options for a single comparison. Zero values
// fall back to the settings.
type DiffOptions struct {
	Files         []string              // manifests or directories holding them
	Groups        [][]entities.Category // each group is reported separately
	Format        string
	SkipMalformed bool
	ShowHighest   bool
	Output        io.Writer // defaults to os.Stdout
}

// DiffResult is what a comparison produced, mostly for callers and tests.
type DiffResult struct {
	Reports  []*entities.DifferenceReport
	Warnings []entities.MalformedDependencyEntry
	Skipped  []string // manifests skipped because they were malformed
}

// HasDifferences reports whether any group found a version difference.
func (r *DiffResult) HasDifferences() bool {
	for _, report := range r.Reports {
		if report.HasDifferences() {
			return true
		}
	}
	return false
}

// DiffCommand reads every manifest in order, flattens it, and reports the
// packages declared at more than one version.
type DiffCommand struct {
	manifestRepository repositories.ManifestRepository
	manifestFinder     repositories.ManifestFinderRepository
	rendererRegistry   *infraRepos.RendererRegistry
}

// NewDiffCommand creates a new DiffCommand.
func NewDiffCommand(
	manifestRepository repositories.ManifestRepository,
	manifestFinder repositories.ManifestFinderRepository,
	rendererRegistry *infraRepos.RendererRegistry,
) *DiffCommand {
	return &DiffCommand{
		manifestRepository: manifestRepository,
		manifestFinder:     manifestFinder,
		rendererRegistry:   rendererRegistry,
	}
}

// Execute runs the comparison and writes the report.
func (it *DiffCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts DiffOptions,
) (*DiffResult, error) {
	format := opts.Format
	if format == "" {
		format = settings.Format
	}
	renderer, err := it.rendererRegistry.Get(format)
	if err != nil {
		return nil, &entities.UsageError{Reason: err.Error()}
	}

	groups := opts.Groups
	if len(groups) == 0 {
		groups = settings.CategoryGroups()
	}
	if len(groups) == 0 {
		groups = [][]entities.Category{nil}
	}

	skipMalformed := opts.SkipMalformed || settings.OnMalformed == entities.MalformedPolicySkip
	result := &DiffResult{}

	files, err := it.manifestFinder.Find(ctx, opts.Files)
	if err != nil {
		return nil, err
	}
	docs, skipped, err := it.loadDocuments(ctx, files, skipMalformed)
	if err != nil {
		return nil, err
	}
	result.Skipped = skipped

	table := settings.SectionTable()
	for _, group := range groups {
		report, warnings := entities.Compare(docs, table, group)
		for _, w := range warnings {
			logger.WithFields(logger.Fields{
				"file": w.SourceFile,
				"path": w.Path,
			}).Warnf("Skipping malformed dependency entry: %s", w.Reason)
		}
		result.Reports = append(result.Reports, report)
		result.Warnings = append(result.Warnings, warnings...)
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	renderOpts := repositories.RenderOptions{
		ShowHighest:     opts.ShowHighest || settings.Highest,
		ShowGroupTitles: len(groups) > 1,
	}
	if renderErr := renderer.Render(output, result.Reports, renderOpts); renderErr != nil {
		return nil, renderErr
	}

	logger.Debugf(
		"Compared %d manifest(s) in %d group(s), %d skipped, %d warning(s)",
		len(docs), len(groups), len(skipped), len(result.Warnings),
	)
	return result, nil
}

// loadDocuments reads and flattens files in input order.
func (it *DiffCommand) loadDocuments(
	ctx context.Context,
	files []string,
	skipMalformed bool,
) ([]entities.SourceDocument, []string, error) {
	docs := make([]entities.SourceDocument, 0, len(files))
	var skipped []string

	for _, file := range files {
		fileLog := logger.WithField("file", file)
		fileLog.Debug("Processing manifest")

		manifest, err := it.manifestRepository.Read(ctx, file)
		if err != nil {
			var malformed *entities.MalformedJSONError
			if skipMalformed && errors.As(err, &malformed) {
				fileLog.Warnf("Skipping malformed manifest: %v", malformed.Err)
				skipped = append(skipped, file)
				continue
			}
			return nil, nil, err
		}

		doc := manifest.Flatten()
		docs = append(docs, entities.SourceDocument{SourceFile: file, Document: doc})
		fileLog.Infof("Read manifest with %d flattened entries", doc.Len())
	}
	return docs, skipped, nil
}
