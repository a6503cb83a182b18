//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"github.com/rios0rios0/pkgdiff/internal/domain/repositories"
)

// SpyReportRendererRepository implements repositories.ReportRendererRepository
// as a configurable spy.
type SpyReportRendererRepository struct {
	// --- identity ---
	RendererName string

	// --- Render ---
	RenderErr error
	// spy: inputs received
	RenderedReports [][]*entities.DifferenceReport
	RenderedOpts    []repositories.RenderOptions
}

var _ repositories.ReportRendererRepository = (*SpyReportRendererRepository)(nil)

func (r *SpyReportRendererRepository) Name() string { return r.RendererName }

func (r *SpyReportRendererRepository) Render(
	_ io.Writer,
	reports []*entities.DifferenceReport,
	opts repositories.RenderOptions,
) error {
	r.RenderedReports = append(r.RenderedReports, reports)
	r.RenderedOpts = append(r.RenderedOpts, opts)
	return r.RenderErr
}
