package repositories

import (
	"io"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
)

// RenderOptions tweaks how a report is rendered.
type RenderOptions struct {
	ShowHighest bool
	// ShowGroupTitles prints the categories of each group before its report.
	ShowGroupTitles bool
}

// ReportRendererRepository writes difference reports in one output format.
type ReportRendererRepository interface {
	// Name returns the format identifier (e.g. "text", "json").
	Name() string

	// Render writes reports, one per category group, to w.
	Render(w io.Writer, reports []*entities.DifferenceReport, opts RenderOptions) error
}
