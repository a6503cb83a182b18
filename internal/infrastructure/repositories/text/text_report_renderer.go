package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"github.com/rios0rios0/pkgdiff/internal/domain/repositories"
)

const (
	rendererName = "text"

	// NoDifferencesMessage is printed when no package has more than one version.
	NoDifferencesMessage = "no version differences found"
	packageHeading       = "================ package "
)

// ReportRenderer writes the human readable report.
type ReportRenderer struct{}

var _ repositories.ReportRendererRepository = (*ReportRenderer)(nil)

// NewReportRenderer creates a new text renderer.
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{}
}

func (it *ReportRenderer) Name() string { return rendererName }

// Render prints each report. A report without differences is a single
// "no version differences found" line.
func (it *ReportRenderer) Render(
	w io.Writer,
	reports []*entities.DifferenceReport,
	opts repositories.RenderOptions,
) error {
	var b strings.Builder
	for i, report := range reports {
		if opts.ShowGroupTitles {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "# categories: %s\n", joinCategories(report.Categories))
		}
		writeReport(&b, report, opts)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeReport(b *strings.Builder, report *entities.DifferenceReport, opts repositories.RenderOptions) {
	if !report.HasDifferences() {
		b.WriteString(NoDifferencesMessage + "\n")
		return
	}

	fmt.Fprintf(b, "version differences found in %d package(s)\n", len(report.Differences))
	for _, diff := range report.Differences {
		b.WriteString("\n")
		b.WriteString(packageHeading + diff.Name + "\n")
		for _, sighting := range diff.Versions {
			fmt.Fprintf(b, "  version %s:\n", sighting.Version)
			for _, source := range sighting.Sources {
				fmt.Fprintf(b, "    %s%s\n", source.SourceFile, CategoryAnnotation(source.Category))
			}
		}
		if opts.ShowHighest && diff.Highest != "" {
			fmt.Fprintf(b, "  highest pinned version: %s\n", diff.Highest)
		}
	}
}

// CategoryAnnotation returns " (Dev)" style suffixes; normal dependencies
// carry none.
func CategoryAnnotation(category entities.Category) string {
	if category == entities.CategoryNormal {
		return ""
	}
	return " (" + category.String() + ")"
}

func joinCategories(categories []entities.Category) string {
	if len(categories) == 0 {
		categories = entities.AllCategories()
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
