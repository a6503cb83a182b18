package jsonreport

import (
	"encoding/json"
	"io"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"github.com/rios0rios0/pkgdiff/internal/domain/repositories"
)

const rendererName = "json"

type groupDocument struct {
	Categories    []string             `json:"categories"`
	NoDifferences bool                 `json:"no_differences"`
	Differences   []differenceDocument `json:"differences"`
}

type differenceDocument struct {
	Package  string            `json:"package"`
	Highest  string            `json:"highest,omitempty"`
	Versions []versionDocument `json:"versions"`
}

type versionDocument struct {
	Version string           `json:"version"`
	Sources []sourceDocument `json:"sources"`
}

type sourceDocument struct {
	File     string `json:"file"`
	Category string `json:"category"`
}

// ReportRenderer writes reports as indented JSON for other tools.
type ReportRenderer struct{}

var _ repositories.ReportRendererRepository = (*ReportRenderer)(nil)

// NewReportRenderer creates a new JSON renderer.
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{}
}

func (it *ReportRenderer) Name() string { return rendererName }

// Render writes one JSON array element per category group.
func (it *ReportRenderer) Render(
	w io.Writer,
	reports []*entities.DifferenceReport,
	opts repositories.RenderOptions,
) error {
	groups := make([]groupDocument, 0, len(reports))
	for _, report := range reports {
		groups = append(groups, toGroupDocument(report, opts))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}

func toGroupDocument(report *entities.DifferenceReport, opts repositories.RenderOptions) groupDocument {
	categories := report.Categories
	if len(categories) == 0 {
		categories = entities.AllCategories()
	}

	doc := groupDocument{
		Categories:    make([]string, 0, len(categories)),
		NoDifferences: !report.HasDifferences(),
		Differences:   make([]differenceDocument, 0, len(report.Differences)),
	}
	for _, c := range categories {
		doc.Categories = append(doc.Categories, c.String())
	}

	for _, diff := range report.Differences {
		d := differenceDocument{Package: diff.Name}
		if opts.ShowHighest {
			d.Highest = diff.Highest
		}
		for _, sighting := range diff.Versions {
			v := versionDocument{Version: sighting.Version}
			for _, source := range sighting.Sources {
				v.Sources = append(v.Sources, sourceDocument{
					File:     source.SourceFile,
					Category: source.Category.String(),
				})
			}
			d.Versions = append(d.Versions, v)
		}
		doc.Differences = append(doc.Differences, d)
	}
	return doc
}
