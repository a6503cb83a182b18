package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// VersionSighting is one version of a package and every record reporting it.
type VersionSighting struct {
	Version string
	Sources []DependencyRecord
}

// PackageDifference lists the conflicting versions of one package.
type PackageDifference struct {
	Name     string
	Versions []VersionSighting
	// Highest is the greatest exact semantic version among Versions; ranges
	// and other specifiers are ignored. Empty when none parses.
	Highest string
}

// DifferenceReport is the outcome of comparing one category group.
type DifferenceReport struct {
	Categories  []Category
	Differences []PackageDifference
}

// HasDifferences reports whether any package was declared at more than one version.
func (r *DifferenceReport) HasDifferences() bool {
	return len(r.Differences) > 0
}

// NewDifferenceReport emits one entry per package of table that has more than
// one distinct version, keeping the table's first-seen order.
func NewDifferenceReport(table *AggregationTable, categories []Category) *DifferenceReport {
	report := &DifferenceReport{Categories: categories}
	for _, pkg := range table.order {
		group := table.groups[pkg]
		if len(group.order) <= 1 {
			continue
		}

		diff := PackageDifference{Name: pkg}
		for _, version := range group.order {
			diff.Versions = append(diff.Versions, VersionSighting{
				Version: version,
				Sources: group.Records(version),
			})
		}
		diff.Highest = highestExactVersion(group.order)
		report.Differences = append(report.Differences, diff)
	}
	return report
}

// SourceDocument is a flattened manifest together with the file it came from.
type SourceDocument struct {
	SourceFile string
	Document   *FlattenedDocument
}

// Compare classifies and aggregates docs in order and reports the packages
// whose versions differ. Warnings carry the file they were found in.
func Compare(
	docs []SourceDocument,
	table *SectionTable,
	categories []Category,
) (*DifferenceReport, []MalformedDependencyEntry) {
	aggregation := NewAggregationTable()

	var warnings []MalformedDependencyEntry
	for _, doc := range docs {
		deps, malformed := Classify(doc.Document, table, categories)
		for _, m := range malformed {
			m.SourceFile = doc.SourceFile
			warnings = append(warnings, m)
		}
		aggregation.AddAll(doc.SourceFile, deps)
	}
	return NewDifferenceReport(aggregation, categories), warnings
}

func highestExactVersion(versions []string) string {
	highest := ""
	highestCanonical := ""
	for _, v := range versions {
		candidate := v
		if !strings.HasPrefix(candidate, "v") {
			candidate = "v" + candidate
		}
		if !isExactVersion(candidate) {
			continue
		}
		if highest == "" || semver.Compare(candidate, highestCanonical) > 0 {
			highest = v
			highestCanonical = candidate
		}
	}
	return highest
}

// isExactVersion accepts only full MAJOR.MINOR.PATCH versions; semver also
// parses the "v1" and "v1.2" shorthands, which npm treats as ranges.
func isExactVersion(candidate string) bool {
	if !semver.IsValid(candidate) {
		return false
	}
	base := candidate
	if i := strings.IndexByte(base, '+'); i >= 0 {
		base = base[:i]
	}
	return semver.Canonical(base) == base
}
