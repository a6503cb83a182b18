package entities

import "fmt"

const dependencyPathDepth = 2 // section + package name

// ClassifiedDependency is one (category, package, version) triple read from a
// dependency section of a manifest.
type ClassifiedDependency struct {
	Category Category
	Name     string
	Version  string
	Path     string
}

// Classify extracts dependency declarations from doc. Only sections whose
// category is listed in categories are considered; an empty list means all.
// Entries that sit under a dependency section but are not a plain
// "<section>.<name>" string leaf are returned as warnings and skipped; that
// includes sections holding a scalar or an array.
func Classify(
	doc *FlattenedDocument,
	table *SectionTable,
	categories []Category,
) ([]ClassifiedDependency, []MalformedDependencyEntry) {
	wanted := categorySet(categories)

	var (
		found    []ClassifiedDependency
		warnings []MalformedDependencyEntry
	)
	for _, entry := range doc.entries {
		if len(entry.Segments) == 0 || entry.Kinds[0] != SegmentKey {
			continue
		}
		category, ok := table.Category(entry.Segments[0])
		if !ok || (wanted != nil && !wanted[category]) {
			continue
		}

		switch {
		case len(entry.Segments) < dependencyPathDepth:
			warnings = append(warnings, MalformedDependencyEntry{
				Path:   entry.Path,
				Value:  entry.Value,
				Reason: fmt.Sprintf("dependency section is not an object (%s)", describeScalar(entry.Value)),
			})
			continue
		case entry.Kinds[1] == SegmentIndex:
			warnings = append(warnings, MalformedDependencyEntry{
				Path:   entry.Path,
				Value:  entry.Value,
				Reason: "dependency section is not an object (array)",
			})
			continue
		case len(entry.Segments) > dependencyPathDepth:
			warnings = append(warnings, MalformedDependencyEntry{
				Path:   entry.Path,
				Value:  entry.Value,
				Reason: "nested value under a dependency section",
			})
			continue
		}

		version, isString := entry.Value.(string)
		if !isString {
			warnings = append(warnings, MalformedDependencyEntry{
				Path:   entry.Path,
				Value:  entry.Value,
				Reason: fmt.Sprintf("version is not a string (%s)", describeScalar(entry.Value)),
			})
			continue
		}

		found = append(found, ClassifiedDependency{
			Category: category,
			Name:     entry.Segments[1],
			Version:  version,
			Path:     entry.Path,
		})
	}
	return found, warnings
}

func describeScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return fmt.Sprintf("boolean %t", v)
	default:
		return fmt.Sprintf("%T %v", v, v)
	}
}
