package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Category classifies a dependency by the manifest section that declares it.
type Category int

const (
	CategoryNormal Category = iota
	CategoryDev
	CategoryPeer
	CategoryOptional
)

//nolint:gochecknoglobals // fixed display names
var categoryNames = map[Category]string{
	CategoryNormal:   "Normal",
	CategoryDev:      "Dev",
	CategoryPeer:     "Peer",
	CategoryOptional: "Optional",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// AllCategories returns every known category in declaration order.
func AllCategories() []Category {
	return []Category{CategoryNormal, CategoryDev, CategoryPeer, CategoryOptional}
}

// SectionTable is an immutable bijection between manifest section names
// (e.g. "devDependencies") and categories.
type SectionTable struct {
	byName     map[string]Category
	byCategory map[Category]string
}

// NewSectionTable builds a table from sections, failing when a section name is
// empty or when two sections map to the same category.
func NewSectionTable(sections map[string]Category) (*SectionTable, error) {
	if len(sections) == 0 {
		return nil, errors.New("at least one dependency section must be configured")
	}

	table := &SectionTable{
		byName:     make(map[string]Category, len(sections)),
		byCategory: make(map[Category]string, len(sections)),
	}
	for name, category := range sections {
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("dependency section name must not be empty")
		}
		if _, known := categoryNames[category]; !known {
			return nil, fmt.Errorf("section %q: unknown category %s", name, category)
		}
		if other, taken := table.byCategory[category]; taken {
			return nil, fmt.Errorf(
				"sections %q and %q both map to category %s", other, name, category,
			)
		}
		table.byName[name] = category
		table.byCategory[category] = name
	}
	return table, nil
}

// DefaultSectionTable returns the npm section names.
func DefaultSectionTable() *SectionTable {
	table, err := NewSectionTable(DefaultSections())
	if err != nil {
		panic(err) // the defaults are a valid bijection
	}
	return table
}

// DefaultSections returns the npm section to category mapping.
func DefaultSections() map[string]Category {
	return map[string]Category{
		"dependencies":         CategoryNormal,
		"devDependencies":      CategoryDev,
		"peerDependencies":     CategoryPeer,
		"optionalDependencies": CategoryOptional,
	}
}

// Category returns the category declared by the section name.
func (t *SectionTable) Category(section string) (Category, bool) {
	c, ok := t.byName[section]
	return c, ok
}

// Section returns the canonical section name of category.
func (t *SectionTable) Section(category Category) (string, bool) {
	s, ok := t.byCategory[category]
	return s, ok
}

// Sections returns the section names ordered by category.
func (t *SectionTable) Sections() []string {
	categories := make([]Category, 0, len(t.byCategory))
	for c := range t.byCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, t.byCategory[c])
	}
	return names
}

// ParseCategory resolves a display name ("Dev") or a default section name
// ("devDependencies"), ignoring case.
func ParseCategory(name string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	for c, display := range categoryNames {
		if strings.EqualFold(display, trimmed) {
			return c, nil
		}
	}
	for section, c := range DefaultSections() {
		if strings.EqualFold(section, trimmed) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown dependency category %q", name)
}

// ParseCategoryList parses a comma-separated list such as "normal,dev".
func ParseCategoryList(list string) ([]Category, error) {
	var categories []Category
	seen := make(map[Category]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseCategory(part)
		if err != nil {
			return nil, err
		}
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("empty category list %q", list)
	}
	return categories, nil
}

// categorySet returns nil for "every category".
func categorySet(categories []Category) map[Category]bool {
	if len(categories) == 0 {
		return nil
	}
	set := make(map[Category]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}
	return set
}
