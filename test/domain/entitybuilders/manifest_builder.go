//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ManifestBuilder helps create decoded package.json roots with a fluent interface.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	name     string
	version  string
	sections []entities.Member
}

// NewManifestBuilder creates a new manifest builder with sensible defaults.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-package",
		version:     "1.0.0",
	}
}

// WithName sets the package name.
func (b *ManifestBuilder) WithName(name string) *ManifestBuilder {
	b.name = name
	return b
}

// WithVersion sets the package's own version.
func (b *ManifestBuilder) WithVersion(version string) *ManifestBuilder {
	b.version = version
	return b
}

// WithDependency declares pkg at version in section, creating the section
// on first use. Sections keep the order they were first used in.
func (b *ManifestBuilder) WithDependency(section, pkg string, version any) *ManifestBuilder {
	for i, m := range b.sections {
		if m.Key == section {
			obj, _ := m.Value.(entities.Object)
			b.sections[i].Value = append(obj, entities.Member{Key: pkg, Value: version})
			return b
		}
	}
	b.sections = append(b.sections, entities.Member{
		Key:   section,
		Value: entities.Object{{Key: pkg, Value: version}},
	})
	return b
}

// WithEmptySection declares section without any entry.
func (b *ManifestBuilder) WithEmptySection(section string) *ManifestBuilder {
	b.sections = append(b.sections, entities.Member{Key: section, Value: entities.Object{}})
	return b
}

// Build creates the manifest root (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildObject()
}

// BuildObject creates the manifest root with a concrete return type.
func (b *ManifestBuilder) BuildObject() entities.Object {
	root := entities.Object{
		{Key: "name", Value: b.name},
		{Key: "version", Value: b.version},
	}
	for _, m := range b.sections {
		root = append(root, entities.Member{Key: m.Key, Value: cloneObject(m.Value)})
	}
	return root
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.version = "1.0.0"
	b.sections = nil
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	sections := make([]entities.Member, 0, len(b.sections))
	for _, m := range b.sections {
		sections = append(sections, entities.Member{Key: m.Key, Value: cloneObject(m.Value)})
	}
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		sections:    sections,
	}
}

func cloneObject(value any) any {
	obj, ok := value.(entities.Object)
	if !ok {
		return value
	}
	out := make(entities.Object, len(obj))
	copy(out, obj)
	return out
}
