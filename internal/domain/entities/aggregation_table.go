package entities

// DependencyRecord identifies where a version was observed.
type DependencyRecord struct {
	Category   Category
	SourceFile string
}

// VersionGroup holds, for one package, every version seen and the records
// that reported it. Versions keep their first-seen order.
type VersionGroup struct {
	order   []string
	records map[string][]DependencyRecord
}

func newVersionGroup() *VersionGroup {
	return &VersionGroup{records: make(map[string][]DependencyRecord)}
}

func (g *VersionGroup) add(version string, record DependencyRecord) {
	if _, seen := g.records[version]; !seen {
		g.order = append(g.order, version)
	}
	g.records[version] = append(g.records[version], record)
}

// Versions returns the distinct versions in first-seen order.
func (g *VersionGroup) Versions() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Records returns the records reporting version, in observation order.
func (g *VersionGroup) Records(version string) []DependencyRecord {
	records := g.records[version]
	out := make([]DependencyRecord, len(records))
	copy(out, records)
	return out
}

// AggregationTable collects version observations per package across every
// processed manifest. It is owned by a single run and is not safe for
// concurrent use.
type AggregationTable struct {
	order  []string
	groups map[string]*VersionGroup
}

// NewAggregationTable creates an empty table.
func NewAggregationTable() *AggregationTable {
	return &AggregationTable{groups: make(map[string]*VersionGroup)}
}

// AddObservation records that sourceFile declares pkg at version in the given
// category. Repeated calls always append a new record.
func (t *AggregationTable) AddObservation(pkg, version string, category Category, sourceFile string) {
	group, ok := t.groups[pkg]
	if !ok {
		group = newVersionGroup()
		t.groups[pkg] = group
		t.order = append(t.order, pkg)
	}
	group.add(version, DependencyRecord{Category: category, SourceFile: sourceFile})
}

// AddAll records every classified dependency of sourceFile.
func (t *AggregationTable) AddAll(sourceFile string, deps []ClassifiedDependency) {
	for _, dep := range deps {
		t.AddObservation(dep.Name, dep.Version, dep.Category, sourceFile)
	}
}

// Versions returns the versions seen for pkg in first-seen order, or nil when
// the package was never observed.
func (t *AggregationTable) Versions(pkg string) []string {
	group, ok := t.groups[pkg]
	if !ok {
		return nil
	}
	return group.Versions()
}

// Records returns the records for pkg at version.
func (t *AggregationTable) Records(pkg, version string) []DependencyRecord {
	group, ok := t.groups[pkg]
	if !ok {
		return nil
	}
	return group.Records(version)
}

// Group returns the version group of pkg.
func (t *AggregationTable) Group(pkg string) (*VersionGroup, bool) {
	group, ok := t.groups[pkg]
	return group, ok
}

// Packages returns the package names in first-seen order.
func (t *AggregationTable) Packages() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of distinct packages.
func (t *AggregationTable) Len() int {
	return len(t.order)
}
