package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/pkgdiff/internal/domain/repositories"
	"github.com/rios0rios0/pkgdiff/internal/infrastructure/repositories/jsonreport"
	"github.com/rios0rios0/pkgdiff/internal/infrastructure/repositories/text"
)

// RendererRegistry manages all registered report renderers.
type RendererRegistry struct {
	renderers map[string]domainRepos.ReportRendererRepository
}

// NewRendererRegistry creates an empty renderer registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]domainRepos.ReportRendererRepository),
	}
}

// NewDefaultRendererRegistry creates a registry with every built-in output format.
func NewDefaultRendererRegistry() *RendererRegistry {
	reg := NewRendererRegistry()
	reg.Register(text.NewReportRenderer())
	reg.Register(jsonreport.NewReportRenderer())
	return reg
}

// Register adds a renderer under its name.
func (r *RendererRegistry) Register(renderer domainRepos.ReportRendererRepository) {
	r.renderers[renderer.Name()] = renderer
}

// Get returns the renderer for the given format.
func (r *RendererRegistry) Get(name string) (domainRepos.ReportRendererRepository, error) {
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %v)", name, r.Names())
	}
	return renderer, nil
}

// Names returns the registered format names, sorted.
func (r *RendererRegistry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
