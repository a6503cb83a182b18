package repositories

import (
	domainRepos "github.com/rios0rios0/pkgdiff/internal/domain/repositories"
	"github.com/rios0rios0/pkgdiff/internal/infrastructure/repositories/fsfinder"
	"github.com/rios0rios0/pkgdiff/internal/infrastructure/repositories/jsonmanifest"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.ManifestRepository {
		return jsonmanifest.NewManifestRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.ManifestFinderRepository {
		return fsfinder.NewManifestFinderRepository()
	}); err != nil {
		return err
	}

	// Register renderer registry with all output formats
	if err := container.Provide(NewDefaultRendererRegistry); err != nil {
		return err
	}

	return nil
}
