package repositories

import "context"

// ManifestFinderRepository expands command line inputs into manifest paths.
type ManifestFinderRepository interface {
	// Find keeps file inputs as they are and replaces every directory with the
	// manifests found beneath it, in lexical order.
	Find(ctx context.Context, inputs []string) ([]string, error)
}
