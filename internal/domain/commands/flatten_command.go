package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"github.com/rios0rios0/pkgdiff/internal/domain/repositories"
)

// Flatten is the interface for the single-file flatten command.
type Flatten interface {
	Execute(ctx context.Context, opts FlattenOptions) (*entities.FlattenedDocument, error)
}

// FlattenOptions holds runtime options for the flatten command.
type FlattenOptions struct {
	File   string
	Output io.Writer // defaults to os.Stdout
}

// FlattenCommand prints the flattened view of one manifest, one
// "path = value" line per leaf.
type FlattenCommand struct {
	manifestRepository repositories.ManifestRepository
}

// NewFlattenCommand creates a new FlattenCommand.
func NewFlattenCommand(manifestRepository repositories.ManifestRepository) *FlattenCommand {
	return &FlattenCommand{manifestRepository: manifestRepository}
}

// Execute reads opts.File and writes its flattened entries.
func (it *FlattenCommand) Execute(ctx context.Context, opts FlattenOptions) (*entities.FlattenedDocument, error) {
	if opts.File == "" {
		return nil, &entities.UsageError{Reason: "a manifest file is required (--file)"}
	}

	manifest, err := it.manifestRepository.Read(ctx, opts.File)
	if err != nil {
		return nil, err
	}
	doc := manifest.Flatten()
	logger.WithField("file", opts.File).Debugf("Flattened %d entries", doc.Len())

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	var b strings.Builder
	for _, entry := range doc.Entries() {
		fmt.Fprintf(&b, "%s = %s\n", entry.Path, formatScalar(entry.Value))
	}
	if _, writeErr := io.WriteString(output, b.String()); writeErr != nil {
		return nil, writeErr
	}
	return doc, nil
}

// formatScalar renders a leaf the way it appears in JSON.
func formatScalar(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(encoded)
}
