package jsonmanifest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pkgdiff/internal/domain/entities"
	"github.com/rios0rios0/pkgdiff/internal/domain/repositories"
)

// ManifestRepository reads JSON manifests from the local file system,
// keeping object members in the order they appear in the file.
type ManifestRepository struct{}

var _ repositories.ManifestRepository = (*ManifestRepository)(nil)

// NewManifestRepository creates a new JSON manifest repository.
func NewManifestRepository() *ManifestRepository {
	return &ManifestRepository{}
}

// Read loads and decodes the manifest at path.
func (it *ManifestRepository) Read(ctx context.Context, path string) (*entities.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &entities.InputReadError{Path: path, Err: err}
	}
	logger.Debugf("Read %s from %s", humanize.IBytes(uint64(len(data))), path)

	root, err := Decode(data)
	if err != nil {
		return nil, &entities.MalformedJSONError{Path: path, Err: err}
	}
	return &entities.Manifest{Path: path, Root: root}, nil
}

// Decode parses data into an ordered object. The root must be a JSON object;
// duplicate keys and trailing content are rejected.
func Decode(data []byte) (entities.Object, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	if _, extraErr := dec.Token(); !errors.Is(extraErr, io.EOF) {
		return nil, errors.New("unexpected data after the root value")
	}

	root, ok := value.(entities.Object)
	if !ok {
		return nil, fmt.Errorf("root must be a JSON object, got %s", kindOf(value))
	}
	return root, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// string, json.Number, bool or nil
		return t, nil
	}
}

func decodeObject(dec *json.Decoder) (entities.Object, error) {
	obj := entities.Object{}
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = true

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, entities.Member{Key: key, Value: value})
	}

	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}

	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func kindOf(value any) string {
	switch value.(type) {
	case []any:
		return "an array"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", value)
	}
}
