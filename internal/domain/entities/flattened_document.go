package entities

import (
	"sort"
	"strconv"
	"strings"
)

const (
	pathSeparator = "."
	pathEscape    = `\`
)

// Member is a single key/value pair of a decoded JSON object.
type Member struct {
	Key   string
	Value any
}

// Object is a decoded JSON object that keeps its members in declaration order.
type Object []Member

// Get returns the value stored under key and whether it was present.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// SegmentKind tells whether a path segment is an object key or an array index.
type SegmentKind int

const (
	SegmentKey SegmentKind = iota
	SegmentIndex
)

// FlatEntry is one leaf of a flattened JSON document.
type FlatEntry struct {
	Path     string        // dotted path, separators inside keys are escaped
	Segments []string      // raw, unescaped path components
	Kinds    []SegmentKind // one per segment
	Value    any           // string, json.Number, float64, bool or nil
}

// FlattenedDocument is the ordered, flat view of a JSON document: every leaf
// location mapped to its scalar value. Paths are unique inside one document.
type FlattenedDocument struct {
	entries []FlatEntry
	index   map[string]int
}

// Flatten walks value depth-first and returns its leaves in traversal order:
// object members in declaration order, array elements by index.
func Flatten(value any) *FlattenedDocument {
	doc := &FlattenedDocument{index: make(map[string]int)}
	doc.walk(nil, nil, value)
	return doc
}

func (d *FlattenedDocument) walk(segments []string, kinds []SegmentKind, value any) {
	switch v := value.(type) {
	case Object:
		for _, m := range v {
			d.walk(appendSegment(segments, m.Key), appendKind(kinds, SegmentKey), m.Value)
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			d.walk(appendSegment(segments, k), appendKind(kinds, SegmentKey), v[k])
		}
	case []any:
		for i, elem := range v {
			d.walk(appendSegment(segments, strconv.Itoa(i)), appendKind(kinds, SegmentIndex), elem)
		}
	default:
		// a bare scalar at the root is stored under the empty path
		path := JoinPath(segments)
		d.index[path] = len(d.entries)
		d.entries = append(d.entries, FlatEntry{Path: path, Segments: segments, Kinds: kinds, Value: v})
	}
}

// appendSegment copies so sibling branches never share a backing array.
func appendSegment(segments []string, segment string) []string {
	out := make([]string, len(segments), len(segments)+1)
	copy(out, segments)
	return append(out, segment)
}

func appendKind(kinds []SegmentKind, kind SegmentKind) []SegmentKind {
	out := make([]SegmentKind, len(kinds), len(kinds)+1)
	copy(out, kinds)
	return append(out, kind)
}

// Entries returns a copy of the leaves in traversal order.
func (d *FlattenedDocument) Entries() []FlatEntry {
	out := make([]FlatEntry, len(d.entries))
	for i, e := range d.entries {
		e.Segments = append([]string(nil), e.Segments...)
		e.Kinds = append([]SegmentKind(nil), e.Kinds...)
		out[i] = e
	}
	return out
}

// Paths returns the leaf paths in traversal order.
func (d *FlattenedDocument) Paths() []string {
	paths := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		paths = append(paths, e.Path)
	}
	return paths
}

// Get looks up the value stored at path.
func (d *FlattenedDocument) Get(path string) (any, bool) {
	i, ok := d.index[path]
	if !ok {
		return nil, false
	}
	return d.entries[i].Value, true
}

// Len returns the number of leaves.
func (d *FlattenedDocument) Len() int {
	return len(d.entries)
}

// JoinPath joins raw segments into a dotted path. Dots and backslashes that
// are part of a key are escaped so the result is unambiguous.
func JoinPath(segments []string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		s = strings.ReplaceAll(s, pathEscape, pathEscape+pathEscape)
		escaped[i] = strings.ReplaceAll(s, pathSeparator, pathEscape+pathSeparator)
	}
	return strings.Join(escaped, pathSeparator)
}

// SplitPath reverses JoinPath.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	var (
		segments []string
		current  strings.Builder
		escaping bool
	)
	for _, r := range path {
		switch {
		case escaping:
			current.WriteRune(r)
			escaping = false
		case string(r) == pathEscape:
			escaping = true
		case string(r) == pathSeparator:
			segments = append(segments, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(segments, current.String())
}
