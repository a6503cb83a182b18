package entities

// Manifest is a decoded manifest file. Root is always an Object.
type Manifest struct {
	Path string
	Root Object
}

// Flatten returns the flattened view of the manifest.
func (m *Manifest) Flatten() *FlattenedDocument {
	return Flatten(m.Root)
}
