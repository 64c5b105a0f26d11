package search

// Index maps vault-relative note paths to the header lines they contain. It
// remembers insertion order so results follow the vault listing.
type Index struct {
	files   []string
	headers map[string][]string
}

// NewIndex constructs an empty index.
func NewIndex() *Index {
	return &Index{headers: make(map[string][]string)}
}

// Add records the headers of a note. Adding a path twice replaces its
// headers and keeps its original position.
func (idx *Index) Add(path string, headers []string) {
	if _, ok := idx.headers[path]; !ok {
		idx.files = append(idx.files, path)
	}
	idx.headers[path] = append([]string(nil), headers...)
}

// Files returns the indexed note paths in insertion order.
func (idx *Index) Files() []string {
	if idx == nil {
		return nil
	}
	return append([]string(nil), idx.files...)
}

// Headers returns the headers of a note and whether the note is indexed.
func (idx *Index) Headers(path string) ([]string, bool) {
	if idx == nil {
		return nil, false
	}
	h, ok := idx.headers[path]
	return h, ok
}

// Len returns the number of indexed notes.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.files)
}
