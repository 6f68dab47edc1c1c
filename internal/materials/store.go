// Package materials checks attached submission files against a materials
// directory.
package materials

import (
	"os"
	"path/filepath"
	"strings"
)

// Store resolves material paths relative to a root directory.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// Exists reports whether relPath names a regular file under the root.
// Paths escaping the root never exist.
func (s *Store) Exists(relPath string) bool {
	p, ok := s.resolve(relPath)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// Missing returns the subset of paths that do not exist, in input order.
func (s *Store) Missing(paths []string) []string {
	var missing []string
	for _, p := range paths {
		if !s.Exists(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

func (s *Store) resolve(relPath string) (string, bool) {
	relPath = strings.TrimSpace(relPath)
	if relPath == "" || filepath.IsAbs(relPath) {
		return "", false
	}
	clean := filepath.Clean(relPath)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.Join(s.root, clean), true
}
