package deck

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FSLoader lists deck sources under a root directory.
type FSLoader struct {
	root string
}

// NewFSLoader creates a loader that reads from the provided root directory.
func NewFSLoader(root string) *FSLoader {
	return &FSLoader{root: root}
}

// Files returns every markdown file under the root as slash-separated paths
// relative to it. Files of a directory come before its subdirectories and
// each group is ordered by case-insensitive name.
func (l *FSLoader) Files() ([]string, error) {
	var files []string
	if err := l.walk("", &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (l *FSLoader) walk(relPath string, files *[]string) error {
	entries, err := os.ReadDir(l.abs(relPath))
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool {
		ei, ej := entries[i], entries[j]
		if ei.IsDir() != ej.IsDir() {
			return !ei.IsDir()
		}
		return strings.ToLower(ei.Name()) < strings.ToLower(ej.Name())
	})

	for _, entry := range entries {
		name := entry.Name()
		childPath := join(relPath, name)
		if entry.IsDir() {
			if shouldSkipDir(name) {
				continue
			}
			if err := l.walk(childPath, files); err != nil {
				return err
			}
			continue
		}
		if isMarkdown(name) {
			*files = append(*files, childPath)
		}
	}
	return nil
}

// Read returns the contents of a file relative to the root.
func (l *FSLoader) Read(relPath string) ([]byte, error) {
	return os.ReadFile(l.abs(relPath))
}

func (l *FSLoader) abs(relPath string) string {
	if relPath == "" {
		return l.root
	}
	return filepath.Join(l.root, filepath.FromSlash(relPath))
}

func join(base, part string) string {
	if base == "" {
		return part
	}
	return base + "/" + part
}

func shouldSkipDir(name string) bool {
	switch strings.ToLower(name) {
	case ".git", "node_modules", ".hg", ".svn", ".idea", ".vscode":
		return true
	default:
		return false
	}
}

func isMarkdown(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".mdx")
}
