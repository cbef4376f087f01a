package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files.
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements Provider backed by a path -> content map.
// Paths use forward slashes regardless of the host platform. Intended for
// tests that need hermetic generation and verification runs.
type MemoryFileSystem struct {
	files map[string][]byte
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

func (m *MemoryFileSystem) normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// AddFile stores content at path, creating implicit parent directories.
func (m *MemoryFileSystem) AddFile(p string, content string) {
	m.files[m.normalize(p)] = []byte(content)
}

func (m *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	content, ok := m.files[m.normalize(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (m *MemoryFileSystem) WriteFile(p string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[m.normalize(p)] = stored
	return nil
}

func (m *MemoryFileSystem) ReadDir(p string) ([]FileInfo, error) {
	prefix := m.normalize(p) + "/"
	seen := map[string]FileInfo{}

	for fp, content := range m.files {
		if !strings.HasPrefix(fp, prefix) {
			continue
		}
		rest := strings.TrimPrefix(fp, prefix)
		if i := strings.Index(rest, "/"); i >= 0 {
			// Implicit subdirectory.
			name := rest[:i]
			seen[name] = &memoryFileInfo{name: name, mode: 0o755 | fs.ModeDir, isDir: true}
		} else {
			seen[rest] = &memoryFileInfo{name: rest, size: int64(len(content)), mode: 0o644}
		}
	}

	if len(seen) == 0 {
		if _, ok := m.files[m.normalize(p)]; !ok {
			return nil, &fs.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
		}
		return nil, fmt.Errorf("not a directory: %s", p)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]FileInfo, 0, len(names))
	for _, name := range names {
		result = append(result, seen[name])
	}
	return result, nil
}

func (m *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	np := m.normalize(p)
	if content, ok := m.files[np]; ok {
		return &memoryFileInfo{name: path.Base(np), size: int64(len(content)), mode: 0o644}, nil
	}

	// Implicit directory when any file lives below it.
	prefix := np + "/"
	for fp := range m.files {
		if strings.HasPrefix(fp, prefix) {
			return &memoryFileInfo{name: path.Base(np), mode: 0o755 | fs.ModeDir, isDir: true}, nil
		}
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: os.ErrNotExist}
}

func (m *MemoryFileSystem) WalkFiles(root string, fn func(rel string) error) error {
	prefix := m.normalize(root) + "/"

	var rels []string
	for fp := range m.files {
		if strings.HasPrefix(fp, prefix) {
			rels = append(rels, strings.TrimPrefix(fp, prefix))
		}
	}
	sort.Strings(rels)

	for _, rel := range rels {
		if err := fn(rel); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryFileSystem) RemoveAll(p string) error {
	np := m.normalize(p)
	prefix := np + "/"
	for fp := range m.files {
		if fp == np || strings.HasPrefix(fp, prefix) {
			delete(m.files, fp)
		}
	}
	return nil
}
