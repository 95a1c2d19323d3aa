// Package textfile provides the nodes that read prompt material from the
// configured text-files directory.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListFiles returns the sorted names of regular files in the catalog
// directory. A directory that does not exist yet is an empty catalog, not an
// error.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read text catalog: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ResolvePath joins a catalog filename onto the catalog directory. Names
// that would escape the directory are rejected.
func ResolvePath(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("filename is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("unsafe filename %q", name)
	}
	return filepath.Join(dir, name), nil
}

// readTextFile reads a file's contents, reporting the reason a read was
// skipped so callers can log it. Missing or non-regular paths return ok=false
// with an empty string.
func readTextFile(path string) (content string, ok bool, reason string) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false, "file not found"
	}
	if !info.Mode().IsRegular() {
		return "", false, "path is not a file"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, "read failed"
	}
	return string(data), true, ""
}
