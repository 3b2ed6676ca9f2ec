package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GatherFiles expands roots into absolute file paths. Regular files are taken
// as given, directories contribute their direct children with one of the
// given extensions in name order.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	hasExtension := func(name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		for _, e := range extensions {
			if e == ext {
				return true
			}
		}
		return false
	}

	appendAbsPath := func(paths []string, path string) ([]string, error) {
		path, err := filepath.Abs(path)
		if err != nil {
			return paths, fmt.Errorf("absolute path: %w", err)
		}
		return append(paths, path), nil
	}

	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			paths, err = appendAbsPath(paths, root)
			if err != nil {
				return nil, err
			}
		} else if fi.Mode().IsDir() {
			entries, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			var names []string
			for _, entry := range entries {
				if entry.Type().IsRegular() && hasExtension(entry.Name()) {
					names = append(names, entry.Name())
				}
			}
			sort.Strings(names)

			for _, name := range names {
				paths, err = appendAbsPath(paths, filepath.Join(root, name))
				if err != nil {
					return nil, err
				}
			}
		} else {
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	return paths, nil
}
