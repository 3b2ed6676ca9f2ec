package filesystem

import (
	"os"
	"path/filepath"
)

func Abs(p string) string {
	p, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	return p
}

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0777)
}

// ResolveRelative returns p unchanged if it is absolute and joined to base
// otherwise.
func ResolveRelative(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
