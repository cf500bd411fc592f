// Package corpus enumerates the source files a scan runs over.
package corpus

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Directories never scanned, regardless of rule configuration.
var infraDirs = map[string]struct{}{
	".git":         {},
	".cargo":       {},
	"target":       {},
	"node_modules": {},
}

// Files returns the relative slash-separated paths of all files with the
// given extension under root, in lexical traversal order. A missing root is
// not an error: the result is simply empty.
func Files(root string, ext string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := infraDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// ReadFileLossy reads a file as text, replacing malformed byte sequences with
// the Unicode replacement character. The second return value is false when
// the file could not be read at all; callers skip such files.
func ReadFileLossy(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return strings.ToValidUTF8(string(data), "�"), true
}
