package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Discover walks roots recursively and returns the files whose extension
// matches the configured set, case-insensitively. WalkDir visits entries in
// lexical order, so the result is deterministic for a given tree.
//
// Unreadable directories do not abort discovery; they are reported as
// warnings alongside the file list.
func Discover(roots []string, extensions []string) ([]string, []string, error) {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	var files []string
	var warnings []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: %v", path, err))
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			if !entry.Type().IsRegular() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if _, ok := allowed[ext]; !ok {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("walk %q: %w", root, err)
		}
	}
	return files, warnings, nil
}
