package accessor

import (
	"os"
	"path/filepath"
	"strings"
)

// buildPath resolves basePath/path into a single filesystem path, the
// external collaborator spec.md §6 describes at the interface level:
// the core treats its result opaquely. No "~" expansion is performed.
//
//   - if path is absolute, basePath is ignored (unless
//     PathOptionPathIsRelative strips the leading separator first)
//   - if path is relative and basePath names an existing directory,
//     path resolves relative to basePath
//   - if path is relative and basePath names an existing non-directory
//     object, path resolves relative to basePath's parent directory
//   - if path is relative and basePath does not exist, basePath is
//     treated as a directory path
func buildPath(basePath, path string, opts PathOptions) (string, error) {
	if opts&PathOptionConvertBackslash != 0 {
		path = strings.ReplaceAll(path, `\`, "/")
		basePath = strings.ReplaceAll(basePath, `\`, "/")
	}

	if opts&PathOptionPathIsRelative != 0 {
		path = strings.TrimLeft(path, `/\`)
	}

	var resolved string
	if filepath.IsAbs(path) {
		resolved = path
	} else if basePath == "" {
		resolved = path
	} else {
		dir := basePath
		if info, err := os.Stat(basePath); err == nil && !info.IsDir() {
			dir = filepath.Dir(basePath)
		}
		resolved = filepath.Join(dir, path)
	}

	switch {
	case opts&PathOptionCreatePath != 0:
		if err := os.MkdirAll(filepath.Dir(resolved), 0777); err != nil {
			return "", wrapError(HostError, err)
		}
	case opts&PathOptionCreateDirectory != 0:
		if err := os.Mkdir(filepath.Dir(resolved), 0777); err != nil && !os.IsExist(err) {
			return "", wrapError(HostError, err)
		}
	}

	return resolved, nil
}
