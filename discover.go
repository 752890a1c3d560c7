package tscycle

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/loopcontext/tscycle/internal/pathmatch"
)

// Discover walks root and returns the sorted list of files ending in suffix
// whose path contains none of the exclusion markers. Markers are matched
// against the path relative to root, so a marker in the name of root itself
// (or any parent) does not wipe out the whole tree. An empty result is valid:
// the extraction step still runs and simply leaves the catalog unchanged.
func Discover(root, suffix string, exclude []string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		if info.IsDir() {
			if rel != "." && pathmatch.ContainsAny(rel, exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !pathmatch.Eligible(rel, suffix, exclude) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
