// Package walker collects candidate image paths from a directory tree
// (spec component C1).
package walker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImageExtensions is the closed set of extensions treated as images.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
	".heic": true,
	".raw":  true,
}

// Collect walks root and returns the lexicographically sorted list of
// absolute paths to image files it finds. When recursive is false, only
// root's immediate entries are considered. Directories that cannot be read
// are skipped silently, matching the spec's "degrades to empty results
// rather than failing the whole run" stance on partial I/O failures.
// Symlinked directories are followed, each resolved target visited at most
// once, to avoid infinite loops on cyclic links.
func Collect(root string, recursive bool) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	visited := map[string]bool{}
	var out []string

	var walk func(dir string)
	walk = func(dir string) {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			if visited[resolved] {
				return
			}
			visited[resolved] = true
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, e := range entries {
			full := filepath.Join(dir, e.Name())

			info, err := e.Info()
			if err != nil {
				continue
			}

			if info.Mode()&os.ModeSymlink != 0 {
				target, err := filepath.EvalSymlinks(full)
				if err != nil {
					continue
				}
				ti, err := os.Stat(target)
				if err != nil {
					continue
				}
				if ti.IsDir() {
					if recursive {
						walk(target)
					}
					continue
				}
				full = target
			} else if e.IsDir() {
				if recursive {
					walk(full)
				}
				continue
			}

			ext := strings.ToLower(filepath.Ext(full))
			if ImageExtensions[ext] {
				out = append(out, full)
			}
		}
	}

	walk(abs)
	sort.Strings(out)
	return out, nil
}
