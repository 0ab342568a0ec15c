package index

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/kitty-panics/proton-caller/internal/callerr"
	"github.com/kitty-panics/proton-caller/internal/version"
)

// Index maps the Proton versions installed under one directory to their
// installation paths. Built once per invocation and read-only afterward.
type Index struct {
	dir string
	m   map[version.Version]string
}

// Build scans the immediate subdirectories of dir. A subdirectory whose
// trailing name token parses as a version is indexed; later duplicates for
// the same version overwrite earlier ones. Entries that are not directories,
// fail to parse, or vanish mid-scan are skipped. Only failing to read dir
// itself is an error.
func Build(dir string) (*Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, callerr.Wrap(callerr.IndexReadDir, err, "cannot read %s", dir)
	}

	idx := &Index{dir: dir, m: make(map[version.Version]string, len(entries))}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		if v, ok := version.FromInstallName(entry.Name()); ok {
			idx.m[v] = path
		}
	}
	return idx, nil
}

// Get returns the installation path for an exact version.
func (x *Index) Get(v version.Version) (string, bool) {
	path, ok := x.m[v]
	return path, ok
}

// Dir is the directory the index was built from.
func (x *Index) Dir() string { return x.dir }

func (x *Index) Len() int { return len(x.m) }

func (x *Index) IsEmpty() bool { return len(x.m) == 0 }

// Versions lists the indexed versions, mainline ascending, then
// Experimental, then Custom.
func (x *Index) Versions() []version.Version {
	vs := make([]version.Version, 0, len(x.m))
	for v := range x.m {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return version.Compare(vs[i], vs[j]) < 0 })
	return vs
}
