package resolve

import (
	"github.com/kitty-panics/proton-caller/internal/callerr"
	"github.com/kitty-panics/proton-caller/internal/index"
	"github.com/kitty-panics/proton-caller/internal/version"
)

// Installation maps a requested version token to an installation path via
// the index. An empty token means the default version. A requested version
// that is absent fails with VersionNotFound; no other installed version is
// ever substituted.
func Installation(idx *index.Index, requested string) (string, version.Version, error) {
	v := version.Default()
	if requested != "" {
		var err error
		if v, err = version.Parse(requested); err != nil {
			return "", version.Version{}, err
		}
	}
	path, ok := idx.Get(v)
	if !ok {
		return "", v, callerr.New(callerr.VersionNotFound, "Proton %s is not installed in %s", v, idx.Dir())
	}
	return path, v, nil
}

// Custom accepts an installation directory directly, bypassing the index.
// The version label comes from the directory name when it parses, Custom
// otherwise; whether the directory actually holds a proton executable is
// checked at launch time.
func Custom(dir string) (string, version.Version) {
	return dir, version.FromPath(dir)
}
