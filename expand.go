package biodistance

import (
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return path, pfx.Err(err)
		}
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}

	return path, nil
}

var compressionSuffixes = []string{".gz", ".bz2", ".xz", ".zip", ".Z"}

// ShortName is the label used for an input in reports: the base name of the
// path without any compression suffix and without ".csv".
func ShortName(path string) string {
	name := filepath.Base(strings.TrimPrefix(path, "gs://"))
	for _, suffix := range compressionSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}

	return strings.TrimSuffix(name, ".csv")
}
