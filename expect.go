package runpass

import (
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Expect describes what a run-mode unit is allowed to produce. It is read
// from an optional TOML sidecar next to the unit: for testdata/run/foo.go
// the sidecar is testdata/run/foo.toml.
//
// A unit with no sidecar is expected to produce no output at all.
type Expect struct {
	// Combined stdout and stderr of the unit. Both sides of the
	// comparison are trimmed of surrounding whitespace.
	Output string `toml:"output"`
}

// sidecarPath returns the expectations file for a unit path.
func sidecarPath(unitPath string) string {
	return strings.TrimSuffix(unitPath, ".go") + ".toml"
}

// ReadExpect reads the expectations sidecar for the unit at unitPath. A
// missing sidecar is not an error and yields the zero Expect.
func ReadExpect(unitPath string) (Expect, error) {
	contents, err := os.ReadFile(sidecarPath(unitPath))
	if errors.Is(err, fs.ErrNotExist) {
		contents = []byte{}
	} else if err != nil {
		return Expect{}, errors.Wrapf(err, "expectations for %s could not be read", unitPath)
	}
	var e Expect
	if err := toml.Unmarshal(contents, &e); err != nil {
		return Expect{}, errors.Wrapf(err, "expectations for %s could not be parsed", unitPath)
	}
	return e, nil
}
