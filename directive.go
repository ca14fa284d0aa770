package runpass

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode says what a check does with a unit: compile and execute it,
// compile it only, or leave it alone.
type Mode string

const (
	ModeRun   Mode = "run"
	ModeBuild Mode = "build"
	ModeSkip  Mode = "skip"
)

// A Directive is the mode header of a unit: the first comment line of the
// file, e.g.
//
//	// run
//
// A skip directive may carry a reason after the mode word:
//
//	// skip requires cgo
type Directive struct {
	Mode   Mode
	Reason string
}

// ParseDirective reads the mode header from unit source. The header must
// appear on a comment line before any non-comment, non-blank line.
func ParseDirective(src []byte) (Directive, error) {
	for _, l := range strings.Split(string(src), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if !strings.HasPrefix(l, "//") {
			break
		}
		l = strings.TrimSpace(strings.TrimPrefix(l, "//"))
		word, rest, _ := strings.Cut(l, " ")
		switch Mode(word) {
		case ModeRun, ModeBuild:
			if rest != "" {
				return Directive{}, errors.Errorf("unexpected text after %q directive: %q", word, rest)
			}
			return Directive{Mode: Mode(word)}, nil
		case ModeSkip:
			return Directive{Mode: ModeSkip, Reason: strings.TrimSpace(rest)}, nil
		default:
			return Directive{}, errors.Errorf("unknown directive %q", word)
		}
	}
	return Directive{}, errors.New("unit has no mode directive")
}
