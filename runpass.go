// Package runpass checks single-file Go programs the way a compiler's
// run-pass corpus does: a unit passes when it compiles as an independent
// translation target and, in run mode, executes to a successful exit with
// the expected (by default: no) output.
//
// A unit announces how it is checked with a mode directive on its first
// comment line (see [ParseDirective]) and may carry a TOML expectations
// sidecar (see [Expect]). Units are checked one at a time; there is no
// directory discovery and no parallelism.
package runpass

import (
	"bytes"
	"fmt"
	"go/token"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

// Result is the outcome of checking one unit. A failed check is reported
// as an error by [Check], not as a Result field.
type Result struct {
	Path       string
	Mode       Mode
	Skipped    bool
	SkipReason string
	// Combined stdout and stderr of a run-mode unit.
	Output string
}

func newPackageConfig(dir string) *packages.Config {
	mode := packages.NeedName | packages.NeedCompiledGoFiles
	mode |= packages.NeedImports
	mode |= packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo
	return &packages.Config{
		Dir:  dir,
		Mode: mode,
		Fset: token.NewFileSet(),
	}
}

func randomHex(n int) string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:n]
}

const stagedGoMod = "module unit\n\ngo 1.21\n"

// stageUnit writes the unit into a fresh single-file module so the
// toolchain sees it as an independent translation target, with no access
// to the surrounding module.
func stageUnit(src []byte) (string, error) {
	dir := filepath.Join(os.TempDir(), "runpass-"+randomHex(8))
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", errors.Wrap(err, "could not create staging directory")
	}
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(stagedGoMod), 0666); err != nil {
		return "", errors.Wrap(err, "could not stage unit")
	}
	if err := os.WriteFile(filepath.Join(dir, "unit.go"), src, 0666); err != nil {
		return "", errors.Wrap(err, "could not stage unit")
	}
	return dir, nil
}

func removeStaging(dir string) {
	if !strings.HasPrefix(dir, os.TempDir()) {
		panic(fmt.Sprintf("refusing to remove %q", dir))
	}
	_ = os.RemoveAll(dir)
}

// compileUnit type-checks the staged unit, returning the first error the
// toolchain reports.
func compileUnit(dir string) error {
	pkgs, err := packages.Load(newPackageConfig(dir), ".")
	if err != nil {
		return errors.Wrap(err, "could not load unit")
	}
	if len(pkgs) == 0 {
		return errors.New("unit matched no packages")
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			return errors.Errorf("unit does not compile: %s", e)
		}
	}
	return nil
}

// runUnit executes the staged unit and returns its combined stdout and
// stderr. A non-zero exit is returned as an error.
func runUnit(dir string) (string, error) {
	cmd := exec.Command("go", "run", ".")
	cmd.Dir = dir
	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	out := stdout.String() + stderr.String()
	if err != nil {
		return out, errors.Errorf("unit faulted (%v):\n%s", err, out)
	}
	return out, nil
}

// Check checks the unit at path according to its mode directive.
//
// Skip-mode units are reported in the Result without being staged. Build
// and run modes both require the unit to compile; run mode additionally
// requires a successful exit and output matching the unit's expectations.
func Check(path string) (Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Wrap(err, "could not read unit")
	}
	d, err := ParseDirective(src)
	if err != nil {
		return Result{}, errors.Wrapf(err, "%s", path)
	}
	res := Result{Path: path, Mode: d.Mode}
	if d.Mode == ModeSkip {
		res.Skipped = true
		res.SkipReason = d.Reason
		return res, nil
	}
	dir, err := stageUnit(src)
	if err != nil {
		return res, err
	}
	defer removeStaging(dir)
	if err := compileUnit(dir); err != nil {
		return res, errors.Wrapf(err, "%s", path)
	}
	if d.Mode == ModeBuild {
		return res, nil
	}
	expect, err := ReadExpect(path)
	if err != nil {
		return res, err
	}
	out, err := runUnit(dir)
	res.Output = out
	if err != nil {
		return res, errors.Wrapf(err, "%s", path)
	}
	got := strings.TrimSpace(out)
	want := strings.TrimSpace(expect.Output)
	if got != want {
		return res, errors.Errorf("%s: output does not match\n\texpecting:  %q\n\tgot:        %q", path, want, got)
	}
	return res, nil
}
