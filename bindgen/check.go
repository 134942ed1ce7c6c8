package bindgen

import (
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/teranos/ffigen/errors"
)

// CheckResult holds the result of comparing generated output with the file on disk
type CheckResult struct {
	UpToDate bool
	Path     string
	// Diff is a unified diff from the file on disk to the generated output
	Diff string
}

// CheckOutput compares generated with the contents of path. A missing file
// is treated as empty.
func CheckOutput(path, generated string) (*CheckResult, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	result := &CheckResult{Path: path}
	if string(existing) == generated {
		result.UpToDate = true
		return result, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(generated),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to diff generated output")
	}
	result.Diff = diff
	return result, nil
}

// Err returns ErrOutOfDate when the output differs
func (r *CheckResult) Err() error {
	if r.UpToDate {
		return nil
	}
	return errors.WithHint(
		errors.Wrapf(errors.ErrOutOfDate, "%s", r.Path),
		"run `ffigen generate` to regenerate it")
}
