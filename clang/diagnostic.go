package clang

import (
	"fmt"
	"strings"

	"github.com/teranos/ffigen/errors"
)

// Severity of a parse diagnostic, in libclang order
type Severity int

const (
	SeverityIgnored Severity = iota
	SeverityNote
	SeverityWarning
	SeverityError
	SeverityFatal
)

var severityNames = map[Severity]string{
	SeverityIgnored: "ignored",
	SeverityNote:    "note",
	SeverityWarning: "warning",
	SeverityError:   "error",
	SeverityFatal:   "fatal",
}

var severitiesByName = invert(severityNames)

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSeverity maps a severity name to a Severity; unknown names are ignored
func ParseSeverity(name string) Severity {
	return severitiesByName[strings.ToLower(name)]
}

// Diagnostic is one message reported while parsing a header
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// CheckDiagnostics returns an ErrProvider error listing every error or
// fatal diagnostic, or nil when the translation unit is usable.
func CheckDiagnostics(header string, diags []Diagnostic) error {
	var failures []string
	for _, d := range diags {
		if d.Severity >= SeverityError {
			failures = append(failures, d.String())
		}
	}
	if len(failures) == 0 {
		return nil
	}

	err := errors.Wrapf(errors.ErrProvider, "parsing %s produced %d error diagnostic(s)", header, len(failures))
	for _, f := range failures {
		err = errors.WithDetail(err, f)
	}
	return errors.WithHint(err, "check include_paths and clang_args in ffigen.toml")
}
