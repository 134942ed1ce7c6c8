// Package snapshot serves AST trees recorded as YAML.
//
// A snapshot captures everything the generator reads from a provider: cursor
// kinds and names, type descriptors with sizes, field bit offsets and parsed
// documentation comments. Snapshots are written by `ffigen dump` from any
// provider and replayed by Parser, which makes generation reproducible on
// machines without libclang and gives tests a readable fixture format.
//
// Example:
//
//	version: 1.0.0
//	header: CXString.h
//	root:
//	  kind: TranslationUnit
//	  children:
//	    - kind: StructDecl
//	      name: CXString
//	      type: {kind: Record, spelling: CXString, size: 16}
//	      children:
//	        - kind: FieldDecl
//	          name: data
//	          type: {kind: Pointer, size: 8, pointee: {kind: Void}}
package snapshot

import (
	"bytes"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/errors"
)

// FormatVersion is written into every new snapshot
const FormatVersion = "1.0.0"

// supportedVersions is the range of snapshot format versions this build reads
const supportedVersions = "^1.0"

// File is one recorded translation unit
type File struct {
	Version     string       `yaml:"version"`
	Header      string       `yaml:"header"`
	Args        []string     `yaml:"args,omitempty"`
	Diagnostics []Diagnostic `yaml:"diagnostics,omitempty"`
	Root        *Cursor      `yaml:"root"`
}

// Diagnostic is a recorded parse diagnostic
type Diagnostic struct {
	Severity string `yaml:"severity"`
	Message  string `yaml:"message"`
}

// Decode reads and validates a snapshot
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot")
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads a snapshot file from disk
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot %s", path)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot %s", path)
	}
	return f, nil
}

// Encode writes the snapshot as YAML
func (f *File) Encode(w io.Writer) error {
	if f.Version == "" {
		f.Version = FormatVersion
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}
	return enc.Close()
}

func (f *File) validate() error {
	if f.Version == "" {
		return errors.New("snapshot has no version")
	}
	v, err := semver.NewVersion(f.Version)
	if err != nil {
		return errors.Wrapf(err, "invalid snapshot version %q", f.Version)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return errors.Wrap(err, "invalid supported version constraint")
	}
	if !constraint.Check(v) {
		return errors.WithHintf(
			errors.Newf("snapshot version %s is not supported (want %s)", f.Version, supportedVersions),
			"re-record the snapshot with `ffigen dump`")
	}
	if f.Root == nil {
		return errors.New("snapshot has no root cursor")
	}
	return nil
}

// ClangDiagnostics converts the recorded diagnostics
func (f *File) ClangDiagnostics() []clang.Diagnostic {
	out := make([]clang.Diagnostic, 0, len(f.Diagnostics))
	for _, d := range f.Diagnostics {
		out = append(out, clang.Diagnostic{
			Severity: clang.ParseSeverity(d.Severity),
			Message:  d.Message,
		})
	}
	return out
}
