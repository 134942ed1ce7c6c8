package logger

import "go.uber.org/zap/zapcore"

// -v counts
const (
	VerbosityUser  = 0 // warnings and errors
	VerbosityInfo  = 1 // + run summaries and captured declarations
	VerbosityDebug = 2 // + per-header collection, skipped and extracted structs
	VerbosityTrace = 3 // + every resolved field
)

// VerbosityToLevel maps a -v count to a zap level. zap has nothing below
// debug, so trace output is debug output gated by ShouldLogTrace.
func VerbosityToLevel(verbosity int) zapcore.Level {
	if verbosity <= VerbosityUser {
		return zapcore.WarnLevel
	}
	if verbosity == VerbosityInfo {
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// ShouldLogTrace reports whether per-field output is enabled (-vvv)
func ShouldLogTrace(verbosity int) bool {
	return verbosity >= VerbosityTrace
}

var levelNames = []string{"User", "Info (-v)", "Debug (-vv)", "Trace (-vvv)"}

// LevelName describes a -v count for humans
func LevelName(verbosity int) string {
	switch {
	case verbosity < 0:
		return "Unknown"
	case verbosity >= VerbosityTrace:
		return levelNames[VerbosityTrace]
	default:
		return levelNames[verbosity]
	}
}
