// Package logger holds ffigen's global zap logger.
//
// All log output goes to stderr; stdout is reserved for generated code
// (`generate -o -`) and command results.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger. It discards everything until Initialize.
	Logger = zap.NewNop().Sugar()
	// JSONOutput reports whether Initialize selected JSON encoding
	JSONOutput bool
	// Verbosity is the -v count passed to the last Initialize
	Verbosity int
)

// ThemeEnv overrides the console color theme
const ThemeEnv = "FFIGEN_LOG_THEME"

// Initialize builds the global logger for a -v count. Console mode uses the
// minimal themed encoder; JSON mode uses zap's production encoder.
func Initialize(verbosity int, jsonOutput bool) error {
	if theme := os.Getenv(ThemeEnv); theme != "" {
		SetTheme(theme)
	}

	level := VerbosityToLevel(verbosity)
	var encoder zapcore.Encoder
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = newMinimalEncoder()
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	Logger = zap.New(core).Sugar()
	JSONOutput = jsonOutput
	Verbosity = verbosity
	return nil
}

// Cleanup flushes buffered entries. Sync errors on stderr are ignored.
func Cleanup() {
	_ = Logger.Sync()
}
