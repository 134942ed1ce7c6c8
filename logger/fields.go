package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldRunID     = "run_id"
	FieldComponent = "component"

	// Declarations
	FieldHeader   = "header"
	FieldStruct   = "struct"
	FieldField    = "field"
	FieldKind     = "kind"
	FieldFields   = "fields"
	FieldSize     = "size"
	FieldOffset   = "offset"
	FieldTypeKind = "type_kind"
	FieldType     = "type"

	// Enums and literals
	FieldEnum          = "enum"
	FieldConstant      = "constant"
	FieldValue         = "value"
	FieldUnsignedValue = "unsigned_value"
	FieldIntegerType   = "integer_type"

	// Diagnostics
	FieldSeverity = "severity"
	FieldMessage  = "message"

	// Counts
	FieldStructs   = "structs"
	FieldTypedefs  = "typedefs"
	FieldFunctions = "functions"
	FieldSkipped   = "skipped"
	FieldIgnored   = "ignored"
	FieldFailed    = "failed"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors and files
	FieldError = "error"
	FieldFile  = "file"
	FieldPath  = "path"
	FieldOp    = "op"

	FieldVerbosity = "verbosity"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	p := bindgen.New(parser, opts, logger.ComponentLogger("bindgen"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	headerLog := logger.ChildLogger(p.log, logger.FieldHeader, header)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
