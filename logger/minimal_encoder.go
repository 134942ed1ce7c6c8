package logger

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette holds the ANSI colors for one theme
type palette struct {
	fg       string
	time     string
	id       string
	number   string
	accent   []string // rotated per component name
	bracket  string
	yellow   string
	red      string
	redBg    string
	yellowBg string
}

// Gruvbox Dark color palette (warm, muted, easy on eyes)
var gruvbox = palette{
	fg:       "\x1b[38;5;223m", // Soft cream (#ebdbb2)
	time:     "\x1b[38;5;108m", // Muted cyan-green (#8ec07c)
	id:       "\x1b[38;5;109m", // Soft blue (#83a598)
	number:   "\x1b[38;5;175m", // Muted purple (#d3869b)
	accent:   []string{"\x1b[38;5;208m", "\x1b[38;5;214m"},
	bracket:  "\x1b[38;5;208m",
	yellow:   "\x1b[38;5;214m",
	red:      "\x1b[38;5;167m",
	redBg:    "\x1b[48;5;88m",
	yellowBg: "\x1b[48;5;58m",
}

// Everforest Dark color palette (natural forest greens)
var everforest = palette{
	fg:       "\x1b[38;5;223m", // Soft beige (#d3c6aa)
	time:     "\x1b[38;5;107m", // Mid green (#83c092)
	id:       "\x1b[38;5;109m", // Blue-green (#7fbbb3)
	number:   "\x1b[38;5;108m", // Bright green (#a7c080)
	accent:   []string{"\x1b[38;5;108m", "\x1b[38;5;65m", "\x1b[38;5;208m"},
	bracket:  "\x1b[38;5;208m",
	yellow:   "\x1b[38;5;179m",
	red:      "\x1b[38;5;167m",
	redBg:    "\x1b[48;5;52m",
	yellowBg: "\x1b[48;5;58m",
}

// Current active theme
var currentTheme = "everforest"

// SetTheme configures the color scheme for log output
func SetTheme(theme string) {
	if theme == "everforest" || theme == "gruvbox" {
		currentTheme = theme
	}
}

func colors() palette {
	if currentTheme == "gruvbox" {
		return gruvbox
	}
	return everforest
}

func colorComponent(name string) string {
	// Hash for consistent color per component
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	accent := colors().accent
	return accent[hash%len(accent)]
}

var bracketPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// colorizeMessage highlights bracketed contexts such as [struct:CXString]
func colorizeMessage(msg string) string {
	p := colors()
	var result strings.Builder
	lastIndex := 0

	for _, match := range bracketPattern.FindAllStringIndex(msg, -1) {
		if before := msg[lastIndex:match[0]]; before != "" {
			result.WriteString(p.fg + before + colorReset)
		}
		content := msg[match[0]:match[1]]
		color := p.bracket
		if strings.HasPrefix(content, "[struct:") || strings.HasPrefix(content, "[header:") {
			color = p.id
		}
		result.WriteString(color + content + colorReset)
		lastIndex = match[1]
	}

	if remaining := msg[lastIndex:]; remaining != "" {
		result.WriteString(p.fg + remaining + colorReset)
	}
	return result.String()
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  bindgen  Extracted struct  CXString fields=2 size=16"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	p := colors()
	final := buffer.NewPool().Get()

	final.AppendString(p.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown for non-INFO entries
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(colorizeMessage(ent.Message))

	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(formatFields(fields))
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for DEBUG/WARN/ERROR
func levelColorString(level zapcore.Level) string {
	p := colors()
	switch level {
	case zapcore.DebugLevel:
		return p.fg + "DEBUG" + colorReset
	case zapcore.WarnLevel:
		return colorBold + p.yellowBg + p.yellow + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + p.redBg + p.red + "ERROR" + colorReset
	default:
		return colorBold + p.redBg + p.red + level.CapitalString() + colorReset
	}
}

// abbreviateName shortens component names: bindgen.comment -> b.comment
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// getFieldValue extracts the value from a zap field, handling different field types
func getFieldValue(field zapcore.Field) string {
	switch field.Type {
	case zapcore.StringType:
		return field.String
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return fmt.Sprintf("%d", field.Integer)
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", uint64(field.Integer))
	case zapcore.BoolType:
		return fmt.Sprintf("%t", field.Integer == 1)
	case zapcore.ErrorType:
		if err, ok := field.Interface.(error); ok {
			return err.Error()
		}
	}

	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface)
	}

	// Fall back to the base encoder for anything else (floats, durations, ...)
	enc := zapcore.NewMapObjectEncoder()
	field.AddTo(enc)
	if v, ok := enc.Fields[field.Key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// formatFields renders every field; declaration names are shown bare in the
// id color, everything else as key=value.
func formatFields(fields []zapcore.Field) string {
	p := colors()
	values := make([]string, 0, len(fields))

	for _, field := range fields {
		val := getFieldValue(field)
		switch field.Key {
		case FieldStruct, FieldHeader:
			values = append(values, p.id+val+colorReset)
		case FieldDurationMS:
			values = append(values, p.number+val+colorReset+"ms")
		case FieldFields, FieldSize, FieldStructs, FieldTypedefs, FieldFunctions, FieldSkipped, FieldFailed, FieldOffset:
			values = append(values, field.Key+"="+p.number+val+colorReset)
		default:
			values = append(values, field.Key+"="+val)
		}
	}

	return strings.Join(values, " ")
}
