package logger

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

func encode(t *testing.T, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := newMinimalEncoder().EncodeEntry(ent, fields)
	require.NoError(t, err)
	defer buf.Free()
	return stripANSI(buf.String())
}

// The console encoder must never silently drop fields.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2024, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "bindgen",
		Message:    "Extracted struct",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String(FieldStruct, "CXString"), "CXString"},
		{zap.Int(FieldFields, 2), "fields=2"},
		{zap.Int64(FieldSize, 16), "size=16"},
		{zap.Int64(FieldDurationMS, 42), "42ms"},
		{zap.String("random_field_xyz", "important_data"), "random_field_xyz=important_data"},
		{zap.Bool("main_file_only", true), "main_file_only=true"},
		{zap.Float64("ratio", 0.5), "ratio=0.5"},
		{zap.Uint32("uint32_field", 7), "uint32_field=7"},
		{zap.Error(errors.New("nested paragraph")), "error=nested paragraph"},
	}

	fields := make([]zapcore.Field, 0, len(testFields))
	for _, tf := range testFields {
		fields = append(fields, tf.field)
	}

	out := encode(t, entry, fields...)
	for _, tf := range testFields {
		assert.Contains(t, out, tf.mustFind, "field %s missing from output", tf.field.Key)
	}
	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "Extracted struct")
}

func TestMinimalEncoderLevels(t *testing.T) {
	base := zapcore.Entry{Time: time.Now(), Message: "msg"}

	base.Level = zapcore.InfoLevel
	assert.NotContains(t, encode(t, base), "INFO")

	base.Level = zapcore.WarnLevel
	assert.Contains(t, encode(t, base), "WARN")

	base.Level = zapcore.ErrorLevel
	assert.Contains(t, encode(t, base), "ERROR")

	base.Level = zapcore.DebugLevel
	assert.Contains(t, encode(t, base), "DEBUG")
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "b.comment", abbreviateName("bindgen.comment"))
	assert.Equal(t, "bindgen", abbreviateName("bindgen"))
	assert.Equal(t, "w.loop.x", abbreviateName("watch.loop.x"))
}

func TestColorizeMessageKeepsText(t *testing.T) {
	for _, theme := range []string{"gruvbox", "everforest"} {
		SetTheme(theme)
		msg := "Skipping [struct:CXString] in [header:CXString.h] now"
		assert.Equal(t, msg, stripANSI(colorizeMessage(msg)))
	}
	SetTheme("unknown")
	assert.Equal(t, "everforest", currentTheme)
}
