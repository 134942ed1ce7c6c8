package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	dev := Info{Version: "dev", CommitHash: "abc", BuildTime: "unknown"}
	assert.False(t, dev.IsRelease())
	assert.Equal(t, "ffigen dev (commit abc, built unknown)", dev.String())

	release := Info{Version: "v0.3.1", CommitHash: "0123456789", BuildTime: "2026-01-02"}
	assert.True(t, release.IsRelease())
	assert.Equal(t, "ffigen v0.3.1 (commit 0123456789, built 2026-01-02)", release.String())
}

func TestShort(t *testing.T) {
	assert.Equal(t, "0123456", Info{CommitHash: "0123456789"}.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
	assert.Equal(t, "1.0.0", info.SnapshotFormat)
}
