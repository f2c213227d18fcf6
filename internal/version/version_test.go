package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIDFor(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-10-01", expected: 0},
		{name: "next day after epoch", date: "2026-10-02", expected: 1},
		{name: "one year later", date: "2027-10-01", expected: 365},
		{name: "leap day included", date: "2028-10-01", expected: 731},
		{name: "invalid format", date: "invalid", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2026-09-30", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := buildIDFor(tt.date)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// stubBuildInfo подменяет метки сборки на время теста.
func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	old := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = old })
}

func TestInfoAndString(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()
	stubBuildInfo(t, nil)

	BuildDate = ""
	info := Info()
	assert.False(t, info.Calculated)
	assert.NotEmpty(t, info.Error)
	assert.Contains(t, String(), "build unknown")

	BuildDate = "2026-10-11"
	BuildCommit = "abc123"
	info = Info()
	assert.True(t, info.Calculated)
	assert.Equal(t, 10, info.BuildID)
	assert.Equal(t, "Rusty Roguelike, build 10 (2026-10-11) commit[abc123]", String())

	BuildCommit = ""
	assert.Equal(t, "Rusty Roguelike, build 10 (2026-10-11) commit[unknown]", String())
}

func TestInfo_FromBuildInfo(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()
	BuildDate = "2026-10-12"

	stubBuildInfo(t, &debug.BuildInfo{
		GoVersion: "go1.24.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	BuildCommit = ""
	info := Info()
	assert.Equal(t, "0123456789abcdef0123", info.Commit)
	assert.True(t, info.Dirty)
	assert.Equal(t, "go1.24.0", info.GoVersion)
	assert.Equal(t, "Rusty Roguelike, build 11 (2026-10-12) commit[0123456789ab+dirty]", String())

	BuildCommit = "release"
	assert.Equal(t, "release", Info().Commit, "ldflags win over VCS stamp")
}
