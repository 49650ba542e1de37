package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBuild(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })
	Version, Commit, Date = version, commit, date
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		commit  string
		date    string
		want    string
		exclude string
	}{
		{"dev build", "unknown", "unknown", "themer version 1.2.3 (", "commit:"},
		{"release build", "0123456789abcdef", "2026-01-02T03:04:05Z", "(commit: 01234567, built: 2026-01-02T03:04:05Z", "89abcdef"},
		{"short commit", "abc", "2026-01-02T03:04:05Z", "(commit: abc, built:", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuild(t, "1.2.3", tt.commit, tt.date)
			got := String()
			assert.Contains(t, got, tt.want)
			assert.True(t, strings.HasSuffix(got, runtime.GOOS+"/"+runtime.GOARCH+")"), got)
			if tt.exclude != "" {
				assert.NotContains(t, got, tt.exclude)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	setBuild(t, "2.0.0", "deadbeef", "unknown")

	info := GetInfo()
	assert.Equal(t, "2.0.0", info.Version)
	assert.Equal(t, "deadbeef", info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, "2.0.0", Short())
}
