package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		commitSHA string
		buildDate string
		want      string
	}{
		{name: "dev", version: "dev", want: "dev"},
		{name: "commit", version: "v1.2.0", commitSHA: "abc123", want: "v1.2.0+abc123"},
		{name: "commit and date", version: "v1.2.0", commitSHA: "abc123", buildDate: "2026-10-01", want: "v1.2.0+abc123 (2026-10-01)"},
		{name: "date only", version: "v1.2.0", buildDate: "2026-10-01", want: "v1.2.0 (2026-10-01)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildInfo(t, tt.version, tt.commitSHA, tt.buildDate)
			assert.Equal(t, tt.want, Version())
			assert.Equal(t, tt.version, Short())
		})
	}
}

func TestDetailed(t *testing.T) {
	setBuildInfo(t, "v0.3.0", "", "")
	lines := strings.Split(Detailed(), "\n")
	assert.Equal(t, []string{
		"bemcase v0.3.0",
		runtime.GOOS + "/" + runtime.GOARCH + " " + runtime.Version(),
	}, lines)
}

func setBuildInfo(t *testing.T, v, sha, date string) {
	t.Helper()
	oldV, oldSHA, oldDate := version, commitSHA, buildDate
	version, commitSHA, buildDate = v, sha, date
	t.Cleanup(func() {
		version, commitSHA, buildDate = oldV, oldSHA, oldDate
	})
}
