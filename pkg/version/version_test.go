package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	old := version
	version = v
	t.Cleanup(func() { version = old })
}

func TestGetVersion(t *testing.T) {
	tests := []struct {
		raw         string
		want        string
		wantRelease bool
	}{
		{raw: "v1.4.2", want: "1.4.2", wantRelease: true},
		{raw: "2.0.0", want: "2.0.0", wantRelease: true},
		{raw: "v0.1.0-dev", want: "0.1.0-dev"},
		{raw: "not-a-version", want: "not-a-version"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			withVersion(t, tt.raw)
			assert.Equal(t, tt.want, GetVersion())
			assert.Equal(t, tt.wantRelease, IsRelease())
		})
	}
}
