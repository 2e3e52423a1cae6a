package drawablegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Android", "android"},
		{"Tv", "tv"},
		{"DeviceUnknown", "device_unknown"},
		{"NavDevices", "nav_devices"},
		{"ArrowRight", "arrow_right"},
		{"VolumeUp", "volume_up"},
		{"HTTPServer", "http_server"},
		{"Mp3Player", "mp3_player"},
		{"", ""},
	}

	for _, c := range cases {
		require.Equal(t, c.want, ToSnakeCase(c.in), "input %q", c.in)
	}
}

func TestToSnakeCaseIdempotent(t *testing.T) {
	for _, name := range []string{"DeviceUnknown", "NavSettings", "Searching", "Mp3Player"} {
		once := ToSnakeCase(name)
		require.Equal(t, once, ToSnakeCase(once), "input %q", name)
	}
}
