package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/gofdisk/pkg/util/format"
)

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:             "0B",
		512:           "512B",
		1024:          "1KB",
		1536:          "1.50KB",
		4 << 20:       "4MB",
		3 << 30:       "3GB",
		1 << 40:       "1TB",
		5<<30 + 1<<29: "5.50GB",
	}
	for in, want := range cases {
		require.Equal(t, want, format.FormatBytes(in))
	}
}

func TestParseBytes(t *testing.T) {
	cases := map[string]uint64{
		"512":    512,
		"512B":   512,
		"4KB":    4 << 10,
		"4kb":    4 << 10,
		"1.5GB":  3 << 29,
		" 2MB ":  2 << 20,
		"0":      0,
		"1TB":    1 << 40,
	}
	for in, want := range cases {
		got, err := format.ParseBytes(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "GB", "12XB", "abc"} {
		_, err := format.ParseBytes(in)
		require.Error(t, err, "input %q", in)
	}
}
