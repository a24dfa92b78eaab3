package checker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUptime(t *testing.T) {
	cases := map[uint64]string{
		0:                       "<1m",
		59:                      "<1m",
		60:                      "1m",
		3600:                    "1h 0m",
		3*86400 + 4*3600 + 5*60: "3d 4h 5m",
		86400 + 30:              "1d 0h 0m",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatUptime(in), "FormatUptime(%d)", in)
	}
}

func TestCheckSystem(t *testing.T) {
	status, err := CheckSystem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FormatUptime(status.Uptime), status.UptimeString)
}
