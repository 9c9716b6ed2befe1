package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_VersionAndBadFlags(t *testing.T) {
	require.Equal(t, 0, run([]string{"-version"}))
	require.Equal(t, 0, run([]string{"-h"}))
	require.Equal(t, 2, run([]string{"-no-such-flag"}))
}
