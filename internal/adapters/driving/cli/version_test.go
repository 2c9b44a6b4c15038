package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotlab/slotcheck-cli/internal/logger"
)

func TestVersionCmd(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "slotcheck version")
	assert.Contains(t, buf.String(), version)
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "slotcheck", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestVerboseFlagDoesNotClobberConfig(t *testing.T) {
	// Startup may enable verbose from ui.verbose before the flag parses.
	logger.SetVerbose(true)
	t.Cleanup(func() { logger.SetVerbose(false) })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.True(t, logger.IsVerbose(), "default flag value must not override config")

	rootCmd.SetArgs([]string{"version", "--verbose=false"})
	require.NoError(t, rootCmd.Execute())
	assert.False(t, logger.IsVerbose(), "explicit flag overrides config")
}
