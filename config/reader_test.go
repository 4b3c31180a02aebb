package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MixinNetwork/fraction/logger"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	require := require.New(t)

	custom, err := Initialize("./config.example.toml")
	require.Nil(err)

	require.Equal(true, custom.Shell.Quiet)
	require.Equal("> ", custom.Shell.Prompt)
	require.Equal(OutputFormatJSON, custom.Output.Format)
	require.Equal(4, custom.Output.DecimalPlaces)
	require.Equal(logger.VERBOSE, custom.Log.Level)
	require.Equal("(?i)solve", custom.Log.Filter)
	require.Equal(10, custom.Log.Limiter)

	custom = Default()
	require.Equal(false, custom.Shell.Quiet)
	require.Equal("", custom.Shell.Prompt)
	require.Equal(OutputFormatText, custom.Output.Format)
	require.Equal(0, custom.Output.DecimalPlaces)
	require.Equal(logger.ERROR, custom.Log.Level)
	require.Nil(custom.Validate())

	_, err = Initialize("./config.missing.toml")
	require.NotNil(err)
}

func TestConfigDefaults(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")

	err := os.WriteFile(file, []byte("[output]\ndecimal-places = 2\n"), 0644)
	require.Nil(err)
	custom, err := Initialize(file)
	require.Nil(err)
	require.Equal(false, custom.Shell.Quiet)
	require.Equal(OutputFormatText, custom.Output.Format)
	require.Equal(2, custom.Output.DecimalPlaces)
	require.Equal(logger.ERROR, custom.Log.Level)

	err = os.WriteFile(file, []byte("[output]\nformat = \"yaml\"\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)

	err = os.WriteFile(file, []byte("[output]\ndecimal-places = 64\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)

	err = os.WriteFile(file, []byte("[output\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)
}
