package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreduce/config"
	"github.com/katalvlaran/rowreduce/elimination"
	"github.com/katalvlaran/rowreduce/matrix"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New())
	require.NoError(t, err)
	assert.Equal(t, elimination.RREF, cfg.Mode)
	assert.Equal(t, config.OutputText, cfg.Output)
	assert.Equal(t, 6, cfg.Digits)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
	assert.Equal(t, matrix.DefaultEpsilon, cfg.Epsilon)
	assert.Empty(t, cfg.File)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("ROWREDUCE_LOG_LEVEL", "debug")
	t.Setenv("ROWREDUCE_MODE", "ref")

	cfg, err := config.Load(config.New())
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, elimination.REF, cfg.Mode)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("ROWREDUCE_OUTPUT", "yaml")

	v := config.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, config.AddFlags(fs, v))
	require.NoError(t, fs.Parse([]string{"-o", "latex", "--digits", "2"}))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, config.OutputLaTeX, cfg.Output)
	assert.Equal(t, 2, cfg.Digits)
}

func TestLoad_UnsetFlagsKeepEnvironment(t *testing.T) {
	t.Setenv("ROWREDUCE_OUTPUT", "json")

	v := config.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, config.AddFlags(fs, v))
	require.NoError(t, fs.Parse(nil))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, config.OutputJSON, cfg.Output)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rowreduce.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: ref\ndigits: 3\noutput: yml\n"), 0o600))

	v := config.New()
	v.Set(config.KeyConfig, path)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, elimination.REF, cfg.Mode)
	assert.Equal(t, 3, cfg.Digits)
	assert.Equal(t, config.OutputYAML, cfg.Output)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	v := config.New()
	v.Set(config.KeyConfig, filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := config.Load(v)
	assert.ErrorIs(t, err, config.ErrRead)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value interface{}
	}{
		{config.KeyMode, "gauss"},
		{config.KeyOutput, "xml"},
		{config.KeyDigits, -1},
		{config.KeyDigits, 16},
		{config.KeyLogLevel, "loud"},
		{config.KeyEpsilon, 0.0},
		{config.KeyEpsilon, -1e-9},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			v := config.New()
			v.Set(tc.key, tc.value)
			cfg, err := config.Load(v)
			assert.Nil(t, cfg)
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}
