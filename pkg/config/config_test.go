package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/gosea/pkg/logger"
	"github.com/betbot/gosea/sea/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "gosea.yaml", `
network: rinkeby
api_key: file-key
page_size: 50
orderbook_version: 0
log:
  level: debug
`)
	cfg, err := Load(path, writeFile(t, ".env", ""))
	require.NoError(t, err)

	assert.Equal(t, "rinkeby", cfg.Network)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, 50, cfg.PageSize)
	require.NotNil(t, cfg.OrderbookVersion)
	assert.Equal(t, 0, *cfg.OrderbookVersion)
	assert.Equal(t, "debug", cfg.Log.Level)

	cc := cfg.ClientConfig(logger.NewNop())
	assert.Equal(t, types.NetworkRinkeby, cc.Network)
	assert.Equal(t, 0, cc.OrderbookVersion)
	assert.Equal(t, 50, cc.PageSize)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", writeFile(t, ".env", ""))
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.Network)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 1, *cfg.OrderbookVersion)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "gosea.yaml", "api_key: file-key\npage_size: 50\n")
	envFile := writeFile(t, ".env", "GOSEA_API_KEY=dotenv-key\n")
	t.Setenv("GOSEA_PAGE_SIZE", "10")
	// restore GOSEA_API_KEY after godotenv sets it
	t.Setenv("GOSEA_API_KEY", "")
	os.Unsetenv("GOSEA_API_KEY")

	cfg, err := Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.APIKey)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestValidate(t *testing.T) {
	negative := -1
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown network", func(c *Config) { c.Network = "ropsten" }},
		{"negative page size", func(c *Config) { c.PageSize = -5 }},
		{"negative orderbook version", func(c *Config) { c.OrderbookVersion = &negative }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.ApplyDefaults()
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), writeFile(t, ".env", ""))
	assert.Error(t, err)
}
