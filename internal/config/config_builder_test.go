// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func baseAuthEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"FIREBASE_PROJECT_ID":   "fisio-app",
		"FIREBASE_CLIENT_EMAIL": "svc@fisio-app.iam.gserviceaccount.com",
		"FIREBASE_PRIVATE_KEY":  "key",
		"APP_AUTH_DISABLED":     "",
		"APP_FISIO_FROM_TOKEN":  "",
		"CONFIG":                "",
	})
}

func TestGetStructuredConfig_EnvOnly(t *testing.T) {
	baseAuthEnv(t)
	setEnvVars(t, map[string]string{"PORT": "4000", "HOST_AZURE": "db"})

	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "db", cfg.Storage.DB.Host)
	assert.False(t, cfg.App.AuthDisabled)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	baseAuthEnv(t)
	setEnvVars(t, map[string]string{"PORT": "4000", "LOG_LEVEL": "info"})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--port", "5000", "--fisio-from-token"}))

	cfg, err := GetStructuredConfig(flags)

	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.True(t, cfg.App.FisioFromToken)
	assert.Equal(t, "info", cfg.Log.Level, "unset flag must not mask env value")
}

func TestGetStructuredConfig_JSONOverridesFlags(t *testing.T) {
	baseAuthEnv(t)
	setEnvVars(t, map[string]string{"PORT": "4000"})
	path := writeTempJSONConfig(t, `{
		"server": {"port": 6000, "shutdown_timeout": "3s"},
		"storage": {"db": {"host": "json-db", "ping_timeout": 2000000000}}
	}`)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-p", "5000", "-c", path}))

	cfg, err := GetStructuredConfig(flags)

	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "json-db", cfg.Storage.DB.Host)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.PingTimeout)
}

func TestGetStructuredConfig_MissingJSONFile(t *testing.T) {
	baseAuthEnv(t)
	setEnvVars(t, map[string]string{"CONFIG": filepath.Join(t.TempDir(), "missing.json")})

	cfg, err := GetStructuredConfig(nil)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestGetStructuredConfig_InvalidJSON(t *testing.T) {
	baseAuthEnv(t)
	setEnvVars(t, map[string]string{"CONFIG": writeTempJSONConfig(t, `{"server":`)})

	_, err := GetStructuredConfig(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestGetStructuredConfig_ValidationFails(t *testing.T) {
	baseAuthEnv(t)
	setEnvVars(t, map[string]string{"FIREBASE_PRIVATE_KEY": ""})

	_, err := GetStructuredConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestGetStorageConfig_IgnoresAuthSettings(t *testing.T) {
	baseAuthEnv(t)
	setEnvVars(t, map[string]string{
		"FIREBASE_PRIVATE_KEY": "",
		"DATABASE_URI":         "postgres://fisio@db:5432/fisio",
	})

	cfg, err := GetStorageConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "postgres://fisio@db:5432/fisio", cfg.Storage.DB.DSN)
}

func TestGetStorageConfig_InvalidPool(t *testing.T) {
	baseAuthEnv(t)
	setEnvVars(t, map[string]string{"DB_MAX_OPEN_CONNS": "-1"})

	_, err := GetStorageConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
