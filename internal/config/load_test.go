package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName), noEnv)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Game.Dir)
	assert.Equal(t, "", cfg.Game.Platform)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Loader.TargetAssembly)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[game]
dir = "/games/Cities_Skylines"
platform = "linux"

[loader]
target_assembly = "/mods/PatchLoader.dll"

[log]
level = "debug"
`)
	cfg, err := Load(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "/games/Cities_Skylines", cfg.Game.Dir)
	assert.Equal(t, "linux", cfg.Game.Platform)
	assert.Equal(t, "/mods/PatchLoader.dll", cfg.Loader.TargetAssembly)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[loader]\ntarget_assembly = \"/mods/PatchLoader.dll\"\n")
	cfg, err := Load(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Game.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "[game]\ndir = \"/from/file\"\n")
	cfg, err := Load(path, envMap(map[string]string{
		EnvGameDir:        "/from/env",
		EnvTargetAssembly: "/env/PatchLoader.dll",
		EnvPlatform:       "darwin",
		EnvLogLevel:       "error",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Game.Dir)
	assert.Equal(t, "/env/PatchLoader.dll", cfg.Loader.TargetAssembly)
	assert.Equal(t, "darwin", cfg.Game.Platform)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadEmptyEnvIsIgnored(t *testing.T) {
	path := writeConfig(t, "[game]\ndir = \"/from/file\"\n")
	cfg, err := Load(path, envMap(map[string]string{EnvGameDir: ""}))
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.Game.Dir)
}

func TestLoadExpandsHome(t *testing.T) {
	orig := expandHome
	t.Cleanup(func() { expandHome = orig })
	expandHome = func(p string) (string, error) {
		if len(p) > 0 && p[0] == '~' {
			return "/home/player" + p[1:], nil
		}
		return p, nil
	}

	path := writeConfig(t, "[game]\ndir = \"~/games/cs\"\n[loader]\ntarget_assembly = \"~/mods/PatchLoader.dll\"\n")
	cfg, err := Load(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "/home/player/games/cs", cfg.Game.Dir)
	assert.Equal(t, "/home/player/mods/PatchLoader.dll", cfg.Loader.TargetAssembly)
}

func TestLoadExpandError(t *testing.T) {
	orig := expandHome
	t.Cleanup(func() { expandHome = orig })
	expandHome = func(string) (string, error) { return "", errors.New("no home") }

	_, err := Load(writeConfig(t, "[game]\ndir = \"~/cs\"\n"), noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no home")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "[game]\ndir = \".\"\nexe = \"Cities\"\n"), noEnv)
	require.ErrorIs(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "unrecognized keys")
}

func TestLoadRejectsBadTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "[game\n"), noEnv)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		want    string
	}{
		{name: "platform", content: "[game]\nplatform = \"amiga\"\n", want: "game.platform"},
		{name: "log level", content: "[log]\nlevel = \"loud\"\n", want: "log.level"},
		{name: "empty dir", content: "[game]\ndir = \"  \"\n", want: "game.dir"},
		{name: "env platform", content: "", env: map[string]string{EnvPlatform: "plan9"}, want: "game.platform"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), envMap(tt.env))
			require.ErrorIs(t, err, ErrConfigValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadReadError(t *testing.T) {
	_, err := Load(t.TempDir(), noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestPlatformOr(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "linux", cfg.PlatformOr("linux"))
	cfg.Game.Platform = "darwin"
	assert.Equal(t, "darwin", cfg.PlatformOr("linux"))
}

func TestValidateAcceptsEveryLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "trace", "info", "warn", "warning", "error", "off", "none", "disabled"} {
		cfg := Default()
		cfg.Log.Level = level
		assert.NoError(t, cfg.Validate("test"), level)
	}
}

func TestValidateAcceptsUppercaseLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "DEBUG"
	assert.NoError(t, cfg.Validate("test"))
}
