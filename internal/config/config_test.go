package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vsh/pkg/vsh"
)

func writeConfig(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, vsh.ConfigFileName, []byte(content), 0644))
	return fs
}

func TestLoad_AllFields(t *testing.T) {
	fs := writeConfig(t, `vfs: fixtures/tree.json
script: fixtures/demo.vsh
prompt:
  user: alice
  host: wonderland
history_limit: 50
banner: false
`)

	cfg, err := Load(fs, vsh.ConfigFileName)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "fixtures/tree.json", cfg.VFS)
	assert.Equal(t, "fixtures/demo.vsh", cfg.Script)
	assert.Equal(t, "alice", cfg.Prompt.User)
	assert.Equal(t, "wonderland", cfg.Prompt.Host)
	assert.Equal(t, 50, cfg.HistoryLimit)
	require.NotNil(t, cfg.Banner)
	assert.False(t, *cfg.Banner)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), vsh.ConfigFileName)
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	fs := writeConfig(t, "{{invalid")

	cfg, err := Load(fs, vsh.ConfigFileName)
	assert.ErrorIs(t, err, vsh.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoad_NegativeHistoryLimit(t *testing.T) {
	fs := writeConfig(t, "history_limit: -1\n")

	_, err := Load(fs, vsh.ConfigFileName)
	assert.ErrorIs(t, err, vsh.ErrInvalidConfig)
}

func TestLoad_EmptyFile(t *testing.T) {
	fs := writeConfig(t, "")

	cfg, err := Load(fs, vsh.ConfigFileName)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, FileConfig{}, *cfg)
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolve_Defaults(t *testing.T) {
	s := Resolve(Flags{}, envMap(nil), nil, Fallback{})

	assert.Equal(t, Settings{
		User:         vsh.DefaultUser,
		Host:         vsh.DefaultHost,
		HistoryLimit: vsh.DefaultHistoryLimit,
		Banner:       true,
	}, s)
}

func TestResolve_Precedence(t *testing.T) {
	banner := false
	file := &FileConfig{
		VFS:          "file.json",
		Script:       "file.vsh",
		Prompt:       PromptConfig{User: "fileuser", Host: "filehost"},
		HistoryLimit: 7,
		Banner:       &banner,
	}
	fallback := Fallback{User: "osuser", Host: "oshost"}

	s := Resolve(Flags{}, envMap(nil), file, fallback)
	assert.Equal(t, "file.json", s.VFS)
	assert.Equal(t, "file.vsh", s.Script)
	assert.Equal(t, "fileuser", s.User)
	assert.Equal(t, "filehost", s.Host)
	assert.Equal(t, 7, s.HistoryLimit)
	assert.False(t, s.Banner)

	env := envMap(map[string]string{
		EnvVFS: "env.json", EnvScript: "env.vsh", EnvUser: "envuser", EnvHost: "envhost",
	})
	s = Resolve(Flags{}, env, file, fallback)
	assert.Equal(t, "env.json", s.VFS)
	assert.Equal(t, "env.vsh", s.Script)
	assert.Equal(t, "envuser", s.User)
	assert.Equal(t, "envhost", s.Host)

	s = Resolve(Flags{VFS: "flag.json", Script: "flag.vsh"}, env, file, fallback)
	assert.Equal(t, "flag.json", s.VFS)
	assert.Equal(t, "flag.vsh", s.Script)

	s = Resolve(Flags{}, envMap(nil), nil, fallback)
	assert.Equal(t, "osuser", s.User)
	assert.Equal(t, "oshost", s.Host)
}

func TestResolve_NoBannerFlagWins(t *testing.T) {
	banner := true
	s := Resolve(Flags{NoBanner: true}, envMap(nil), &FileConfig{Banner: &banner}, Fallback{})
	assert.False(t, s.Banner)
}

func TestResolve_KeyHelp(t *testing.T) {
	s := Resolve(Flags{}, envMap(nil), nil, Fallback{})
	assert.False(t, s.KeyHelp)

	s = Resolve(Flags{KeyHelp: true}, envMap(nil), nil, Fallback{})
	assert.True(t, s.KeyHelp)

	s = Resolve(Flags{}, envMap(nil), &FileConfig{KeyHelp: true}, Fallback{})
	assert.True(t, s.KeyHelp)
}

func TestLoad_KeyHelp(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "vsh.yaml", []byte("key_help: true\n"), 0644))

	cfg, err := Load(fs, "vsh.yaml")
	require.NoError(t, err)
	assert.True(t, cfg.KeyHelp)
}
