package config

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the rest of the test and restores
// it on cleanup (testing.T.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestResolve_IdentityFromEnv(t *testing.T) {
	cfg, err := Resolve(Options{
		Mode:       Embedded,
		ScriptPath: "/opt/tools/deploy.py",
		Fs:         afero.NewMemMapFs(),
		Getenv:     env(map[string]string{"deploy_cl_file": "project4"}),
	})
	require.NoError(t, err)

	assert.Equal(t, "deploy_cl_file", cfg.EnvVarName)
	assert.Equal(t, "/opt/tools/deploy.py_cl_file_project4", cfg.ListFile)
	assert.Equal(t, "/opt/tools/deploy.py_history_file_project4", cfg.HistoryFile)
	assert.Equal(t, "/opt/tools", cfg.ScriptDir)
	assert.Equal(t, Embedded, cfg.Mode)
	assert.Equal(t, ShellInterp, cfg.Shell)
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
}

func TestResolve_SharedFileWhenPresent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/opt/tools/cl_cl_file", []byte("ls\n"), 0o644))

	cfg, err := Resolve(Options{ScriptPath: "/opt/tools/cl", Fs: fs, Getenv: env(nil)})
	require.NoError(t, err)
	assert.Equal(t, "/opt/tools/cl_cl_file", cfg.ListFile)
	assert.Equal(t, "/opt/tools/cl_history_file", cfg.HistoryFile)
}

func TestResolve_PerUserFallback(t *testing.T) {
	cfg, err := Resolve(Options{ScriptPath: "/opt/tools/cl", Fs: afero.NewMemMapFs(), Getenv: env(map[string]string{"USER": "tester"})})
	require.NoError(t, err)
	assert.Contains(t, cfg.ListFile, "/opt/tools/cl_cl_file_")
	assert.Contains(t, cfg.HistoryFile, "/opt/tools/cl_history_file_")
}

func TestResolve_ListFileOverride(t *testing.T) {
	cfg, err := Resolve(Options{
		ScriptPath: "/opt/tools/cl",
		ListFile:   "/tmp/mine",
		Fs:         afero.NewMemMapFs(),
		Getenv:     env(map[string]string{"cl_cl_file": "x"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mine", cfg.ListFile)
	assert.Equal(t, "/opt/tools/cl_history_file_x", cfg.HistoryFile)
}

func TestResolve_BareNameFoundOnPath(t *testing.T) {
	lookPath := func(name string) (string, error) {
		if name == "cmdlist" {
			return "/usr/local/bin/cmdlist", nil
		}
		return "", errors.New("not found")
	}
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/usr/local/bin/cmdlist_cl_file", nil, 0o644))

	for _, dir := range []string{t.TempDir(), t.TempDir()} {
		chdir(t, dir)
		cfg, err := Resolve(Options{ScriptPath: "cmdlist", Fs: fs, Getenv: env(nil), LookPath: lookPath})
		require.NoError(t, err)
		assert.Equal(t, "/usr/local/bin/cmdlist", cfg.ScriptPath)
		assert.Equal(t, "/usr/local/bin", cfg.ScriptDir)
		assert.Equal(t, "/usr/local/bin/cmdlist_cl_file", cfg.ListFile)
		assert.Equal(t, "/usr/local/bin/cmdlist_history_file", cfg.HistoryFile)
	}
}

func TestResolve_PathSkipsLookup(t *testing.T) {
	lookPath := func(string) (string, error) {
		t.Fatal("lookup of a path")
		return "", nil
	}
	cfg, err := Resolve(Options{ScriptPath: "/opt/tools/cl", Fs: afero.NewMemMapFs(), Getenv: env(nil), LookPath: lookPath})
	require.NoError(t, err)
	assert.Equal(t, "/opt/tools", cfg.ScriptDir)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/logs/cmdlist.log", ExpandHome("~/logs/cmdlist.log"))
	assert.Equal(t, "/var/log/cmdlist.log", ExpandHome("/var/log/cmdlist.log"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}

func TestHostNames(t *testing.T) {
	cfg := Config{ScriptName: "deploy.py"}
	assert.Equal(t, []string{"deploy.py", "deploy.sh"}, cfg.HostNames())
}

func TestLoadSettings(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.yaml", []byte("editor: nano\nhistory_limit: 50\nshell: system\nno_color: true\n"), 0o644))

	s, err := LoadSettings(fs, "/cfg/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, Settings{Editor: "nano", HistoryLimit: 50, Shell: ShellSystem, NoColor: true}, s)

	s, err = LoadSettings(fs, "/cfg/missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
}

func TestLoadSettings_Invalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c.yaml", []byte("shell: fish\n"), 0o644))
	_, err := LoadSettings(fs, "/c.yaml")
	assert.ErrorContains(t, err, "unknown shell")

	require.NoError(t, afero.WriteFile(fs, "/d.yaml", []byte("editor: [\n"), 0o644))
	_, err = LoadSettings(fs, "/d.yaml")
	assert.Error(t, err)
}
