package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, []string{"src"}, cfg.Roots)
	require.Equal(t, 500, cfg.WarnLimit)
	require.Equal(t, 700, cfg.FailLimit)
	require.Equal(t, DefaultExtensions, cfg.Extensions)
	require.Equal(t, []string{"node_modules", ".git"}, cfg.ExcludeDirs)
	require.Equal(t, "large_files_report.txt", cfg.ReportFile)
}

func TestLoad_EnvOverridesThresholds(t *testing.T) {
	t.Setenv("LOCWATCH_WARN_LIMIT", "100")
	t.Setenv("LOCWATCH_FAIL_LIMIT", "200")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 100, cfg.WarnLimit)
	require.Equal(t, 200, cfg.FailLimit)
}

func TestLoad_EnvOverridesRoots(t *testing.T) {
	t.Setenv("LOCWATCH_ROOTS", "app,packages/web")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, []string{"app", "packages/web"}, cfg.Roots)
}

func TestLoad_EnvOverridesReportFile(t *testing.T) {
	t.Setenv("LOCWATCH_REPORT_FILE", "out/report.txt")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "out/report.txt", cfg.ReportFile)
}

func TestExpandPath(t *testing.T) {
	require.Equal(t, "/abs/path", expandPath("/abs/path"))
	require.Equal(t, "rel/path", expandPath("rel/path"))

	home := expandPath("~/x")
	require.NotEqual(t, "~/x", home)
	require.Contains(t, home, "/x")
}
