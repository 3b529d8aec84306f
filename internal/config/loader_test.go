package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultSiteTitle, cfg.SiteTitle)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.True(t, cfg.Watch)
	assert.False(t, cfg.Verbose)
	// Relative defaults resolve against the project root
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, DefaultContentDir), cfg.ContentDir)
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, DefaultOutputDir), cfg.OutputDir)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "devsite.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
site_title: "My Docs"
content_dir: docs
port: 9000
repo_url: https://example.com/org/docs
`), 0600))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "My Docs", cfg.SiteTitle)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "https://example.com/org/docs", cfg.RepoURL)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(dir, "docs"), cfg.ContentDir)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "devsite.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("site_title: \"From File\"\n"), 0600))

	t.Setenv("DEVSITE_SITE_TITLE", "From Env")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.SiteTitle)
}

func TestLoadConfig_FlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "devsite.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("site_title: \"From File\"\n"), 0600))

	t.Setenv("DEVSITE_SITE_TITLE", "From Env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("site-title", "", "")
	require.NoError(t, flags.Set("site-title", "From Flag"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)
	assert.Equal(t, "From Flag", cfg.SiteTitle)
}

func TestLoadConfig_UnchangedFlagsIgnored(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("site-title", "", "")

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultSiteTitle, cfg.SiteTitle)
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "devsite.yml"), []byte("{}\n"), 0600))
	nested := filepath.Join(root, "content", "guides")
	require.NoError(t, os.MkdirAll(nested, 0750))

	assert.Equal(t, root, FindProjectRoot(nested))

	// No config anywhere up the tree
	assert.Equal(t, "", FindProjectRoot(t.TempDir()))
}
