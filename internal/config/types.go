// Package config provides configuration management for the developer
// website CLI. Configuration is loaded from a devsite.yaml file,
// DEVSITE_ environment variables, and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	SiteTitle     string `koanf:"site_title"`
	ContentDir    string `koanf:"content_dir"`
	OutputDir     string `koanf:"output_dir"`
	Port          int    `koanf:"port"`
	RepoURL       string `koanf:"repo_url"`
	Watch         bool   `koanf:"watch"`
	SessionSecret string `koanf:"session_secret"`
	Verbose       bool   `koanf:"verbose"`

	// ProjectRoot is the directory containing the config file, or the
	// working directory when no config file was found. Relative paths
	// in the config are resolved against it.
	ProjectRoot string `koanf:"-"`
}
