package config

// Default configuration values.
const (
	DefaultSiteTitle  = "Developer Docs"
	DefaultContentDir = "content"
	DefaultOutputDir  = "public"
	DefaultPort       = 8787
)
