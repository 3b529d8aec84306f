package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nethippo/developer-website/internal/config"
	"github.com/nethippo/developer-website/internal/sitegen"
)

// BuildOptions holds options for the build command.
type BuildOptions struct {
	OutputDir string
	Minify    bool
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a static copy of the documentation site",
		Long: `Render every page of the content directory into a static site.

The output contains one HTML file per page with pretty URLs, the
bundled assets, and a JSON search index for client-side filtering.`,
		Example: `  # Build into the configured output directory
  devsite build

  # Build into a custom directory without minification
  devsite build --output-dir dist --minify=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Output directory (default: public)")
	cmd.Flags().BoolVar(&opts.Minify, "minify", true, "Minify CSS and JS assets")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *BuildOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	outputDir := cfg.OutputDir
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}

	lib, idx, err := openLibrary(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = idx.Close() }()

	logger.Debug("building static site", "pages", lib.Len(), "output", outputDir)

	result, err := sitegen.Build(lib, sitegen.Config{
		SiteTitle: cfg.SiteTitle,
		RepoURL:   cfg.RepoURL,
		OutputDir: outputDir,
		Minify:    opts.Minify,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages and %d assets into %s\n",
		result.Pages, result.Assets, outputDir)
	return nil
}
