package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nethippo/developer-website/internal/config"
	"github.com/nethippo/developer-website/internal/importer"
)

// ImportOptions holds options for the import command.
type ImportOptions struct {
	OutDir string
	Force  bool
}

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	opts := &ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import <file.html> [file.html...]",
		Short: "Import HTML documents as markdown pages",
		Long: `Convert HTML files into markdown pages under the content directory.

The page title is taken from the document's <title> element, falling
back to the first <h1>. The converted page carries a frontmatter block
so it slots into the navigation tree like hand-written content.`,
		Example: `  # Import a single document
  devsite import docs/legacy/install.html

  # Import into a subdirectory of the content tree
  devsite import --out guides legacy/*.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.OutDir, "out", "", "Subdirectory of the content directory to import into")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing pages")

	return cmd
}

func runImport(cmd *cobra.Command, opts *ImportOptions, args []string) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	outDir := filepath.Join(cfg.ContentDir, opts.OutDir)
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, src := range args {
		data, err := os.ReadFile(src) //nolint:gosec // G304: user-supplied input file
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", src, err)
		}

		doc, err := importer.Convert(string(data))
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", src, err)
		}

		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".md"
		dst := filepath.Join(outDir, name)
		if _, err := os.Stat(dst); err == nil && !opts.Force {
			return fmt.Errorf("%s already exists. Use --force to overwrite", dst)
		}

		if err := os.WriteFile(dst, []byte(doc.Page()), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}

		logger.Debug("imported page", "source", src, "dest", dst, "title", doc.Title)
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s -> %s\n", src, dst)
	}

	return nil
}
