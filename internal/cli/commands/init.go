package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new documentation project",
		Long: `Initialize a new documentation project with a starter content tree
and a devsite.yaml configuration file.

This creates:
  - content/ directory with a homepage and a starter section
  - devsite.yaml configuration file`,
		Example: `  # Initialize in the current directory
  devsite init

  # Initialize in a new directory
  devsite init my-docs

  # Force overwrite an existing config
  devsite init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "devsite.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("devsite.yaml already exists. Use --force to overwrite")
	}

	files := map[string]string{
		"devsite.yaml":                      starterConfig,
		"content/index.md":                  starterHomepage,
		"content/get-started/index.md":      starterSection,
		"content/get-started/quickstart.md": starterQuickstart,
	}

	for rel, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		if _, err := os.Stat(path); err == nil && !force && rel != "devsite.yaml" {
			continue
		}
		if err := os.WriteFile(path, []byte(body), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized documentation project in %s\n", dir)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'devsite serve' to start the development server.")
	return nil
}

const starterConfig = `# Devsite configuration
site_title: "My Docs"
content_dir: content
output_dir: public
port: 8787

# Repository URL for edit-this-page links, e.g.
# repo_url: https://example.com/myorg/my-docs
`

const starterHomepage = `---
title: "Home"
---

# Welcome

This is your documentation homepage. Edit ` + "`content/index.md`" + ` to
change it.
`

const starterSection = `---
title: "Get Started"
order: 1
---

# Get Started

Pages in this section live under ` + "`content/get-started/`" + `.
`

const starterQuickstart = `---
title: "Quickstart"
order: 1
---

# Quickstart

1. Add markdown files under ` + "`content/`" + `.
2. Run ` + "`devsite serve`" + `.
3. Open http://localhost:8787.
`
