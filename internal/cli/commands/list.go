package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nethippo/developer-website/internal/config"
	"github.com/nethippo/developer-website/internal/content"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all pages in the content directory",
		Long:  `List every discovered page with its title, URL, and source file.`,
		Example: `  # List all pages
  devsite list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	cfg := config.FromContext(cmd.Context())

	lib, idx, err := openLibrary(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = idx.Close() }()

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Title", "URL", "Source"})

	lib.Walk(func(page *content.Page) {
		t.AppendRow(table.Row{page.DisplayName, page.URL, page.SourcePath})
	})

	t.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "%d pages\n", lib.Len())
	return nil
}
