package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nethippo/developer-website/internal/config"
	"github.com/nethippo/developer-website/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port  int
	Watch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the documentation development server",
		Long: `Start a local web server that renders the markdown content directory
as a documentation site.

The server watches the content directory and live-reloads connected
browsers when a markdown file changes.`,
		Example: `  # Start on the default port
  devsite serve

  # Start on a custom port
  devsite serve --port 3000

  # Serve without watching for changes
  devsite serve --watch=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8787)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch content for changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	port := cfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	watch := cfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	lib, idx, err := openLibrary(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = idx.Close() }()

	secret := cfg.SessionSecret
	if secret == "" {
		// Ephemeral secret; sessions reset on restart.
		secret = randomSecret()
	}

	server := ui.NewServer(ui.Config{
		Library:       lib,
		Index:         idx,
		Port:          port,
		Watch:         watch,
		SiteTitle:     cfg.SiteTitle,
		RepoURL:       cfg.RepoURL,
		SessionSecret: secret,
		Logger:        logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

func randomSecret() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
