// Package ui provides the development web server for the documentation
// site.
package ui

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/search"
	docsFeature "github.com/nethippo/developer-website/internal/ui/features/docs"
	"github.com/nethippo/developer-website/internal/ui/notifier"
	"github.com/nethippo/developer-website/internal/ui/router"
)

// Server is the main UI server.
type Server struct {
	library      *content.Library
	index        *search.Index
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	siteTitle    string
	repoURL      string
	logger       *slog.Logger
	notifier     *notifier.Notifier
}

// Config holds configuration for the UI server.
type Config struct {
	Library       *content.Library
	Index         *search.Index
	Port          int
	Watch         bool
	SiteTitle     string
	RepoURL       string
	SessionSecret string
	Logger        *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return &Server{
		library:      cfg.Library,
		index:        cfg.Index,
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		siteTitle:    cfg.SiteTitle,
		repoURL:      cfg.RepoURL,
		logger:       cfg.Logger,
		notifier:     notifier.New(),
	}
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting docs server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	featureCfg := docsFeature.Config{
		SiteTitle: s.siteTitle,
		RepoURL:   s.repoURL,
		IsDev:     s.watch,
	}
	if err := router.SetupRoutes(r, s.library, s.index, s.sessionStore, s.notifier, featureCfg, s.logger); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchContent(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down docs server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchContent watches the content directory and reloads the library and
// search index on markdown changes.
func (s *Server) watchContent(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, s.library.Dir()); err != nil {
		s.logger.Error("failed to watch content directory", "error", err)
		// Don't fail - continue without watching
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, ".md") {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("content changed, reloading", "file", event.Name)

				if err := s.library.Reload(); err != nil {
					s.logger.Error("content reload failed", "error", err)
					return
				}
				if err := s.index.Rebuild(s.library); err != nil {
					s.logger.Error("search index rebuild failed", "error", err)
				}

				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
