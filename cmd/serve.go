package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/server"
)

const reloadDebounce = 500 * time.Millisecond

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site and reloads content when it changes",
	Long: `The serve command loads the content directory, starts the web server and
watches the content directory, reloading posts and site.yaml after changes.
It stops cleanly on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serverPort != 0 {
			appConfig.Server.Addr = fmt.Sprintf(":%d", serverPort)
		}
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	site, err := loadSite(appConfig, logger)
	if err != nil {
		return fmt.Errorf("initial content load failed: %w", err)
	}
	store := content.NewStore(site)
	srv := server.New(appConfig, store, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return watchDirs(gctx, []string{appConfig.ContentDir}, reloadDebounce, logger, func() {
			site, err := loadSite(appConfig, logger)
			if err != nil {
				logger.Error("content reload failed, keeping previous content", zap.Error(err))
				return
			}
			store.Swap(site)
			logger.Info("content reloaded")
		})
	})
	return g.Wait()
}

// watchDirs calls onChange once things settle after a write, create, remove
// or rename anywhere under roots. Directories created later are watched too.
// Missing roots are skipped. It returns when ctx is cancelled.
func watchDirs(ctx context.Context, roots []string, debounce time.Duration, log *zap.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range roots {
		if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
			log.Info("directory not found, not watching", zap.String("dir", root))
			continue
		}
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				log.Warn("error walking", zap.String("path", path), zap.Error(err))
				return nil
			}
			if d.IsDir() {
				if watchErr := watcher.Add(path); watchErr != nil {
					log.Warn("failed to watch", zap.String("path", path), zap.Error(watchErr))
				}
			}
			return nil
		})
		if err != nil {
			log.Warn("error during initial directory walk", zap.String("dir", root), zap.Error(err))
		}
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("change detected", zap.String("path", event.Name), zap.Stringer("op", event.Op))

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					log.Warn("failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 0, "port to serve on (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
