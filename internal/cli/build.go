package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/shaibs3/pagecatalog/internal/site"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const rebuildDebounce = 300 * time.Millisecond

func newBuildCommand(s *state) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the catalog as a static HTML site",
		Long: `build writes catalog/index.html, one page per category and one page per
example under the output directory.

With --watch it keeps running and rebuilds whenever the --catalog file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := s.v.GetString(keyOut)
			renderer, err := site.NewRenderer()
			if err != nil {
				return err
			}
			rebuild := func() error {
				return s.build(cmd.OutOrStdout(), renderer, out)
			}
			if err := rebuild(); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			path := s.v.GetString(keyCatalog)
			if path == "" {
				return errors.New("--watch needs a --catalog file to watch")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mutedStyle.Render("watching"), path)
			return watchFile(ctx, path, rebuildDebounce, s.logger, func() {
				if err := rebuild(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "rebuild failed: %v\n", err)
				}
			})
		},
	}

	cmd.Flags().String(keyOut, "public", "output directory")
	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild when the catalog file changes")
	_ = s.v.BindPFlag(keyOut, cmd.Flags().Lookup(keyOut))
	return cmd
}

func (s *state) build(w io.Writer, renderer *site.Renderer, out string) error {
	r, err := s.registry()
	if err != nil {
		return err
	}
	start := time.Now()
	n, err := renderer.Build(out, r.Categories(), r.Pages())
	if err != nil {
		return fmt.Errorf("failed to build site: %w", err)
	}
	s.logger.Info("site built", zap.String("out", out), zap.Int("files", n), zap.Duration("took", time.Since(start)))
	_, err = fmt.Fprintf(w, "%s wrote %d files to %s\n", okStyle.Render("built"), n, out)
	return err
}

// watchFile calls onChange once per burst of writes to path until ctx is done.
// The parent directory is watched since editors often replace files by rename.
func watchFile(ctx context.Context, path string, debounce time.Duration, logger *zap.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("catalog file changed", zap.String("op", event.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			onChange()
		}
	}
}
