package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/faizmokh/laporan/internal/stats"
)

const watchDebounce = 200 * time.Millisecond

func newWatchCommand(ctx context.Context, st *state) *cobra.Command {
	var flags rangeFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print statistics and reprint them whenever a report changes.",
		Long: "watch prints the statistics report, then recomputes it from scratch each time a file " +
			"under the report root changes. A report that fails to load is shown as an error and " +
			"watching continues. Stop with Ctrl+C.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := st.manager.BasePath()
			if info, err := os.Stat(root); err != nil {
				return fmt.Errorf("watch report root: %w", err)
			} else if !info.IsDir() {
				return fmt.Errorf("watch report root: %s is not a directory", root)
			}

			render := func() {
				start, end, err := resolveRange(st, flags)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
					return
				}
				summary, err := stats.Compute(ctx, st.reader, start, end)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
					return
				}
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), summary.Render())
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			g, gCtx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return watchReports(gCtx, root, st.logger, render)
			})

			g.Go(func() error {
				quit := make(chan os.Signal, 1)
				signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
				defer signal.Stop(quit)

				select {
				case sig := <-quit:
					st.logger.Info("received shutdown signal", slog.String("signal", sig.String()))
					cancel()
				case <-gCtx.Done():
				}
				return nil
			})

			return g.Wait()
		},
	}

	flags.register(cmd)

	return cmd
}

// watchReports calls render once, then again after each burst of file changes
// under root settles, until ctx is cancelled.
func watchReports(ctx context.Context, root string, logger *slog.Logger, render func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}
	logger.Info("watcher: started", slog.String("root", root))

	render()

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(watchDebounce)
			timerCh = timer.C
			return
		}
		timer.Reset(watchDebounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			render()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Info("watcher: change", slog.String("op", ev.Op.String()), slog.String("path", ev.Name))
			schedule()

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: error", slog.String("error", werr.Error()))
		}
	}
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}
