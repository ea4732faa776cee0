// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/starford/algiz/internal/a11y"
	"github.com/starford/algiz/internal/apperr"
	"github.com/starford/algiz/internal/models"
	"github.com/starford/algiz/internal/notes"
	"github.com/starford/algiz/internal/report"
	"github.com/starford/algiz/internal/storage"
	"github.com/starford/algiz/internal/watch"
)

// Run executes the configured checks with the given options. It returns
// apperr.ErrChecksFailed (wrapped) when the run found hard failures; warnings
// alone never produce an error.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{stdout: os.Stdout}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Diagnostics go to stderr; the report owns stdout.
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
		Level:   cfg.App.LogLevel.Level(),
	}))
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		slog.String("site_root", cfg.Site.Root),
		slog.String("page", cfg.Site.Page),
		slog.String("notes_dir", cfg.Notes.Dir),
		slog.Bool("watch", cfg.Watch.Enabled))

	store, err := storage.NewFS(cfg.Site.Root)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	reporter := report.New(app.stdout)

	runChecks := func() report.Summary {
		var total report.Summary

		if cfg.Checks.Notes {
			reporter.Banner("Notes consistency check")
			sections := notes.Check(ctx, store, notes.Config{
				Dir:   cfg.Notes.Dir,
				Index: cfg.Notes.Index,
			}, logger)
			reporter.Print(sections)
			sum := report.Count(sections)
			total.Failures += sum.Failures
			total.Warnings += sum.Warnings
		}

		if cfg.Checks.Accessibility {
			reporter.Banner("Accessibility check: " + cfg.Site.Page)
			sections := checkPage(store, cfg.Site.Page, logger)
			reporter.Print(sections)
			sum := report.Count(sections)
			total.Failures += sum.Failures
			total.Warnings += sum.Warnings
		}

		reporter.PrintSummary(total)
		return total
	}

	sum := runChecks()

	if !cfg.Watch.Enabled {
		if sum.Failures > 0 {
			return fmt.Errorf("%d hard failures: %w", sum.Failures, apperr.ErrChecksFailed)
		}
		return nil
	}

	// Watch mode: re-run on document changes until interrupted. The exit
	// code reflects the final run's state.
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	last := sum

	g, gCtx := errgroup.WithContext(watchCtx)

	g.Go(func() error {
		return watch.Watch(gCtx, store.Root(), cfg.Watch.Debounce.Std(), logger, func() {
			s := runChecks()
			mu.Lock()
			last = s
			mu.Unlock()
		})
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("watch error: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if last.Failures > 0 {
		return fmt.Errorf("%d hard failures: %w", last.Failures, apperr.ErrChecksFailed)
	}
	return nil
}

// checkPage reads the accessibility target and runs the checklist over it. A
// missing or unreadable page is a hard failure; the checklist still runs over
// empty input so the report is always complete.
func checkPage(store storage.Provider, page string, logger *slog.Logger) []report.Section {
	var sections []report.Section
	doc := models.Document{Name: page}
	if data, err := store.Read(page); err != nil {
		input := report.Section{Title: "Input"}
		input.Fail("page %s is missing or unreadable (%v)", page, err)
		sections = append(sections, input)
	} else {
		doc.Content = string(data)
	}
	return append(sections, a11y.Check(doc, logger)...)
}
