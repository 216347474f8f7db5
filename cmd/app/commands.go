package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/uos-projects/pages/internal/app"
	"github.com/uos-projects/pages/internal/site"
)

func serve(cmd *cobra.Command, _ []string) error {
	cfg, lg, err := loadConfig()
	if err != nil {
		return err
	}

	service, err := app.New(cfg, lg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := service.Start(ctx, flWatch || cfg.Content.Watch); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	runErr := make(chan error, 1)
	go func() {
		err := service.Serve()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			runErr <- err
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := service.GracefulShutdown(shutdownCtx); err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}

	select {
	case err := <-runErr:
		return err
	default:
		return nil
	}
}

func check(cmd *cobra.Command, _ []string) error {
	cfg, lg, err := loadConfig()
	if err != nil {
		return err
	}

	service, err := app.New(cfg, lg)
	if err != nil {
		return err
	}

	if _, err := service.Load(cmd.Context()); err != nil {
		return err
	}

	report := service.Manager.Audit()
	printReport(cmd.OutOrStdout(), report)

	if !report.Clean() {
		lg.Warn("content has problems", "rejected", len(report.Diagnostics), "languages_missing_keys", len(report.MissingTranslations))
	}

	return strictResult(report, flStrict || cfg.Build.Strict)
}

// strictResult fails only on rejected documents. Missing keys are still
// served through the default language and stay warnings.
func strictResult(r site.Report, strict bool) error {
	if !strict || len(r.Diagnostics) == 0 {
		return nil
	}
	return fmt.Errorf("check failed: %d rejected documents", len(r.Diagnostics))
}

func export(cmd *cobra.Command, _ []string) error {
	cfg, lg, err := loadConfig()
	if err != nil {
		return err
	}

	service, err := app.New(cfg, lg)
	if err != nil {
		return err
	}

	out := flOut
	if out == "" {
		out = cfg.Build.Out
	}

	return service.Export(cmd.Context(), out)
}

func printReport(w io.Writer, r site.Report) {
	for _, d := range r.Diagnostics {
		fmt.Fprintf(w, "rejected  %s\n", d.Error())
	}
	for _, lang := range slices.Sorted(maps.Keys(r.MissingTranslations)) {
		for _, key := range r.MissingTranslations[lang] {
			fmt.Fprintf(w, "fallback  %s: %s\n", lang, key)
		}
	}
	if r.Clean() {
		fmt.Fprintln(w, "ok")
	}
}
