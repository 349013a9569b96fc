package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/mmynk/videostore/internal/config"
	"github.com/mmynk/videostore/internal/metrics"
	"github.com/mmynk/videostore/internal/service"
	"github.com/mmynk/videostore/internal/storage/yamlsheet"
	"github.com/mmynk/videostore/pkg/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("Statement run failed", "error", err)
		os.Exit(1)
	}
}

// run parses flags on top of the environment configuration, renders the
// statements and writes them to out.
func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("statement", flag.ContinueOnError)
	fs.StringVar(&cfg.SheetPath, "sheet", cfg.SheetPath, "rental sheet YAML file, or - for stdin")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "statement format: plain, markup or both")
	fs.StringVar(&cfg.MetricsTextfile, "metrics", cfg.MetricsTextfile, "write Prometheus metrics to this textfile")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.SheetPath == "" {
		return errors.New("no rental sheet given (use -sheet or RENTAL_SHEET)")
	}

	logging.Setup(cfg.LogLevel)
	logger := slog.Default().With("run_id", uuid.New().String())
	logger.Debug("Configuration loaded",
		"sheet", cfg.SheetPath,
		"format", cfg.Format,
		"metrics", cfg.MetricsTextfile,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.New()
	svc := service.NewStatementService(yamlsheet.New(cfg.SheetPath), recorder, logger)

	formats := cfg.Formats()
	res, err := svc.Produce(ctx, formats...)
	if err != nil {
		return err
	}

	for i, name := range formats {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, res.Statements[name])
	}

	if cfg.MetricsTextfile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return err
		}
		logger.Info("Metrics written", "path", cfg.MetricsTextfile)
	}
	return nil
}
