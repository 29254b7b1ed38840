package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/yanqian/summarizer-console/internal/domain/presenter"
	"github.com/yanqian/summarizer-console/internal/domain/summarizer"
	"github.com/yanqian/summarizer-console/internal/infra/clipboard"
	"github.com/yanqian/summarizer-console/internal/infra/config"
	"github.com/yanqian/summarizer-console/internal/infra/summaryapi"
	"github.com/yanqian/summarizer-console/pkg/logger"
)

func provideControllerConfig(cfg *config.Config) summarizer.Config {
	return summarizer.Config{
		Timeout:       cfg.Backend.Timeout,
		DefaultModel:  cfg.Models.Default,
		DefaultLength: summarizer.Length(cfg.Models.DefaultLength),
	}
}

func providePresenterConfig(cfg *config.Config) presenter.Config {
	return presenter.Config{
		ToastDuration: cfg.Presenter.ToastDuration,
		SlowModels:    cfg.Models.Slow,
	}
}

func provideClientConfig(cfg *config.Config) summaryapi.Config {
	return summaryapi.Config{
		BaseURL:       cfg.Backend.BaseURL,
		SummarizePath: cfg.Backend.SummarizePath,
		HealthPath:    cfg.Backend.HealthPath,
		HealthTimeout: cfg.Backend.HealthTimeout,
	}
}

func provideCatalog(cfg *config.Config) summarizer.Catalog {
	return summarizer.NewCatalog(cfg.Models.Available, cfg.Models.Slow, cfg.Models.Default, summarizer.Length(cfg.Models.DefaultLength))
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// provideConsoleLogger keeps log lines off the terminal the console draws on.
func provideConsoleLogger() (*slog.Logger, func(), error) {
	w, closeFn, err := logger.OpenFile()
	if err != nil {
		return nil, nil, err
	}
	return logger.NewWithWriter(w), func() { _ = closeFn() }, nil
}

func provideTerminalClipboard() *clipboard.OSC52 {
	return clipboard.NewOSC52(os.Stderr)
}
