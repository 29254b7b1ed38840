//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yanqian/summarizer-console/internal/bootstrap"
	"github.com/yanqian/summarizer-console/internal/domain/presenter"
	"github.com/yanqian/summarizer-console/internal/domain/summarizer"
	"github.com/yanqian/summarizer-console/internal/infra/clipboard"
	"github.com/yanqian/summarizer-console/internal/infra/config"
	"github.com/yanqian/summarizer-console/internal/infra/summaryapi"
	"github.com/yanqian/summarizer-console/internal/infra/viewstate"
	httpiface "github.com/yanqian/summarizer-console/internal/interface/http"
	"github.com/yanqian/summarizer-console/internal/interface/tui"
	"github.com/yanqian/summarizer-console/pkg/logger"
	"github.com/yanqian/summarizer-console/pkg/metrics"
	"github.com/yanqian/summarizer-console/pkg/util"
)

var coreSet = wire.NewSet(
	config.Load,
	provideControllerConfig,
	providePresenterConfig,
	provideClientConfig,
	provideCatalog,
	provideRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	metrics.NewSubmissions,
	util.NewSystemClock,
	wire.Bind(new(util.Clock), new(util.SystemClock)),
	viewstate.NewStore,
	wire.Bind(new(presenter.Display), new(*viewstate.Store)),
	summaryapi.NewClient,
	wire.Bind(new(summarizer.Backend), new(*summaryapi.Client)),
	presenter.NewPresenter,
	wire.Bind(new(summarizer.Observer), new(*presenter.Presenter)),
	wire.Bind(new(summarizer.Recorder), new(*metrics.Submissions)),
	summarizer.NewController,
)

func initializeServer() (*bootstrap.App, error) {
	wire.Build(
		coreSet,
		logger.New,
		clipboard.NewHandoff,
		wire.Bind(new(clipboard.Sink), new(*viewstate.Store)),
		wire.Bind(new(presenter.Clipboard), new(*clipboard.Handoff)),
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		wire.Bind(new(httpiface.Submitter), new(*summarizer.Controller)),
		wire.Bind(new(httpiface.Actions), new(*presenter.Presenter)),
		wire.Bind(new(httpiface.ViewSource), new(*viewstate.Store)),
		wire.Bind(new(httpiface.HealthProber), new(*summaryapi.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

func initializeConsole(ctx context.Context) (*bootstrap.Console, func(), error) {
	wire.Build(
		coreSet,
		provideConsoleLogger,
		provideTerminalClipboard,
		wire.Bind(new(presenter.Clipboard), new(*clipboard.OSC52)),
		wire.Bind(new(tui.Submitter), new(*summarizer.Controller)),
		wire.Bind(new(tui.Actions), new(*presenter.Presenter)),
		wire.Bind(new(tui.ViewSource), new(*viewstate.Store)),
		wire.Bind(new(tui.HealthProber), new(*summaryapi.Client)),
		tui.NewModel,
		bootstrap.NewConsole,
	)
	return nil, nil, nil
}
