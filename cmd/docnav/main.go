// docnav server
// Serves hierarchy navigation queries over a validated content snapshot
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/nainya/docnav/internal/config"
	"github.com/nainya/docnav/internal/logger"
	"github.com/nainya/docnav/internal/metrics"
	"github.com/nainya/docnav/internal/server"
	"github.com/nainya/docnav/pkg/content"
	"github.com/nainya/docnav/pkg/nav"
)

var (
	configPath = pflag.StringP("config", "c", "", "config file path (JSON with comments)")
	contentDir = pflag.String("content", "", "content directory (overrides config)")
	port       = pflag.Int("port", 0, "query API port (overrides config)")
	obsPort    = pflag.Int("obs-port", 0, "observability port (overrides config)")
	logLevel   = pflag.String("log-level", "", "log level: debug, info, warn, error")
	pretty     = pflag.Bool("pretty", false, "pretty-print logs")
	routesOut  = pflag.String("out", "routes.json", "output file for the routes command")
)

const usage = `Usage: docnav [flags] [command]

Commands:
  serve      load the content snapshot and serve navigation queries (default)
  validate   load and validate the content snapshot, then exit
  routes     enumerate all routes and write them to --out
`

func main() {
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "docnav: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(&cfg)

	logger.InitGlobalLogger(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	log := logger.GetGlobalLogger()

	start := time.Now()
	snap, err := content.Load(cfg.ContentDir)
	if err != nil {
		log.Fatal("Content snapshot rejected").Err(err).Str("content_dir", cfg.ContentDir).Send()
	}
	loadDur := time.Since(start)
	sections, categories, groups, articles := snap.Stats()
	log.LogSnapshotLoad(cfg.ContentDir, sections, categories, groups, articles, loadDur)

	command := "serve"
	if pflag.NArg() > 0 {
		command = pflag.Arg(0)
	}

	switch command {
	case "validate":
		log.Info("Content snapshot valid").Send()

	case "routes":
		enum := nav.NewPathEnumerator(snap, nav.EnumerateOptions{IncludeUnlisted: cfg.RouteUnlisted})
		if err := enum.WriteRoutes(*routesOut); err != nil {
			log.Fatal("Route enumeration failed").Err(err).Send()
		}
		log.Info("Routes written").Str("out", *routesOut).Int("count", len(enum.Paths())).Send()

	case "serve":
		serve(snap, cfg, log, loadDur)

	default:
		fmt.Fprintf(os.Stderr, "docnav: unknown command %q\n%s", command, usage)
		os.Exit(2)
	}
}

func serve(snap *content.Snapshot, cfg config.Config, log *logger.Logger, loadDur time.Duration) {
	m := metrics.NewMetrics()
	m.RecordSnapshotLoad("ok", loadDur)
	sections, categories, groups, articles := snap.Stats()
	m.UpdateSnapshotStats(sections, categories, groups, articles)

	log.LogServerStart(cfg.Port, cfg.ContentDir)

	qs := server.New(snap, cfg, m, log)
	obs := server.NewObservabilityServer(cfg.ObsPort, log)

	errCh := make(chan error, 2)
	go func() { errCh <- qs.Start() }()
	go func() { errCh <- obs.Start() }()
	log.LogServerReady(cfg.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("Server failed").Err(err).Send()
		}
	case <-sigChan:
		log.LogServerShutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := qs.Shutdown(ctx); err != nil {
		log.Error("Query server shutdown failed").Err(err).Send()
	}
	if err := obs.Shutdown(ctx); err != nil {
		log.Error("Observability server shutdown failed").Err(err).Send()
	}
}

// applyOverrides lets explicitly set flags win over the config file.
func applyOverrides(cfg *config.Config) {
	if *contentDir != "" {
		cfg.ContentDir = *contentDir
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *obsPort != 0 {
		cfg.ObsPort = *obsPort
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if pflag.CommandLine.Changed("pretty") {
		cfg.LogPretty = *pretty
	}
}
