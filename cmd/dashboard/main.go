package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/taskboard/backend/internal/config"
	"github.com/taskboard/backend/internal/dashboard"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	apiURL := flag.String("api-url", "", "task service base URL (overrides config)")
	feedURL := flag.String("feed-url", "", "task feed WebSocket URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	api := cfg.Dashboard.APIURL
	if *apiURL != "" {
		api = *apiURL
	}
	ws := cfg.Dashboard.FeedURL
	if *feedURL != "" {
		ws = *feedURL
	}
	if ws == "" && api != "" {
		ws = deriveFeedURL(api)
	}
	if api == "" {
		log.Fatal("no task service URL configured; set dashboard.api_url or --api-url")
	}

	board := dashboard.New(dashboard.Config{
		APIURL:  api,
		FeedURL: ws,
		Timeout: 30 * time.Second,
		Out:     os.Stdout,
		Logger:  log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("dashboard_starting", "api_url", api, "feed_url", ws)
	if err := board.Run(ctx); err != nil && err != context.Canceled {
		log.Errorw("dashboard_stopped", "error", err)
	}
	board.Close()
	log.Info("dashboard exited")
}

// deriveFeedURL maps the REST base URL onto the feed endpoint on the same
// host, http(s) -> ws(s).
func deriveFeedURL(apiURL string) string {
	ws := apiURL
	switch {
	case strings.HasPrefix(ws, "https://"):
		ws = "wss://" + strings.TrimPrefix(ws, "https://")
	case strings.HasPrefix(ws, "http://"):
		ws = "ws://" + strings.TrimPrefix(ws, "http://")
	}
	return strings.TrimRight(ws, "/") + "/ws/tasks/"
}
