package dashboard

import (
	"context"
	"io"
	"time"

	"github.com/taskboard/backend/internal/infrastructure/logger"
)

// Dashboard owns the board, the snapshot loader and the feed connection with
// an explicit init/teardown lifecycle. Snapshot and feed run as independent
// asynchronous tasks; neither is ordered relative to the other, and neither
// failing is fatal.
type Dashboard struct {
	board    *Board
	loader   *SnapshotLoader
	listener *FeedListener
	renderer *Renderer
	log      *logger.Logger
}

type Config struct {
	APIURL  string
	FeedURL string
	Timeout time.Duration
	Out     io.Writer
	Logger  *logger.Logger
}

func New(cfg Config) *Dashboard {
	board := NewBoard()
	d := &Dashboard{
		board:    board,
		renderer: NewRenderer(cfg.Out),
		log:      cfg.Logger,
	}
	d.loader = NewSnapshotLoader(SnapshotLoaderConfig{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
		Logger:  cfg.Logger,
	})
	d.listener = NewFeedListener(FeedListenerConfig{
		URL:    cfg.FeedURL,
		Board:  board,
		Logger: cfg.Logger,
		Handlers: FeedHandlers{
			OnOpen: func() {
				cfg.Logger.Infow("dashboard_feed_open")
			},
			OnError: func(err error) {
				cfg.Logger.Errorw("dashboard_feed_error", "error", err)
			},
			OnClose: func(err error) {
				cfg.Logger.Warnw("dashboard_feed_closed", "error", err)
			},
			OnChange: d.redraw,
		},
	})
	return d
}

func (d *Dashboard) Board() *Board {
	return d.board
}

// Run drives the dashboard until the context is cancelled or the feed dies.
// The snapshot loads concurrently with the feed; a failed snapshot or a feed
// that never connects leaves the rest running.
func (d *Dashboard) Run(ctx context.Context) error {
	connected := d.listener.Connect(ctx) == nil

	go func() {
		if err := d.loader.Load(ctx, d.board); err != nil {
			d.log.Errorw("dashboard_snapshot_failed", "error", err)
			return
		}
		d.redraw()
	}()

	d.redraw()

	if connected {
		d.listener.Listen(ctx)
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}

// Close tears down the feed connection. Safe to call once Run has returned.
func (d *Dashboard) Close() {
	if err := d.listener.Close(); err != nil {
		d.log.Debugw("dashboard_close", "error", err)
	}
}

func (d *Dashboard) redraw() {
	d.renderer.Render(d.board)
}
