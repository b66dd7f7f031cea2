package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

// SnapshotLoader performs the one-time bulk read of in-progress tasks that
// seeds the board before live updates take over.
type SnapshotLoader struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

type SnapshotLoaderConfig struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logger.Logger
}

func NewSnapshotLoader(cfg SnapshotLoaderConfig) *SnapshotLoader {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &SnapshotLoader{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        cfg.Logger,
	}
}

// Load fetches tasks with status in_progress and appends one row per task
// onto the board, source-labelled "API". Tasks whose status turns out not to
// be in_progress are skipped. Any failure leaves the board untouched.
func (l *SnapshotLoader) Load(ctx context.Context, board *Board) error {
	endpoint := fmt.Sprintf("%s/api/tasks/?status=%s", l.baseURL, url.QueryEscape(domain.StatusInProgress))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create snapshot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("snapshot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("snapshot request failed: unexpected status %d", resp.StatusCode)
	}

	var tasks []domain.TaskPayload
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return fmt.Errorf("failed to decode snapshot body: %w", err)
	}

	rendered := 0
	for i := range tasks {
		if tasks[i].Status != domain.StatusInProgress {
			continue
		}
		board.Append(NewRow(&tasks[i], SourceAPI))
		rendered++
	}

	l.log.Infow("snapshot_loaded",
		"url", endpoint,
		"returned", len(tasks),
		"rendered", rendered,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
