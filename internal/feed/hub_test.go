package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

type fakeClient struct {
	mu     sync.Mutex
	frames [][]byte
	fail   bool
}

func (c *fakeClient) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("write on closed connection")
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	c.frames = append(c.frames, buf)
	return nil
}

func (c *fakeClient) frameCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frames)
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub(logger.NewNop())
	a := &fakeClient{}
	b := &fakeClient{}
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast([]byte(`{"reason": "shift ended"}`))

	if a.frameCount() != 1 || b.frameCount() != 1 {
		t.Fatalf("expected both clients to receive the frame, got %d and %d", a.frameCount(), b.frameCount())
	}
}

func TestHubDropsClientOnWriteFailure(t *testing.T) {
	hub := NewHub(logger.NewNop())
	ok := &fakeClient{}
	broken := &fakeClient{fail: true}
	hub.Register(ok)
	hub.Register(broken)

	hub.Broadcast([]byte(`x`))
	if hub.ClientCount() != 1 {
		t.Fatalf("expected failing client dropped, got %d clients", hub.ClientCount())
	}

	hub.Broadcast([]byte(`y`))
	if ok.frameCount() != 2 {
		t.Fatalf("expected surviving client to keep receiving, got %d frames", ok.frameCount())
	}
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub(logger.NewNop())
	c := &fakeClient{}
	hub.Register(c)
	hub.Unregister(c)

	hub.Broadcast([]byte(`x`))
	if c.frameCount() != 0 {
		t.Fatalf("expected no frames after unregister, got %d", c.frameCount())
	}
}

func TestHubRelaysRedisChannel(t *testing.T) {
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer m.Close()
	rc := redis.NewClient(&redis.Options{Addr: m.Addr()})
	defer rc.Close()

	hub := NewHub(logger.NewNop())
	c := &fakeClient{}
	hub.Register(c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		hub.Run(ctx, rc, "task_updates")
		close(done)
	}()
	// wait for subscription to start
	time.Sleep(50 * time.Millisecond)

	payload := `{"reason": "completed", "id": "t1"}`
	if err := rc.Publish(context.Background(), "task_updates", payload).Err(); err != nil {
		t.Fatalf("publish: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for c.frameCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for relayed frame")
		case <-time.After(10 * time.Millisecond):
		}
	}

	c.mu.Lock()
	got := string(c.frames[0])
	c.mu.Unlock()
	if got != payload {
		t.Fatalf("expected payload relayed verbatim, got %s", got)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop on context cancel")
	}
}
