// Package feed carries task events from the service layer to connected
// dashboards: a Publisher writes JSON frames to a Redis pub/sub channel and a
// Hub fans each frame out to every WebSocket client.
package feed

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
)

// taskFrame is the wire shape dashboards consume. Kept separate from the
// persistence model so internal columns never leak onto the feed.
type taskFrame struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Name        string           `json:"name,omitempty"`
	Status      string           `json:"status"`
	AssignedTo  *domain.Assignee `json:"assigned_to,omitempty"`
}

type signalFrame struct {
	Reason string `json:"reason"`
	ID     string `json:"id,omitempty"`
}

type Publisher struct {
	rc      *redis.Client
	channel string
	log     *logger.Logger
}

func NewPublisher(rc *redis.Client, channel string, log *logger.Logger) *Publisher {
	return &Publisher{rc: rc, channel: channel, log: log}
}

var _ ports.EventPublisher = (*Publisher)(nil)

func (p *Publisher) PublishTask(ctx context.Context, task *domain.Task) error {
	frame := taskFrame{
		ID:          task.ID,
		Description: task.Description,
		Name:        task.Name,
		Status:      task.Status,
	}
	if task.AssignedTo != nil {
		frame.AssignedTo = &domain.Assignee{
			EmployeeCode: task.AssignedTo.EmployeeCode,
			FirstName:    task.AssignedTo.FirstName,
			LastName:     task.AssignedTo.LastName,
		}
	}
	return p.publish(ctx, frame)
}

func (p *Publisher) PublishTaskCompleted(ctx context.Context, taskID string) error {
	return p.publish(ctx, signalFrame{Reason: domain.ReasonCompleted, ID: taskID})
}

func (p *Publisher) PublishShiftEnded(ctx context.Context) error {
	return p.publish(ctx, signalFrame{Reason: domain.ReasonShiftEnded})
}

func (p *Publisher) publish(ctx context.Context, frame any) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if err := p.rc.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.log.Errorw("feed_publish_failed", "channel", p.channel, "error", err)
		return err
	}
	p.log.Debugw("feed_publish_ok", "channel", p.channel, "bytes", len(payload))
	return nil
}
