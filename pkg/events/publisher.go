package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"facilityhub.dev/facility-service/pkg/common"
)

const DefaultChannel = "facility:events"

const (
	TypeComplaintCreated   = "complaint.created"
	TypeComplaintUpdated   = "complaint.updated"
	TypeComplaintResponded = "complaint.responded"
	TypeComplaintResolved  = "complaint.resolved"
	TypeComplaintEscalated = "complaint.escalated"
	TypeComplaintClosed    = "complaint.closed"
	TypeComplaintDeleted   = "complaint.deleted"
	TypeFeedbackSubmitted  = "feedback.submitted"
	TypeSensorReading      = "sensor.reading"
	TypeSensorAlert        = "sensor.alert"
	TypeSensorOffline      = "sensor.offline"
)

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Publisher fans out entity-change events over redis pub/sub. Delivery is
// fire-and-forget: a publish failure is logged and never surfaced to the
// caller, so a lost event cannot roll back the write that produced it.
// A nil Publisher (or one built without a redis client) drops everything.
type Publisher struct {
	rdb     *redis.Client
	channel string
	ctx     context.Context
}

func NewPublisher(rdb *redis.Client, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{
		rdb:     rdb,
		channel: channel,
		ctx:     context.Background(),
	}
}

func (p *Publisher) Publish(eventType string, payload any) {
	if p == nil || p.rdb == nil {
		return
	}

	logger := common.GetLoggerWith(common.LoggerNameEvents)

	event := Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Warn("Failed to marshal event", zap.String("type", eventType), zap.Error(err))
		return
	}

	if err := p.rdb.Publish(p.ctx, p.channel, string(data)).Err(); err != nil {
		logger.Warn("Failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}

// Subscribe returns a pub/sub handle on the event channel, for dashboard
// processes that mirror entity changes to connected clients.
func (p *Publisher) Subscribe() *redis.PubSub {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Subscribe(p.ctx, p.channel)
}
