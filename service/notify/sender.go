package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/teofils1/supply-chain/model"
)

//go:generate moq -rm -out sender_mocks.go . Sender

// Payload is one rendered notification handed to a channel sender.
type Payload struct {
	TaskID    string
	EventID   uint64
	LogID     uint64
	Channel   model.Channel
	Recipient model.Subscriber
	Subject   string
	Body      string
}

// Sender delivers a payload over one channel. Implementations wrap
// external transports (SMTP relay, push gateway, SMS provider).
type Sender interface {
	Send(ctx context.Context, payload Payload) error
}

// SenderRegistry maps channels to their senders.
type SenderRegistry map[model.Channel]Sender

// LogSender writes payloads to the log instead of an external
// transport. Default for environments without delivery credentials.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender ...
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

var _ Sender = &LogSender{}

// Send ...
func (s *LogSender) Send(_ context.Context, payload Payload) error {
	s.logger.Info("notification delivered",
		zap.String("task_id", payload.TaskID),
		zap.Uint64("event_id", payload.EventID),
		zap.Uint64("log_id", payload.LogID),
		zap.String("channel", string(payload.Channel)),
		zap.String("recipient", payload.Recipient.Email),
		zap.String("subject", payload.Subject),
	)
	return nil
}
