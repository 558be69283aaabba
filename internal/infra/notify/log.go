package notify

import (
	"context"
	"log/slog"
)

// LogChannel writes notices to the application log. It is the default channel
// when no provider is configured.
type LogChannel struct{}

func NewLogChannel() *LogChannel {
	return &LogChannel{}
}

func (c *LogChannel) Name() string { return ChannelLog }

func (c *LogChannel) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "owner notification", "subject", msg.Subject, "body", msg.Body)
	return nil
}
