package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"

	"tableside/internal/logger"
)

const topicAll = "store.changed"

func topicFor(key string) string {
	return topicAll + "." + key
}

// Channel is the in-process Notifier, backed by a Watermill GoChannel
// pub/sub. Announcements go to a per-key topic and to a firehose topic used
// by the event stream endpoint.
type Channel struct {
	ps  *gochannel.GoChannel
	log *zap.SugaredLogger
}

func NewChannel() *Channel {
	ps := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NopLogger{},
	)
	return &Channel{ps: ps, log: logger.Get()}
}

func (c *Channel) Announce(key string) {
	payload, err := json.Marshal(Change{Key: key, At: time.Now()})
	if err != nil {
		c.log.Warnw("change marshal failed", "key", key, "err", err)
		return
	}

	for _, topic := range []string{topicFor(key), topicAll} {
		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := c.ps.Publish(topic, msg); err != nil {
			c.log.Warnw("change announce failed", "key", key, "topic", topic, "err", err)
		}
	}
}

func (c *Channel) Subscribe(ctx context.Context, key string) (<-chan Change, error) {
	return c.consume(ctx, topicFor(key))
}

func (c *Channel) SubscribeAll(ctx context.Context) (<-chan Change, error) {
	return c.consume(ctx, topicAll)
}

func (c *Channel) consume(ctx context.Context, topic string) (<-chan Change, error) {
	msgs, err := c.ps.Subscribe(ctx, topic)
	if err != nil {
		return nil, err
	}

	out := make(chan Change, 16)
	go func() {
		defer close(out)
		for msg := range msgs {
			var change Change
			if err := json.Unmarshal(msg.Payload, &change); err != nil {
				c.log.Warnw("dropping malformed change signal", "topic", topic, "err", err)
				msg.Ack()
				continue
			}
			msg.Ack()

			// Signals are advisory re-read triggers, so coalescing under a
			// slow consumer is safe: a pending signal already forces the
			// same re-read.
			select {
			case out <- change:
			default:
			}
		}
	}()
	return out, nil
}

func (c *Channel) Close() error {
	return c.ps.Close()
}
