// Package battle implements the realtime battle broadcast: a redis pub/sub
// channel every connected client listens on, and the transient enemy roster
// the admin stages before starting a fight.
package battle

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
)

// DefaultChannelName is the single broadcast topic. Every client shares it;
// there are no per-room channels.
const DefaultChannelName = "battle-channel-room"

// StartMessage marks a broadcast as a battle start
const StartMessage = "start"

// BattleEvent is the wire payload published when a battle starts
type BattleEvent struct {
	Message string            `json:"message"`
	Enemies []*entities.Enemy `json:"enemies"`
}

// Channel states
type channelState int

const (
	stateUnopened channelState = iota
	stateOpened
	stateClosed
)

// Config holds the dependencies for the battle coordinator
type Config struct {
	Client      redisclient.Client
	ChannelName string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// Coordinator hands out channel handles on the broadcast topic
type Coordinator struct {
	client      redisclient.Client
	channelName string
}

// NewCoordinator creates a battle coordinator
func NewCoordinator(cfg *Config) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	name := cfg.ChannelName
	if name == "" {
		name = DefaultChannelName
	}

	return &Coordinator{client: cfg.Client, channelName: name}, nil
}

// ChannelName returns the broadcast topic the coordinator serves
func (c *Coordinator) ChannelName() string {
	return c.channelName
}

// Channel returns an unopened handle on the broadcast topic. The handle
// must be opened before publishing or listening and is single-use: once
// closed it stays closed.
func (c *Coordinator) Channel() *Channel {
	return &Channel{
		client: c.client,
		name:   c.channelName,
	}
}

// Channel is a handle on the broadcast topic with a strict lifecycle:
// unopened, opened, closed, in that order only.
type Channel struct {
	client redisclient.Client
	name   string

	mu     sync.Mutex
	state  channelState
	pubsub *redis.PubSub
	done   chan struct{}
}

// Open subscribes the handle to the topic and confirms the subscription
// with the server before returning
func (ch *Channel) Open(ctx context.Context) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	switch ch.state {
	case stateOpened:
		return errors.FailedPrecondition("channel is already open")
	case stateClosed:
		return errors.FailedPrecondition("channel is closed")
	}

	pubsub := ch.client.Subscribe(ctx, ch.name)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return errors.Wrapf(err, "failed to subscribe to %s", ch.name)
	}

	ch.pubsub = pubsub
	ch.done = make(chan struct{})
	ch.state = stateOpened

	return nil
}

// Publish broadcasts one event to everyone on the topic, the publisher's
// own subscription included. Fire and forget: delivery to any particular
// listener is not confirmed.
func (ch *Channel) Publish(ctx context.Context, event *BattleEvent) error {
	ch.mu.Lock()
	state := ch.state
	ch.mu.Unlock()
	if state != stateOpened {
		return errors.FailedPrecondition("channel is not open")
	}
	if event == nil {
		return errors.InvalidArgument("event cannot be nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal battle event")
	}

	if err := ch.client.Publish(ctx, ch.name, data).Err(); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", ch.name)
	}

	return nil
}

// Listen pumps incoming events into handler from a background goroutine
// until the channel is closed. Messages that fail to decode are logged and
// dropped. There is no automatic re-subscribe if the transport drops.
func (ch *Channel) Listen(ctx context.Context, handler func(*BattleEvent)) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.state != stateOpened {
		return errors.FailedPrecondition("channel is not open")
	}
	if handler == nil {
		return errors.InvalidArgument("handler cannot be nil")
	}

	msgs := ch.pubsub.Channel()
	done := ch.done

	go func() {
		for {
			select {
			case <-done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event BattleEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					slog.WarnContext(ctx, "dropping undecodable battle event",
						"channel", ch.name,
						"error", err,
					)
					continue
				}
				handler(&event)
			}
		}
	}()

	return nil
}

// Close tears the subscription down. Closing an already closed handle is a
// no-op; the handle can never be reopened.
func (ch *Channel) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.state != stateOpened {
		ch.state = stateClosed
		return nil
	}

	ch.state = stateClosed
	close(ch.done)

	if err := ch.pubsub.Close(); err != nil {
		return errors.Wrapf(err, "failed to close subscription to %s", ch.name)
	}
	return nil
}
