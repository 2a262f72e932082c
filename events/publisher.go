// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogPublisher writes events to the process log. Used when no broker is configured.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{
		log: log.With().Str("component", "events").Logger(),
	}
}

func (p *LogPublisher) Publish(ctx context.Context, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	p.log.Info().Uint64("seq", evt.Seq).Str("event", string(evt.Name)).RawJSON("payload", data).Msg("Bridge event")
	return nil
}

// NATSPublisher forwards events to a JetStream stream. Subjects are
// <prefix>.<event name> and the sequence number is used as message id so
// republishing after a restart is deduplicated by the server.
type NATSPublisher struct {
	conn   *nats.Conn
	js     nats.JetStreamContext
	prefix string
}

func NewNATSPublisher(url, streamName, prefix string, timeout time.Duration) (*NATSPublisher, error) {
	l := log.With().Str("component", "events").Logger()
	conn, err := nats.Connect(url,
		nats.Timeout(timeout),
		nats.ReconnectWait(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			l.Warn().Err(err).Msg("Disconnected from NATS")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			l.Info().Msg("Reconnected to NATS")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed connecting to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed creating JetStream context: %w", err)
	}

	p := &NATSPublisher{
		conn:   conn,
		js:     js,
		prefix: prefix,
	}
	if err := p.ensureStream(streamName); err != nil {
		conn.Close()
		return nil, err
	}
	return p, nil
}

func (p *NATSPublisher) ensureStream(streamName string) error {
	_, err := p.js.StreamInfo(streamName)
	if err == nil {
		return nil
	}

	_, err = p.js.AddStream(&nats.StreamConfig{
		Name:      streamName,
		Subjects:  []string{p.prefix + ".>"},
		Retention: nats.LimitsPolicy,
		Storage:   nats.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("failed creating stream %s: %w", streamName, err)
	}
	return nil
}

func (p *NATSPublisher) Publish(ctx context.Context, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s.%s", p.prefix, evt.Name)
	_, err = p.js.Publish(subject, data, nats.Context(ctx), nats.MsgId(strconv.FormatUint(evt.Seq, 10)))
	return err
}

func (p *NATSPublisher) Close() {
	p.conn.Close()
}
