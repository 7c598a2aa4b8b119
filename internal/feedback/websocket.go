// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/models"
	"github.com/coder/websocket"
)

const (
	writeTimeout    = 5 * time.Second
	responsesBuffer = 16
)

// WebSocketChannel is a [Channel] over one websocket connection. Every frame
// is a JSON encoded [models.Event].
type WebSocketChannel struct {
	conn *websocket.Conn

	responses chan models.Event
	done      chan struct{}
	doneOnce  sync.Once
	closeOnce sync.Once
	closeErr  error

	ctx    context.Context
	cancel context.CancelFunc

	logger *logger.Logger
}

// Accept upgrades the request to a websocket and starts reading peer events.
func Accept(w http.ResponseWriter, r *http.Request, logger *logger.Logger) (*WebSocketChannel, error) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		return nil, fmt.Errorf("websocket upgrade: %w", err)
	}

	return newWebSocketChannel(conn, logger), nil
}

func newWebSocketChannel(conn *websocket.Conn, logger *logger.Logger) *WebSocketChannel {
	ctx, cancel := context.WithCancel(context.Background())

	ch := &WebSocketChannel{
		conn:      conn,
		responses: make(chan models.Event, responsesBuffer),
		done:      make(chan struct{}),
		ctx:       ctx,
		cancel:    cancel,
		logger:    logger,
	}
	go ch.readLoop()

	return ch
}

// Send implements [Channel]. Each write is bounded by a 5 second timeout.
func (c *WebSocketChannel) Send(ctx context.Context, event models.Event) error {
	if !IsOpen(c) {
		return ErrClosed
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err = c.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("write %s event: %w", event.Type, err)
	}
	return nil
}

// Responses implements [Channel].
func (c *WebSocketChannel) Responses() <-chan models.Event {
	return c.responses
}

// Done implements [Channel].
func (c *WebSocketChannel) Done() <-chan struct{} {
	return c.done
}

// Close implements [Channel] with a normal closure status.
func (c *WebSocketChannel) Close() error {
	c.closeOnce.Do(func() {
		c.markDone()
		err := c.conn.Close(websocket.StatusNormalClosure, "")
		c.cancel()

		if err != nil && !isClosedError(err) {
			c.closeErr = fmt.Errorf("close websocket: %w", err)
		}
	})
	return c.closeErr
}

func (c *WebSocketChannel) markDone() {
	c.doneOnce.Do(func() { close(c.done) })
}

// readLoop forwards peer events until the connection ends. Malformed frames
// are dropped, as are events arriving while the buffer is full.
func (c *WebSocketChannel) readLoop() {
	defer c.markDone()

	for {
		typ, data, err := c.conn.Read(c.ctx)
		if err != nil {
			if status := websocket.CloseStatus(err); status != -1 {
				c.logger.Debug().Int("status", int(status)).Msg("feedback peer closed the connection")
			} else if !isClosedError(err) {
				c.logger.Debug().Err(err).Msg("feedback read loop stopped")
			}
			return
		}
		if typ != websocket.MessageText {
			continue
		}

		var event models.Event
		if err = json.Unmarshal(data, &event); err != nil || event.Type == "" {
			c.logger.Warn().Err(err).Int("size", len(data)).Msg("ignoring malformed feedback frame")
			continue
		}

		select {
		case c.responses <- event:
		default:
			c.logger.Warn().Str("type", string(event.Type)).Msg("feedback buffer full, dropping event")
		}
	}
}

func isClosedError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, net.ErrClosed) || websocket.CloseStatus(err) != -1
}
